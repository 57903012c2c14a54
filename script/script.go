// Package script builds the standard transparent output scripts that block
// subsidy payouts are locked to.
package script

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-ycash-params/keyio"
)

// Opcodes used by the payout templates.
const (
	OpDup         byte = 0x76
	OpHash160     byte = 0xa9
	OpEqual       byte = 0x87
	OpEqualVerify byte = 0x88
	OpCheckSig    byte = 0xac

	opPushHash = byte(keyio.HashLen)
)

// Script is a serialized output script.
type Script []byte

// PayToPubKeyHash returns OP_DUP OP_HASH160 <hash> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubKeyHash(hash [keyio.HashLen]byte) Script {
	s := make(Script, 0, 25)
	s = append(s, OpDup, OpHash160, opPushHash)
	s = append(s, hash[:]...)
	return append(s, OpEqualVerify, OpCheckSig)
}

// PayToScriptHash returns OP_HASH160 <hash> OP_EQUAL.
func PayToScriptHash(hash [keyio.HashLen]byte) Script {
	s := make(Script, 0, 23)
	s = append(s, OpHash160, opPushHash)
	s = append(s, hash[:]...)
	return append(s, OpEqual)
}

// ForDestination picks the template matching the destination kind. It returns
// nil for an empty destination.
func ForDestination(d keyio.Destination) Script {
	switch d.Kind {
	case keyio.KeyDestination:
		return PayToPubKeyHash(d.Hash)
	case keyio.ScriptDestination:
		return PayToScriptHash(d.Hash)
	}
	return nil
}

// IsPayToScriptHash reports whether s has the script-hash template shape.
func (s Script) IsPayToScriptHash() bool {
	return len(s) == 23 && s[0] == OpHash160 && s[1] == opPushHash && s[22] == OpEqual
}

// IsPayToPubKeyHash reports whether s has the pubkey-hash template shape.
func (s Script) IsPayToPubKeyHash() bool {
	return len(s) == 25 && s[0] == OpDup && s[1] == OpHash160 && s[2] == opPushHash &&
		s[23] == OpEqualVerify && s[24] == OpCheckSig
}

// Copy returns an independent copy of s.
func (s Script) Copy() Script {
	return append(Script(nil), s...)
}

func (s Script) String() string {
	return common.Bytes2Hex(s)
}

// MarshalText encodes the script as hex.
func (s Script) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText decodes a hex script.
func (s *Script) UnmarshalText(input []byte) error {
	*s = common.FromHex(string(input))
	return nil
}
