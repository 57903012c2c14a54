package keyio

import (
	"bytes"

	"github.com/ethereum/go-ethereum/common"

	"github.com/pkg/errors"
)

// HashLen is the length of the key and script hashes carried by transparent
// addresses.
const HashLen = 20

// DestinationKind tags what a Destination pays to.
type DestinationKind uint8

const (
	NoDestination DestinationKind = iota
	KeyDestination
	ScriptDestination
)

func (k DestinationKind) String() string {
	switch k {
	case KeyDestination:
		return "key"
	case ScriptDestination:
		return "script"
	default:
		return "none"
	}
}

// Destination is a decoded transparent address: a public-key hash or a script
// hash. The zero value is NoDestination.
type Destination struct {
	Kind DestinationKind
	Hash [HashLen]byte
}

// KeyID makes a key destination.
func KeyID(h [HashLen]byte) Destination { return Destination{Kind: KeyDestination, Hash: h} }

// ScriptID makes a script destination.
func ScriptID(h [HashLen]byte) Destination { return Destination{Kind: ScriptDestination, Hash: h} }

func (d Destination) IsValid() bool { return d.Kind != NoDestination }

func (d Destination) String() string {
	return d.Kind.String() + ":" + common.Bytes2Hex(d.Hash[:])
}

var ErrUnknownPrefix = errors.New("address prefix does not belong to this network")

// KeyIO binds the codec to one network's constants.
type KeyIO struct {
	c *Constants
}

// New returns a codec for c. The constants are not copied and must not be
// mutated afterwards.
func New(c *Constants) *KeyIO {
	return &KeyIO{c: c}
}

// DecodeDestination decodes a transparent address with the current prefixes.
func (k *KeyIO) DecodeDestination(addr string) (Destination, error) {
	return k.decode(addr, PubkeyAddress, ScriptAddress)
}

// DecodeLegacyDestination decodes a transparent address with the legacy
// prefixes.
func (k *KeyIO) DecodeLegacyDestination(addr string) (Destination, error) {
	return k.decode(addr, LegacyPubkeyAddress, LegacyScriptAddress)
}

// EncodeDestination encodes d with the current prefixes.
func (k *KeyIO) EncodeDestination(d Destination) (string, error) {
	return k.encode(d, PubkeyAddress, ScriptAddress)
}

// IsValidDestinationString reports whether addr decodes with the current
// prefixes.
func (k *KeyIO) IsValidDestinationString(addr string) bool {
	_, err := k.DecodeDestination(addr)
	return err == nil
}

// ZecToYec re-encodes an address written with the legacy prefixes using the
// current prefixes. Addresses already using the current prefixes are returned
// unchanged.
func (k *KeyIO) ZecToYec(addr string) (string, error) {
	if k.IsValidDestinationString(addr) {
		return addr, nil
	}
	d, err := k.DecodeLegacyDestination(addr)
	if err != nil {
		return "", errors.Wrapf(err, "re-encode %q", addr)
	}
	return k.EncodeDestination(d)
}

func (k *KeyIO) decode(addr string, keyType, scriptType Base58Type) (Destination, error) {
	payload, err := CheckDecode(addr)
	if err != nil {
		return Destination{}, errors.Wrapf(err, "decode %q", addr)
	}
	for _, c := range []struct {
		t    Base58Type
		kind DestinationKind
	}{{keyType, KeyDestination}, {scriptType, ScriptDestination}} {
		prefix := k.c.Base58Prefix(c.t)
		if len(payload) == len(prefix)+HashLen && bytes.HasPrefix(payload, prefix) {
			d := Destination{Kind: c.kind}
			copy(d.Hash[:], payload[len(prefix):])
			return d, nil
		}
	}
	return Destination{}, errors.Wrapf(ErrUnknownPrefix, "decode %q", addr)
}

func (k *KeyIO) encode(d Destination, keyType, scriptType Base58Type) (string, error) {
	var prefix []byte
	switch d.Kind {
	case KeyDestination:
		prefix = k.c.Base58Prefix(keyType)
	case ScriptDestination:
		prefix = k.c.Base58Prefix(scriptType)
	default:
		return "", errors.New("cannot encode an empty destination")
	}
	payload := make([]byte, 0, len(prefix)+HashLen)
	payload = append(payload, prefix...)
	payload = append(payload, d.Hash[:]...)
	return CheckEncode(payload), nil
}
