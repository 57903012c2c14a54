// Package keyio encodes and decodes transparent addresses for the Ycash networks.
//
// Every network carries two sets of base58 prefixes and bech32 human-readable
// parts: the current Ycash ones and the legacy Zcash ones inherited from before
// the chain split. Addresses written with legacy prefixes can be re-encoded with
// the current prefixes through ZecToYec.
package keyio

// Base58Type selects one entry of the base58 prefix table.
type Base58Type int

const (
	PubkeyAddress Base58Type = iota
	ScriptAddress
	SecretKey
	ExtPublicKey
	ExtSecretKey
	ZCPaymentAddress
	ZCViewingKey
	ZCSpendingKey

	LegacyPubkeyAddress
	LegacyScriptAddress
	LegacySecretKey
	LegacyExtPublicKey
	LegacyExtSecretKey
	LegacyZCPaymentAddress
	LegacyZCViewingKey
	LegacyZCSpendingKey

	MaxBase58Types
)

// Bech32Type selects one entry of the bech32 human-readable-part table.
type Bech32Type int

const (
	SaplingPaymentAddress Bech32Type = iota
	SaplingFullViewingKey
	SaplingIncomingViewingKey
	SaplingExtendedSpendKey
	SaplingExtendedFVK

	LegacySaplingPaymentAddress
	LegacySaplingFullViewingKey
	LegacySaplingIncomingViewingKey
	LegacySaplingExtendedSpendKey
	LegacySaplingExtendedFVK

	MaxBech32Types
)

// Constants holds the per-network key encoding tables.
type Constants struct {
	Base58Prefixes [MaxBase58Types][]byte
	Bech32HRPs     [MaxBech32Types]string
}

// Base58Prefix returns the prefix bytes registered for t.
func (c *Constants) Base58Prefix(t Base58Type) []byte {
	return c.Base58Prefixes[t]
}

// Bech32HRP returns the human-readable part registered for t.
func (c *Constants) Bech32HRP(t Bech32Type) string {
	return c.Bech32HRPs[t]
}

// Copy returns a deep copy, prefix slices included.
func (c Constants) Copy() Constants {
	cp := c
	for i, p := range c.Base58Prefixes {
		if p != nil {
			cp.Base58Prefixes[i] = append([]byte(nil), p...)
		}
	}
	return cp
}

// MainNetConstants returns the mainnet tables.
func MainNetConstants() Constants {
	var c Constants
	c.Base58Prefixes[PubkeyAddress] = []byte{0x1C, 0x28} // "s1"
	c.Base58Prefixes[ScriptAddress] = []byte{0x1C, 0x2C} // "s3"
	c.Base58Prefixes[SecretKey] = []byte{0x80}
	c.Base58Prefixes[ExtPublicKey] = []byte{0x04, 0x88, 0xB2, 0x1E}
	c.Base58Prefixes[ExtSecretKey] = []byte{0x04, 0x88, 0xAD, 0xE4}
	c.Base58Prefixes[ZCPaymentAddress] = []byte{0x16, 0x36}
	c.Base58Prefixes[ZCViewingKey] = []byte{0xA8, 0xAB, 0xD3}
	c.Base58Prefixes[ZCSpendingKey] = []byte{0xAB, 0x36}

	c.Bech32HRPs[SaplingPaymentAddress] = "ys"
	c.Bech32HRPs[SaplingFullViewingKey] = "zviews"
	c.Bech32HRPs[SaplingIncomingViewingKey] = "zivks"
	c.Bech32HRPs[SaplingExtendedSpendKey] = "secret-extended-key-main"
	c.Bech32HRPs[SaplingExtendedFVK] = "zxviews"

	c.Base58Prefixes[LegacyPubkeyAddress] = []byte{0x1C, 0xB8} // "t1"
	c.Base58Prefixes[LegacyScriptAddress] = []byte{0x1C, 0xBD} // "t3"
	c.Base58Prefixes[LegacySecretKey] = []byte{0x80}
	c.Base58Prefixes[LegacyExtPublicKey] = []byte{0x04, 0x88, 0xB2, 0x1E}
	c.Base58Prefixes[LegacyExtSecretKey] = []byte{0x04, 0x88, 0xAD, 0xE4}
	c.Base58Prefixes[LegacyZCPaymentAddress] = []byte{0x16, 0x9A}
	c.Base58Prefixes[LegacyZCViewingKey] = []byte{0xA8, 0xAB, 0xD3}
	c.Base58Prefixes[LegacyZCSpendingKey] = []byte{0xAB, 0x36}

	c.Bech32HRPs[LegacySaplingPaymentAddress] = "zs"
	c.Bech32HRPs[LegacySaplingFullViewingKey] = "zviews"
	c.Bech32HRPs[LegacySaplingIncomingViewingKey] = "zivks"
	c.Bech32HRPs[LegacySaplingExtendedSpendKey] = "secret-extended-key-main"
	c.Bech32HRPs[LegacySaplingExtendedFVK] = "zxviews"
	return c
}

// TestNetConstants returns the testnet tables.
func TestNetConstants() Constants {
	var c Constants
	testBase58(&c)
	c.Bech32HRPs[SaplingPaymentAddress] = "ytestsapling"
	c.Bech32HRPs[SaplingFullViewingKey] = "zviewtestsapling"
	c.Bech32HRPs[SaplingIncomingViewingKey] = "zivktestsapling"
	c.Bech32HRPs[SaplingExtendedSpendKey] = "secret-extended-key-test"
	c.Bech32HRPs[SaplingExtendedFVK] = "zxviewtestsapling"

	c.Bech32HRPs[LegacySaplingPaymentAddress] = "ztestsapling"
	c.Bech32HRPs[LegacySaplingFullViewingKey] = "zviewtestsapling"
	c.Bech32HRPs[LegacySaplingIncomingViewingKey] = "zivktestsapling"
	c.Bech32HRPs[LegacySaplingExtendedSpendKey] = "secret-extended-key-test"
	c.Bech32HRPs[LegacySaplingExtendedFVK] = "zxviewtestsapling"
	return c
}

// RegTestConstants returns the regtest tables. Base58 prefixes match testnet.
func RegTestConstants() Constants {
	var c Constants
	testBase58(&c)
	c.Bech32HRPs[SaplingPaymentAddress] = "yregtestsapling"
	c.Bech32HRPs[SaplingFullViewingKey] = "zviewregtestsapling"
	c.Bech32HRPs[SaplingIncomingViewingKey] = "zivkregtestsapling"
	c.Bech32HRPs[SaplingExtendedSpendKey] = "secret-extended-key-regtest"
	c.Bech32HRPs[SaplingExtendedFVK] = "zxviewregtestsapling"

	c.Bech32HRPs[LegacySaplingPaymentAddress] = "zregtestsapling"
	c.Bech32HRPs[LegacySaplingFullViewingKey] = "zviewregtestsapling"
	c.Bech32HRPs[LegacySaplingIncomingViewingKey] = "zivkregtestsapling"
	c.Bech32HRPs[LegacySaplingExtendedSpendKey] = "secret-extended-key-regtest"
	c.Bech32HRPs[LegacySaplingExtendedFVK] = "zxviewregtestsapling"
	return c
}

func testBase58(c *Constants) {
	c.Base58Prefixes[PubkeyAddress] = []byte{0x1C, 0x95} // "sm"
	c.Base58Prefixes[ScriptAddress] = []byte{0x1C, 0x2A}
	c.Base58Prefixes[SecretKey] = []byte{0xEF}
	c.Base58Prefixes[ExtPublicKey] = []byte{0x04, 0x35, 0x87, 0xCF}
	c.Base58Prefixes[ExtSecretKey] = []byte{0x04, 0x35, 0x83, 0x94}
	c.Base58Prefixes[ZCPaymentAddress] = []byte{0x16, 0x52}
	c.Base58Prefixes[ZCViewingKey] = []byte{0xA8, 0xAC, 0x0C}
	c.Base58Prefixes[ZCSpendingKey] = []byte{0xAC, 0x08}

	c.Base58Prefixes[LegacyPubkeyAddress] = []byte{0x1D, 0x25} // "tm"
	c.Base58Prefixes[LegacyScriptAddress] = []byte{0x1C, 0xBA} // "t2"
	c.Base58Prefixes[LegacySecretKey] = []byte{0xEF}
	c.Base58Prefixes[LegacyExtPublicKey] = []byte{0x04, 0x35, 0x87, 0xCF}
	c.Base58Prefixes[LegacyExtSecretKey] = []byte{0x04, 0x35, 0x83, 0x94}
	c.Base58Prefixes[LegacyZCPaymentAddress] = []byte{0x16, 0xB6}
	c.Base58Prefixes[LegacyZCViewingKey] = []byte{0xA8, 0xAC, 0x0C}
	c.Base58Prefixes[LegacyZCSpendingKey] = []byte{0xAC, 0x08}
}
