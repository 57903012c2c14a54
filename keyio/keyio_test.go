package keyio

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestDecodeDestination_networkAddresses(t *testing.T) {
	main := MainNetConstants()
	test := TestNetConstants()

	tests := []struct {
		name string
		c    *Constants
		addr string
		kind DestinationKind
	}{
		{"main ycash founder", &main, "s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE", KeyDestination},
		{"test ycash founder", &test, "smDw2LWkeuJ1NGBDDZvdNbzY8A9D1mkkDZm", KeyDestination},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.c).DecodeDestination(tt.addr)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, d.Kind)

			back, err := New(tt.c).EncodeDestination(d)
			require.NoError(t, err)
			assert.Equal(t, tt.addr, back)
		})
	}
}

func TestDecodeDestination_wrongNetwork(t *testing.T) {
	test := TestNetConstants()
	_, err := New(&test).DecodeDestination("s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPrefix))
}

func TestDecodeDestination_badChecksum(t *testing.T) {
	main := MainNetConstants()
	// last character altered
	_, err := New(&main).DecodeDestination("s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHF")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrChecksum))

	_, err = New(&main).DecodeDestination("0OIl")
	assert.True(t, errors.Is(err, ErrMalformed))
}

func TestZecToYec(t *testing.T) {
	main := MainNetConstants()
	reg := RegTestConstants()

	t.Run("mainnet multisig becomes s3", func(t *testing.T) {
		k := New(&main)
		legacy := "t3Vz22vK5z2LcKEdg16Yv4FFneEL1zg9ojd"
		got, err := k.ZecToYec(legacy)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(got, "s3"), got)

		want, err := k.DecodeLegacyDestination(legacy)
		require.NoError(t, err)
		d, err := k.DecodeDestination(got)
		require.NoError(t, err)
		assert.Equal(t, want, d)
		assert.Equal(t, ScriptDestination, d.Kind)
	})

	t.Run("regtest multisig keeps its script hash", func(t *testing.T) {
		k := New(&reg)
		got, err := k.ZecToYec("t2FwcEhFdNXuFMv1tcYwaBJtYVtMj8b1uTg")
		require.NoError(t, err)
		d, err := k.DecodeDestination(got)
		require.NoError(t, err)
		assert.Equal(t, ScriptDestination, d.Kind)
	})

	t.Run("current encoding passes through", func(t *testing.T) {
		got, err := New(&main).ZecToYec("s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE")
		require.NoError(t, err)
		assert.Equal(t, "s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE", got)
	})

	t.Run("garbage fails", func(t *testing.T) {
		_, err := New(&main).ZecToYec("not-an-address")
		assert.Error(t, err)
	})
}

func TestEncodeDestination_empty(t *testing.T) {
	main := MainNetConstants()
	_, err := New(&main).EncodeDestination(Destination{})
	assert.Error(t, err)
}

func TestCheckEncode_roundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		payload := rapid.SliceOfN(rapid.Byte(), 1, 64).Draw(t, "payload")
		got, err := CheckDecode(CheckEncode(payload))
		if err != nil {
			t.Fatalf("decode: %v", err)
		}
		if string(got) != string(payload) {
			t.Fatalf("got %x, want %x", got, payload)
		}
	})
}

func TestDestination_roundTripAllNetworks(t *testing.T) {
	nets := map[string]Constants{
		"main":    MainNetConstants(),
		"test":    TestNetConstants(),
		"regtest": RegTestConstants(),
	}
	for name, c := range nets {
		c := c
		t.Run(name, func(t *testing.T) {
			k := New(&c)
			rapid.Check(t, func(rt *rapid.T) {
				var h [HashLen]byte
				copy(h[:], rapid.SliceOfN(rapid.Byte(), HashLen, HashLen).Draw(rt, "hash"))
				d := KeyID(h)
				if rapid.Bool().Draw(rt, "script") {
					d = ScriptID(h)
				}
				s, err := k.EncodeDestination(d)
				if err != nil {
					rt.Fatalf("encode: %v", err)
				}
				back, err := k.DecodeDestination(s)
				if err != nil {
					rt.Fatalf("decode %s: %v", s, err)
				}
				if back != d {
					rt.Fatalf("got %v, want %v", back, d)
				}
			})
		})
	}
}

func TestConstants_Copy(t *testing.T) {
	c := MainNetConstants()
	cp := c.Copy()
	cp.Base58Prefixes[PubkeyAddress][0] = 0xFF
	assert.Equal(t, byte(0x1C), c.Base58Prefixes[PubkeyAddress][0])
	assert.Equal(t, "ys", c.Bech32HRP(SaplingPaymentAddress))
	assert.Equal(t, "zs", c.Bech32HRP(LegacySaplingPaymentAddress))
}
