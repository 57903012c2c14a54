package script

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-ycash-params/keyio"
)

func hash(b byte) [keyio.HashLen]byte {
	var h [keyio.HashLen]byte
	for i := range h {
		h[i] = b
	}
	return h
}

func TestPayToPubKeyHash(t *testing.T) {
	s := PayToPubKeyHash(hash(0x11))
	require.Len(t, s, 25)
	assert.Equal(t, "76a914"+"1111111111111111111111111111111111111111"+"88ac", s.String())
	assert.True(t, s.IsPayToPubKeyHash())
	assert.False(t, s.IsPayToScriptHash())
}

func TestPayToScriptHash(t *testing.T) {
	s := PayToScriptHash(hash(0x22))
	require.Len(t, s, 23)
	assert.Equal(t, "a914"+"2222222222222222222222222222222222222222"+"87", s.String())
	assert.True(t, s.IsPayToScriptHash())
	assert.False(t, s.IsPayToPubKeyHash())
}

func TestForDestination(t *testing.T) {
	assert.Equal(t, PayToPubKeyHash(hash(1)), ForDestination(keyio.KeyID(hash(1))))
	assert.Equal(t, PayToScriptHash(hash(2)), ForDestination(keyio.ScriptID(hash(2))))
	assert.Nil(t, ForDestination(keyio.Destination{}))
}

func TestScript_JSON(t *testing.T) {
	s := PayToScriptHash(hash(0xab))
	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var back Script
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, s, back)

	cp := s.Copy()
	cp[2] = 0
	assert.NotEqual(t, s, cp)
}
