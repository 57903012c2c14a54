package launcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-ycash-params/chaincfg"
)

func TestParseNUParams(t *testing.T) {
	tests := []struct {
		spec    string
		upgrade chaincfg.UpgradeIndex
		at      chaincfg.Activation
		wantErr bool
	}{
		{spec: "sapling:10", upgrade: chaincfg.UpgradeSapling, at: chaincfg.ActivateAt(10)},
		{spec: "Blossom:always", upgrade: chaincfg.UpgradeBlossom, at: chaincfg.AlwaysActive},
		{spec: "canopy:never", upgrade: chaincfg.UpgradeCanopy, at: chaincfg.NeverActive},
		{spec: "sapling", wantErr: true},
		{spec: "nu7:10", wantErr: true},
		{spec: "sprout:0", wantErr: true},
		{spec: "ycash:soon", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			u, a, err := parseNUParams(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.upgrade, u)
			assert.Equal(t, tt.at, a)
		})
	}
}

func TestParseFundingStream(t *testing.T) {
	i, fs, err := parseFundingStream("foundation:10:40:addr1, addr2")
	require.NoError(t, err)
	assert.Equal(t, chaincfg.FundingStreamFoundation, i)
	assert.Equal(t, chaincfg.FundingStream{StartHeight: 10, EndHeight: 40, Recipients: []string{"addr1", "addr2"}}, fs)

	i, _, err = parseFundingStream("2:0:1:addr")
	require.NoError(t, err)
	assert.Equal(t, chaincfg.FundingStreamMajorGrants, i)

	for _, bad := range []string{"foundation:10:40", "ecc:1:2:a", "3:1:2:a", "foundation:x:2:a", "foundation:1:y:a", "foundation:1:2:"} {
		_, _, err := parseFundingStream(bad)
		assert.Error(t, err, bad)
	}
}

func TestSelectNetwork(t *testing.T) {
	p, err := selectNetwork(NetworkConfig{Name: chaincfg.TestNet})
	require.NoError(t, err)
	assert.Same(t, p, chaincfg.Active())

	_, err = selectNetwork(NetworkConfig{Name: "ropsten"})
	assert.ErrorIs(t, err, chaincfg.ErrUnknownNetwork)

	_, err = selectNetwork(NetworkConfig{Name: chaincfg.MainNet, NUParams: []string{"sapling:1"}})
	assert.Error(t, err)

	p, err = selectNetwork(NetworkConfig{
		Name:                  chaincfg.RegTest,
		Preset:                "sapling",
		NUParams:              []string{"ycash:150"},
		RegtestShieldCoinbase: true,
	})
	require.NoError(t, err)
	assert.Same(t, p, chaincfg.Active())
	assert.Equal(t, chaincfg.UpgradeYcash, p.Consensus.CurrentEpoch(150))
	assert.True(t, p.CoinbaseMustBeShielded)

	// schedule regressions are reported, not panicked
	_, err = selectNetwork(NetworkConfig{Name: chaincfg.RegTest, NUParams: []string{"overwinter:20", "sapling:10"}})
	assert.ErrorIs(t, err, chaincfg.ErrScheduleIntegrity)

	_, err = selectNetwork(NetworkConfig{Name: chaincfg.RegTest, Preset: "archive"})
	assert.Error(t, err)
}
