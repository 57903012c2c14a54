package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamsFor(t *testing.T) {
	for _, name := range []string{MainNet, TestNet, RegTest} {
		p, err := ParamsFor(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name)
	}
	_, err := ParamsFor("ropsten")
	assert.ErrorIs(t, err, ErrUnknownNetwork)
	assert.Subset(t, Registered(), []string{MainNet, TestNet, RegTest})
}

func TestActive_panicsBeforeSelect(t *testing.T) {
	resetActive()
	defer resetActive()

	assert.False(t, IsSelected())
	assert.PanicsWithValue(t, ErrNotInitialized, func() { Active() })
}

func TestSelect(t *testing.T) {
	defer resetActive()

	p, err := Select(MainNet, SelectOptions{})
	require.NoError(t, err)
	assert.Same(t, p, Active())

	p, err = Select(RegTest, SelectOptions{RegtestShieldCoinbase: true, DeveloperSetPoolSizeZero: true})
	require.NoError(t, err)
	assert.Same(t, p, Active())
	assert.True(t, Active().CoinbaseMustBeShielded)
	assert.True(t, Active().ZIP209Enabled)

	shared, err := ParamsFor(RegTest)
	require.NoError(t, err)
	assert.NotSame(t, shared, p)
	assert.False(t, shared.CoinbaseMustBeShielded)

	// options are ignored outside regtest
	p, err = Select(TestNet, SelectOptions{RegtestShieldCoinbase: true, DeveloperSetPoolSizeZero: true})
	require.NoError(t, err)
	shared, err = ParamsFor(TestNet)
	require.NoError(t, err)
	assert.Same(t, shared, p)
	assert.Equal(t, TestNetParams().CoinbaseMustBeShielded, p.CoinbaseMustBeShielded)
	assert.Equal(t, TestNetParams().ZIP209Enabled, p.ZIP209Enabled)

	_, err = Select("bogus", SelectOptions{})
	assert.ErrorIs(t, err, ErrUnknownNetwork)
	assert.Equal(t, TestNet, Active().Name)
}

func TestSelectParams(t *testing.T) {
	defer resetActive()

	assert.Error(t, SelectParams(MainNetParams()))

	p, err := NewRegtestBuilder().UpdateNetworkUpgradeParameters(UpgradeOverwinter, ActivateAt(5)).Build()
	require.NoError(t, err)
	require.NoError(t, SelectParams(p))
	assert.Same(t, p, Active())

	assert.Error(t, SelectParams(&Params{Name: RegTest}))
}

func TestRegister(t *testing.T) {
	p := RegTestParams().Copy()
	p.Name = "regtest-register-test"
	require.NoError(t, Register(p))

	got, err := ParamsFor(p.Name)
	require.NoError(t, err)
	assert.NotSame(t, p, got)
	assert.Equal(t, p.Fingerprint(), got.Fingerprint())

	assert.Error(t, Register(p), "duplicate name")

	bad := RegTestParams().Copy()
	bad.Name = "regtest-register-invalid"
	bad.LegacyFoundersRewardAddresses = nil
	assert.ErrorIs(t, Register(bad), ErrScheduleIntegrity)
}
