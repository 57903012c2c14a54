package chaincfg

import (
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestHalvingIntervals(t *testing.T) {
	assert.Equal(t, idx.Block(1680000), PostBlossomHalvingInterval(
		PreBlossomHalvingInterval, PreBlossomPowTargetSpacing, PostBlossomPowTargetSpacing))
	assert.Equal(t, idx.Block(35000), FundingPeriodLength(1680000))

	c := &MainNetParams().Consensus
	assert.Equal(t, idx.Block(1680000), c.PostBlossomSubsidyHalvingInterval)
	assert.Equal(t, idx.Block(35000), c.FundingPeriodLength)
	assert.Equal(t, idx.Block(10000), c.SubsidySlowStartShift())

	reg := &RegTestParams().Consensus
	assert.Equal(t, idx.Block(150), reg.PreBlossomSubsidyHalvingInterval)
	assert.Equal(t, idx.Block(300), reg.PostBlossomSubsidyHalvingInterval)
	assert.Equal(t, idx.Block(6), reg.FundingPeriodLength)
}

func TestLastFoundersRewardBlockHeight(t *testing.T) {
	assert.Equal(t, idx.Block(849999), MainNetParams().Consensus.LastFoundersRewardBlockHeight(0))
	assert.Equal(t, idx.Block(849999), TestNetParams().Consensus.LastFoundersRewardBlockHeight(0))
	assert.Equal(t, idx.Block(149), RegTestParams().Consensus.LastFoundersRewardBlockHeight(0))
}

func TestHalving_mainnet(t *testing.T) {
	c := &MainNetParams().Consensus
	tests := []struct {
		h    idx.Block
		want int64
	}{
		{0, 0},
		{849999, 0},
		{850000, 1},
		{1100000, 1},
		{2279999, 1},
		{2280000, 2},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Halving(tt.h), "height %d", tt.h)
	}
	assert.Equal(t, idx.Block(850000), c.HalvingHeight(0, 1))
	assert.Equal(t, idx.Block(2280000), c.HalvingHeight(1100000, 2))
	assert.Equal(t, idx.Block(600000), c.HalvingHeight(1100000, 1))
}

func TestHalvingHeight_panicsOnNonPositiveIndex(t *testing.T) {
	c := &MainNetParams().Consensus
	assert.PanicsWithError(t, "chain parameters: precondition failed: halving index 0 must be positive", func() {
		c.HalvingHeight(0, 0)
	})
	assert.Panics(t, func() { c.HalvingHeight(0, -1) })
}

func TestHalvingHeight_beforeGenesis(t *testing.T) {
	p, err := NewRegtestBuilder().
		UpdateNetworkUpgradeParameters(UpgradeBlossom, ActivateAt(400)).
		Build()
	require.NoError(t, err)
	c := &p.Consensus

	// the first halving lands at -100 on the rescaled schedule
	assert.Equal(t, idx.Block(0), c.HalvingHeight(400, 1))
	assert.Equal(t, idx.Block(0), c.LastFoundersRewardBlockHeight(400))
	assert.Equal(t, idx.Block(200), c.HalvingHeight(400, 2))
	assert.Equal(t, idx.Block(149), c.LastFoundersRewardBlockHeight(399))

	err = recoverErr(func() { p.FoundersRewardScriptAtHeight(400) })
	assert.ErrorIs(t, err, ErrPrecondition)
}

// Under post-Blossom rules the halving count steps exactly at HalvingHeight.
func TestHalvingHeight_inverse(t *testing.T) {
	c := &MainNetParams().Consensus
	blossom := idx.Block(1100000)
	rapid.Check(t, func(t *rapid.T) {
		i := rapid.Int64Range(2, 40).Draw(t, "i")
		at := c.HalvingHeight(blossom, i)
		if got := c.Halving(at); got != i {
			t.Fatalf("Halving(HalvingHeight(%d)) = %d", i, got)
		}
		if got := c.Halving(at - 1); got != i-1 {
			t.Fatalf("Halving(HalvingHeight(%d)-1) = %d", i, got)
		}
	})
}

func TestFounderAddressAdjustedHeight(t *testing.T) {
	c := &MainNetParams().Consensus
	assert.Equal(t, idx.Block(1099999), c.FounderAddressAdjustedHeight(1099999))
	assert.Equal(t, idx.Block(1100000), c.FounderAddressAdjustedHeight(1100000))
	assert.Equal(t, idx.Block(1100000), c.FounderAddressAdjustedHeight(1100001))
	assert.Equal(t, idx.Block(1100050), c.FounderAddressAdjustedHeight(1100100))
}

func TestFundingPeriodIndex(t *testing.T) {
	c := &MainNetParams().Consensus
	// the period grid is anchored at height 600000, so a stream starting at
	// Blossom has a shortened first period of 25000 blocks
	assert.Equal(t, int64(0), c.FundingPeriodIndex(1100000, 1100000))
	assert.Equal(t, int64(0), c.FundingPeriodIndex(1100000, 1124999))
	assert.Equal(t, int64(1), c.FundingPeriodIndex(1100000, 1125000))
	assert.Equal(t, int64(2), c.FundingPeriodIndex(1100000, 1160000))

	reg := &RegTestParams().Consensus
	// negative offset before the first halving is normalised into [0, period)
	assert.Equal(t, int64(0), reg.FundingPeriodIndex(10, 11))
	assert.Equal(t, int64(1), reg.FundingPeriodIndex(10, 12))

	require.Panics(t, func() { c.FundingPeriodIndex(10, 9) })
}
