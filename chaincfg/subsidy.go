package chaincfg

import (
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
)

const (
	PreBlossomHalvingInterval        idx.Block = 840000
	PreBlossomRegtestHalvingInterval idx.Block = 150

	PreBlossomPowTargetSpacing  = 150 * time.Second
	PostBlossomPowTargetSpacing = 75 * time.Second

	// FundingPeriodsPerHalving splits a post-Blossom halving interval into
	// roughly monthly funding periods.
	FundingPeriodsPerHalving = 48
)

// PostBlossomHalvingInterval rescales a pre-Blossom halving interval so that
// halvings keep their wall-clock cadence after the block spacing changes. The
// spacing ratio is truncated to an integer first.
func PostBlossomHalvingInterval(pre idx.Block, preSpacing, postSpacing time.Duration) idx.Block {
	return pre * idx.Block(preSpacing/postSpacing)
}

// FundingPeriodLength is the post-Blossom halving interval divided into
// FundingPeriodsPerHalving periods, rounded down.
func FundingPeriodLength(post idx.Block) idx.Block {
	return post / FundingPeriodsPerHalving
}

// SubsidySlowStartShift is half the slow start interval.
func (c *Consensus) SubsidySlowStartShift() idx.Block {
	return c.SubsidySlowStartInterval / 2
}

func (c *Consensus) blossomHeight() (int64, bool) {
	h, ok := c.Upgrades[UpgradeBlossom].Activation.Height()
	return int64(h), ok
}

// Halving returns the number of halvings that have happened by height h.
// Heights inside the slow start shift yield zero or a negative count.
func (c *Consensus) Halving(h idx.Block) int64 {
	shift := int64(c.SubsidySlowStartShift())
	if c.IsActive(UpgradeBlossom, h) {
		bh, _ := c.blossomHeight()
		// scaled by the post-Blossom interval to stay in integers
		scaled := (bh-shift)*c.BlossomPowTargetSpacingRatio() + (int64(h) - bh)
		return scaled / int64(c.PostBlossomSubsidyHalvingInterval)
	}
	return (int64(h) - shift) / int64(c.PreBlossomSubsidyHalvingInterval)
}

// HalvingHeight returns the first height at which Halving reaches
// halvingIndex, evaluated under the rules in force at height h. A halving that
// falls before genesis, which only a late regtest Blossom can cause, is
// reported as height 0.
func (c *Consensus) HalvingHeight(h idx.Block, halvingIndex int64) idx.Block {
	if halvingIndex <= 0 {
		fatal(ErrPrecondition, "halving index %d must be positive", halvingIndex)
	}
	shift := int64(c.SubsidySlowStartShift())
	if c.IsActive(UpgradeBlossom, h) {
		bh, _ := c.blossomHeight()
		at := int64(c.PostBlossomSubsidyHalvingInterval)*halvingIndex -
			(bh-shift)*c.BlossomPowTargetSpacingRatio() + bh
		if at < 0 {
			return 0
		}
		return idx.Block(at)
	}
	return idx.Block(int64(c.PreBlossomSubsidyHalvingInterval)*halvingIndex + shift)
}

// LastFoundersRewardBlockHeight is the last height, under the rules in force
// at h, that pays the founders reward. Zero means no height pays it.
func (c *Consensus) LastFoundersRewardBlockHeight(h idx.Block) idx.Block {
	at := c.HalvingHeight(h, 1)
	if at == 0 {
		return 0
	}
	return at - 1
}

// FounderAddressAdjustedHeight maps a post-Blossom height back onto the
// pre-Blossom height scale so address rotation keeps its wall-clock cadence.
func (c *Consensus) FounderAddressAdjustedHeight(h idx.Block) idx.Block {
	if !c.IsActive(UpgradeBlossom, h) {
		return h
	}
	bh, _ := c.blossomHeight()
	return idx.Block(bh + (int64(h)-bh)/c.BlossomPowTargetSpacingRatio())
}

// FundingPeriodIndex returns the funding period containing height h for a
// stream starting at start. The first period is shortened when start is not
// aligned to the period grid anchored at the first halving.
func (c *Consensus) FundingPeriodIndex(start, h idx.Block) int64 {
	if start > h {
		fatal(ErrPrecondition, "funding stream start %d is after height %d", start, h)
	}
	period := int64(c.FundingPeriodLength)
	firstHalving := int64(c.HalvingHeight(start, 1))
	offset := (int64(start) - firstHalving) % period
	if offset < 0 {
		offset += period
	}
	return (int64(h) - int64(start) + offset) / period
}
