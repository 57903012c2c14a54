package chaincfg

import (
	"math/big"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// EquihashParams are the (N, K) solver parameters.
type EquihashParams struct {
	N uint32
	K uint32
}

// PuzzleParamKind selects one of the Equihash parameters.
type PuzzleParamKind int

const (
	EquihashN PuzzleParamKind = iota
	EquihashK
)

// Consensus holds the consensus-critical parameters of one network.
//
// Values are written while a parameter set is being assembled and treated as
// read-only once it has been published through Params.
type Consensus struct {
	HashGenesisBlock common.Hash

	Upgrades [MaxNetworkUpgrades]Upgrade

	// Equihash is the network default. EquihashOverrides replaces it per
	// epoch; a nil entry inherits the default.
	Equihash          EquihashParams
	EquihashOverrides [MaxNetworkUpgrades]*EquihashParams `json:",omitempty"`
	// FixedEquihash ignores EquihashOverrides entirely (regtest).
	FixedEquihash bool

	SubsidySlowStartInterval          idx.Block
	PreBlossomSubsidyHalvingInterval  idx.Block
	PostBlossomSubsidyHalvingInterval idx.Block
	FundingPeriodLength               idx.Block
	FundingStreams                    [MaxFundingStreams]*FundingStream `json:",omitempty"`

	MajorityEnforceBlockUpgrade int
	MajorityRejectBlockOutdated int
	MajorityWindow              int

	PowLimit           *big.Int
	PowAveragingWindow int64
	PowMaxAdjustDown   int64 // percent
	PowMaxAdjustUp     int64 // percent

	PreBlossomPowTargetSpacing  time.Duration
	PostBlossomPowTargetSpacing time.Duration

	// PowAllowMinDifficultyBlocksAfterHeight, when set, allows minimum
	// difficulty blocks strictly above that height.
	PowAllowMinDifficultyBlocksAfterHeight *idx.Block
	PowNoRetargeting                       bool
	MinDifficultyAtYcashFork               bool
	ScaledDifficultyAtYcashFork            bool

	// FutureTimestampSoftForkHeight, when set, is the height from which block
	// timestamps are bounded more tightly.
	FutureTimestampSoftForkHeight *idx.Block

	MinimumChainWork *big.Int
}

// EquihashParamsAt returns the solver parameters in force at height h.
func (c *Consensus) EquihashParamsAt(h idx.Block) EquihashParams {
	if c.FixedEquihash {
		return c.Equihash
	}
	if o := c.EquihashOverrides[c.CurrentEpoch(h)]; o != nil {
		return *o
	}
	return c.Equihash
}

// PuzzleParam returns one Equihash parameter at height h.
func (c *Consensus) PuzzleParam(kind PuzzleParamKind, h idx.Block) uint32 {
	p := c.EquihashParamsAt(h)
	if kind == EquihashK {
		return p.K
	}
	return p.N
}

// BlossomPowTargetSpacingRatio is the integer ratio between the pre- and
// post-Blossom block spacing.
func (c *Consensus) BlossomPowTargetSpacingRatio() int64 {
	return int64(c.PreBlossomPowTargetSpacing / c.PostBlossomPowTargetSpacing)
}

// PoWTargetSpacing returns the target block interval at height h.
func (c *Consensus) PoWTargetSpacing(h idx.Block) time.Duration {
	if c.IsActive(UpgradeBlossom, h) {
		return c.PostBlossomPowTargetSpacing
	}
	return c.PreBlossomPowTargetSpacing
}

func (c *Consensus) AveragingWindowTimespan(h idx.Block) time.Duration {
	return time.Duration(c.PowAveragingWindow) * c.PoWTargetSpacing(h)
}

func (c *Consensus) MinActualTimespan(h idx.Block) time.Duration {
	return c.AveragingWindowTimespan(h) * time.Duration(100-c.PowMaxAdjustUp) / 100
}

func (c *Consensus) MaxActualTimespan(h idx.Block) time.Duration {
	return c.AveragingWindowTimespan(h) * time.Duration(100+c.PowMaxAdjustDown) / 100
}

// AllowsMinDifficultyBlocks reports whether a minimum difficulty block may be
// mined at height h.
func (c *Consensus) AllowsMinDifficultyBlocks(h idx.Block) bool {
	return c.PowAllowMinDifficultyBlocksAfterHeight != nil && h > *c.PowAllowMinDifficultyBlocksAfterHeight
}

// Copy returns a deep copy.
func (c Consensus) Copy() Consensus {
	cp := c
	for i, u := range c.Upgrades {
		if u.ActivationBlockHash != nil {
			h := *u.ActivationBlockHash
			cp.Upgrades[i].ActivationBlockHash = &h
		}
	}
	for i, o := range c.EquihashOverrides {
		if o != nil {
			v := *o
			cp.EquihashOverrides[i] = &v
		}
	}
	for i, fs := range c.FundingStreams {
		if fs != nil {
			v := fs.Copy()
			cp.FundingStreams[i] = &v
		}
	}
	if c.PowLimit != nil {
		cp.PowLimit = new(big.Int).Set(c.PowLimit)
	}
	if c.MinimumChainWork != nil {
		cp.MinimumChainWork = new(big.Int).Set(c.MinimumChainWork)
	}
	cp.PowAllowMinDifficultyBlocksAfterHeight = copyHeight(c.PowAllowMinDifficultyBlocksAfterHeight)
	cp.FutureTimestampSoftForkHeight = copyHeight(c.FutureTimestampSoftForkHeight)
	return cp
}

func heightPtr(h idx.Block) *idx.Block { return &h }

func copyHeight(h *idx.Block) *idx.Block {
	if h == nil {
		return nil
	}
	return heightPtr(*h)
}

func hashPtr(s string) *common.Hash {
	h := common.HexToHash(s)
	return &h
}
