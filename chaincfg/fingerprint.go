package chaincfg

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/rlp"
)

// paramsRLP is the canonical encoding of the consensus-relevant part of a
// parameter set. Field order is part of the fingerprint.
type paramsRLP struct {
	Name    string
	Genesis common.Hash

	Upgrades      []upgradeRLP
	Equihash      equihashRLP
	Overrides     []overrideRLP
	FixedEquihash bool

	SlowStart      uint64
	PreHalving     uint64
	PostHalving    uint64
	FundingPeriod  uint64
	FundingStreams []fundingStreamRLP

	PowLimit         *big.Int
	AveragingWindow  uint64
	MaxAdjustDown    uint64
	MaxAdjustUp      uint64
	PreSpacingSec    uint64
	PostSpacingSec   uint64
	MinDifficulty    []uint64 // empty or one height
	NoRetargeting    bool
	MinDiffAtFork    bool
	ScaledDiffAtFork bool
	MinimumChainWork *big.Int

	CoinbaseMustBeShielded bool
	ZIP209Enabled          bool
	LegacyFounders         []string
	Founders               []string
}

type upgradeRLP struct {
	ProtocolVersion uint32
	Kind            uint8
	Height          uint64
}

type equihashRLP struct {
	N, K uint32
}

type overrideRLP struct {
	Upgrade uint64
	Params  equihashRLP
}

type fundingStreamRLP struct {
	Index      uint64
	Start, End uint64
	Recipients []string
}

func (p *Params) toRLP() *paramsRLP {
	c := &p.Consensus
	r := &paramsRLP{
		Name:                   p.Name,
		Genesis:                c.HashGenesisBlock,
		Equihash:               equihashRLP{c.Equihash.N, c.Equihash.K},
		FixedEquihash:          c.FixedEquihash,
		SlowStart:              uint64(c.SubsidySlowStartInterval),
		PreHalving:             uint64(c.PreBlossomSubsidyHalvingInterval),
		PostHalving:            uint64(c.PostBlossomSubsidyHalvingInterval),
		FundingPeriod:          uint64(c.FundingPeriodLength),
		PowLimit:               bigOrZero(c.PowLimit),
		AveragingWindow:        uint64(c.PowAveragingWindow),
		MaxAdjustDown:          uint64(c.PowMaxAdjustDown),
		MaxAdjustUp:            uint64(c.PowMaxAdjustUp),
		PreSpacingSec:          uint64(c.PreBlossomPowTargetSpacing / time.Second),
		PostSpacingSec:         uint64(c.PostBlossomPowTargetSpacing / time.Second),
		NoRetargeting:          c.PowNoRetargeting,
		MinDiffAtFork:          c.MinDifficultyAtYcashFork,
		ScaledDiffAtFork:       c.ScaledDifficultyAtYcashFork,
		MinimumChainWork:       bigOrZero(c.MinimumChainWork),
		CoinbaseMustBeShielded: p.CoinbaseMustBeShielded,
		ZIP209Enabled:          p.ZIP209Enabled,
		LegacyFounders:         p.LegacyFoundersRewardAddresses,
		Founders:               p.FoundersRewardAddresses,
	}
	for _, u := range c.Upgrades {
		h, _ := u.Activation.Height()
		r.Upgrades = append(r.Upgrades, upgradeRLP{u.ProtocolVersion, uint8(u.Activation.kind), uint64(h)})
	}
	for i, o := range c.EquihashOverrides {
		if o != nil {
			r.Overrides = append(r.Overrides, overrideRLP{uint64(i), equihashRLP{o.N, o.K}})
		}
	}
	for i, fs := range c.FundingStreams {
		if fs != nil {
			r.FundingStreams = append(r.FundingStreams, fundingStreamRLP{
				uint64(i), uint64(fs.StartHeight), uint64(fs.EndHeight), fs.Recipients,
			})
		}
	}
	if h := c.PowAllowMinDifficultyBlocksAfterHeight; h != nil {
		r.MinDifficulty = []uint64{uint64(*h)}
	}
	return r
}

// Fingerprint is the keccak256 hash of the RLP encoding of the consensus
// relevant fields: the upgrade schedule, Equihash, subsidy, funding, PoW and
// founders settings plus the coinbase and ZIP 209 policy switches. Node
// behaviour such as checkpoints, seeds and ports is left out.
func (p *Params) Fingerprint() common.Hash {
	b, err := rlp.EncodeToBytes(p.toRLP())
	if err != nil {
		panic(err)
	}
	return crypto.Keccak256Hash(b)
}

func bigOrZero(b *big.Int) *big.Int {
	if b == nil {
		return new(big.Int)
	}
	return b
}

