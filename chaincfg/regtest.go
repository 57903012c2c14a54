package chaincfg

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-ycash-params/keyio"
)

// RegTestParams returns a fresh copy of the default regtest parameters. Every
// upgrade after Sprout is disabled; use RegtestBuilder to schedule them.
func RegTestParams() *Params {
	return mustFinalize(newRegTestParams())
}

func newRegTestParams() *Params {
	p := &Params{
		Name:             RegTest,
		KeyConstants:     keyio.RegTestConstants(),
		CurrencyUnits:    "REG",
		BIP44CoinType:    1,
		MessageStart:     [4]byte{0xaa, 0xe8, 0x3f, 0x5f},
		DefaultPort:      18344,
		PruneAfterHeight: 1000,

		Genesis: GenesisInfo{
			Time:       1296688602,
			Nonce:      common.HexToHash("0x09"),
			Bits:       0x200f0f0f,
			Version:    4,
			Hash:       common.HexToHash("029f11d80ef9765602235e1bc9727e3eb6ba20839319f761fee920d63401e327"),
			MerkleRoot: genesisMerkleRoot,
		},

		DefaultConsistencyChecks: true,
		MineBlocksOnDemand:       true,

		LegacyFoundersRewardAddresses: append([]string(nil), regTestLegacyFounders...),
		FoundersRewardAddresses:       append([]string(nil), testNetFounders...),
	}

	c := &p.Consensus
	c.HashGenesisBlock = p.Genesis.Hash
	c.SubsidySlowStartInterval = 0
	c.PreBlossomSubsidyHalvingInterval = PreBlossomRegtestHalvingInterval
	c.PostBlossomSubsidyHalvingInterval = PostBlossomHalvingInterval(
		PreBlossomRegtestHalvingInterval, PreBlossomPowTargetSpacing, PostBlossomPowTargetSpacing)
	c.FundingPeriodLength = FundingPeriodLength(c.PostBlossomSubsidyHalvingInterval)
	c.PreBlossomPowTargetSpacing = PreBlossomPowTargetSpacing
	c.PostBlossomPowTargetSpacing = PostBlossomPowTargetSpacing
	c.MajorityEnforceBlockUpgrade = 750
	c.MajorityRejectBlockOutdated = 950
	c.MajorityWindow = 1000
	c.Equihash = EquihashParams{N: 48, K: 5}
	c.FixedEquihash = true
	c.PowLimit = common.HexToHash("0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f0f").Big()
	c.PowAveragingWindow = 17
	c.PowMaxAdjustDown = 0
	c.PowMaxAdjustUp = 0
	c.PowAllowMinDifficultyBlocksAfterHeight = heightPtr(0)
	c.PowNoRetargeting = true
	c.MinimumChainWork = new(big.Int)

	c.Upgrades = [MaxNetworkUpgrades]Upgrade{
		BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive},
		UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive},
		UpgradeOverwinter: {ProtocolVersion: 170003, Activation: NeverActive},
		UpgradeSapling:    {ProtocolVersion: 170006, Activation: NeverActive},
		UpgradeYcash:      {ProtocolVersion: 270007, Activation: NeverActive},
		UpgradeBlossom:    {ProtocolVersion: 270008, Activation: NeverActive},
		UpgradeHeartwood:  {ProtocolVersion: 270010, Activation: NeverActive},
		UpgradeCanopy:     {ProtocolVersion: 270012, Activation: NeverActive},
		UpgradeNU5:        {ProtocolVersion: 270014, Activation: NeverActive},
		UpgradeZFuture:    {ProtocolVersion: 0x7FFFFFFF, Activation: NeverActive},
	}

	p.Checkpoints = CheckpointData{
		Checkpoints: []Checkpoint{
			checkpoint(0, "0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"),
		},
	}
	return p
}
