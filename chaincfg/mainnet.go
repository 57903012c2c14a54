package chaincfg

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-ycash-params/keyio"
)

// ycashEquihash is the solver used from the Ycash upgrade onwards on the
// public networks.
var ycashEquihash = EquihashParams{N: 192, K: 7}

func ycashEquihashOverrides() (o [MaxNetworkUpgrades]*EquihashParams) {
	for u := UpgradeYcash; u < MaxNetworkUpgrades; u++ {
		p := ycashEquihash
		o[u] = &p
	}
	return o
}

func publicSubsidy(c *Consensus) {
	c.SubsidySlowStartInterval = 20000
	c.PreBlossomSubsidyHalvingInterval = PreBlossomHalvingInterval
	c.PostBlossomSubsidyHalvingInterval = PostBlossomHalvingInterval(
		PreBlossomHalvingInterval, PreBlossomPowTargetSpacing, PostBlossomPowTargetSpacing)
	c.FundingPeriodLength = FundingPeriodLength(c.PostBlossomSubsidyHalvingInterval)
	c.PreBlossomPowTargetSpacing = PreBlossomPowTargetSpacing
	c.PostBlossomPowTargetSpacing = PostBlossomPowTargetSpacing
	c.Equihash = EquihashParams{N: 200, K: 9}
	c.EquihashOverrides = ycashEquihashOverrides()
	c.PowAveragingWindow = 17
	c.PowMaxAdjustDown = 32
	c.PowMaxAdjustUp = 16
}

// MainNetParams returns a fresh copy of the mainnet parameters.
func MainNetParams() *Params {
	p := &Params{
		Name:             MainNet,
		KeyConstants:     keyio.MainNetConstants(),
		CurrencyUnits:    "YEC",
		BIP44CoinType:    347,
		MessageStart:     [4]byte{0x24, 0xe9, 0x27, 0x64},
		AlertPubKey:      common.FromHex("04ba73cc5c962a359005140276ae60106afbed978d3824d0ad8d77195357e0493dad248688e3f469f8183de9582d984183f94f9a2e59198ffe4c5376e4d720daec"),
		DefaultPort:      8833,
		PruneAfterHeight: 100000,
		DNSSeeds:         []DNSSeed{{Name: "ycash.xyz", Host: "seed.ycash.xyz"}},

		Genesis: GenesisInfo{
			Time:       1477641360,
			Nonce:      common.HexToHash("0x1257"),
			Bits:       0x1f07ffff,
			Version:    4,
			Hash:       common.HexToHash("00040fe8ec8471911baa1db1266ea15dd06b4a8a5c453883c000b031973dce08"),
			MerkleRoot: genesisMerkleRoot,
		},

		SproutValuePool: SproutValuePoolCheckpoint{
			Height:    520633,
			Balance:   22145062442933,
			BlockHash: common.HexToHash("0000000000c7b46b6bc04b4cbf87d8bb08722aebd51232619b214f7273f8460e"),
		},
		ZIP209Enabled: true,

		CoinbaseMustBeShielded: true,
		MiningRequiresPeers:    true,
		RequireStandard:        true,

		LegacyFoundersRewardAddresses: append([]string(nil), mainNetLegacyFounders...),
		FoundersRewardAddresses:       append([]string(nil), mainNetFounders...),
	}

	c := &p.Consensus
	c.HashGenesisBlock = p.Genesis.Hash
	publicSubsidy(c)
	c.MajorityEnforceBlockUpgrade = 750
	c.MajorityRejectBlockOutdated = 950
	c.MajorityWindow = 4000
	c.PowLimit = common.HexToHash("0007ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff").Big()
	c.ScaledDifficultyAtYcashFork = true
	c.MinimumChainWork = common.HexToHash("0x0152d608a8c7cab7").Big()

	c.Upgrades = [MaxNetworkUpgrades]Upgrade{
		BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive},
		UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive},
		UpgradeOverwinter: {ProtocolVersion: 170005, Activation: ActivateAt(347500), ActivationBlockHash: hashPtr("0000000003761c0d0c3974b54bdb425613bbb1eaadd6e70b764de82f195ea243")},
		UpgradeSapling:    {ProtocolVersion: 170007, Activation: ActivateAt(419200), ActivationBlockHash: hashPtr("00000000025a57200d898ac7f21e26bf29028bbe96ec46e05b2c17cc9db9e4f3")},
		UpgradeYcash:      {ProtocolVersion: 270007, Activation: ActivateAt(570000), ActivationBlockHash: hashPtr("0000014fbc5917ba8bcacf3336faf588d86b32443aa3a490a587af5750c77ec5")},
		UpgradeBlossom:    {ProtocolVersion: 270009, Activation: ActivateAt(1100000)},
		UpgradeHeartwood:  {ProtocolVersion: 270011, Activation: ActivateAt(1100003)},
		UpgradeCanopy:     {ProtocolVersion: 270013, Activation: ActivateAt(1100006)},
		UpgradeNU5:        {ProtocolVersion: 270015, Activation: NeverActive},
		UpgradeZFuture:    {ProtocolVersion: 0x7FFFFFFF, Activation: NeverActive},
	}

	p.Checkpoints = CheckpointData{
		Checkpoints: []Checkpoint{
			{Height: 0, Hash: p.Genesis.Hash},
			checkpoint(2500, "00000006dc968f600be11a86cbfbf7feb61c7577f45caced2e82b6d261d19744"),
			checkpoint(15000, "00000000b6bc56656812a5b8dcad69d6ad4446dec23b5ec456c18641fb5381ba"),
			checkpoint(67500, "000000006b366d2c1649a6ebb4787ac2b39c422f451880bc922e3a6fbd723616"),
			checkpoint(100000, "000000001c5c82cd6baccfc0879e3830fd50d5ede17fa2c37a9a253c610eb285"),
			checkpoint(133337, "0000000002776ccfaf06cc19857accf3e20c01965282f916b8a886e3e4a05be9"),
			checkpoint(180000, "000000001205b742eac4a1b3959635bdf8aeada078d6a996df89740f7b54351d"),
			checkpoint(222222, "000000000cafb9e56445a6cabc8057b57ee6fcc709e7adbfa195e5c7fac61343"),
			checkpoint(270000, "00000000025c1cfa0258e33ab050aaa9338a3d4aaa3eb41defefc887779a9729"),
			checkpoint(304600, "00000000028324e022a45014c4a4dc51e95d41e6bceb6ad554c5b65d5cea3ea5"),
			checkpoint(410100, "0000000002c565958f783a24a4ac17cde898ff525e75ed9baf66861b0b9fcada"),
			checkpoint(497000, "0000000000abd333f0acca6ffdf78a167699686d6a7d25c33fca5f295061ffff"),
			checkpoint(525000, "0000000001a36c500378be8862d9bf1bea8f1616da6e155971b608139cc7e39b"),
			checkpoint(572760, "00000008db657f58222e38e354c18ccbb6c74cf525ef4f3a95f0f8a324a3166d"),
			checkpoint(980000, "00000510ccc6bae2ddb38b9313ffb9686397f6cd0dee243462baeaf8911d0791"),
			checkpoint(1035353, "00000543378a75f173914390c672838c9fbd9dc86ae647ffae18ed6b626edb30"),
		},
		TimeLastCheckpoint:         1633786161,
		TransactionsLastCheckpoint: 6114050,
		TransactionsPerDay:         3400,
	}

	return mustFinalize(p)
}

