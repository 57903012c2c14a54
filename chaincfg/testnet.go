package chaincfg

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/rony4d/go-ycash-params/keyio"
)

// TestNetParams returns a fresh copy of the testnet parameters.
func TestNetParams() *Params {
	p := &Params{
		Name:             TestNet,
		KeyConstants:     keyio.TestNetConstants(),
		CurrencyUnits:    "TAY",
		BIP44CoinType:    1,
		MessageStart:     [4]byte{0xfa, 0x1a, 0xf9, 0xbf},
		AlertPubKey:      common.FromHex("041c64ece576904e60264571717fc027692455afaacdb91d3c7f68724ad17161d6db24632dbac26849bd6d66e534ddf800eb4fe3a4ae3a0b690f737c85625869a2"),
		DefaultPort:      18833,
		PruneAfterHeight: 1000,
		DNSSeeds:         []DNSSeed{{Name: "ycash.xyz", Host: "testseed.ycash.xyz"}},

		Genesis: GenesisInfo{
			Time:       1477648033,
			Nonce:      common.HexToHash("0x06"),
			Bits:       0x2007ffff,
			Version:    4,
			Hash:       common.HexToHash("05a60a92d99d85997cce3b87616c089f6124d7342af37106edc76126334a2c38"),
			MerkleRoot: genesisMerkleRoot,
		},

		SproutValuePool: SproutValuePoolCheckpoint{
			Height:    440329,
			Balance:   40000029096803,
			BlockHash: common.HexToHash("000a95d08ba5dcbabe881fc6471d11807bcca7df5f1795c99f3ec4580db4279b"),
		},
		ZIP209Enabled: true,

		CoinbaseMustBeShielded:        true,
		MiningRequiresPeers:           true,
		RequireStandard:               true,
		TestnetToBeDeprecatedFieldRPC: true,

		LegacyFoundersRewardAddresses: append([]string(nil), testNetLegacyFounders...),
		FoundersRewardAddresses:       append([]string(nil), testNetFounders...),
	}

	c := &p.Consensus
	c.HashGenesisBlock = p.Genesis.Hash
	publicSubsidy(c)
	c.MajorityEnforceBlockUpgrade = 51
	c.MajorityRejectBlockOutdated = 75
	c.MajorityWindow = 400
	c.PowLimit = common.HexToHash("07ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff").Big()
	c.PowAllowMinDifficultyBlocksAfterHeight = heightPtr(299187)
	c.MinDifficultyAtYcashFork = true
	c.MinimumChainWork = common.HexToHash("0x1959b78e6f").Big()

	c.Upgrades = [MaxNetworkUpgrades]Upgrade{
		BaseSprout:        {ProtocolVersion: 170002, Activation: AlwaysActive},
		UpgradeTestDummy:  {ProtocolVersion: 170002, Activation: NeverActive},
		UpgradeOverwinter: {ProtocolVersion: 170003, Activation: ActivateAt(207500), ActivationBlockHash: hashPtr("0000257c4331b098045023fcfbfa2474681f4564ab483f84e4e1ad078e4acf44")},
		UpgradeSapling:    {ProtocolVersion: 170007, Activation: ActivateAt(280000), ActivationBlockHash: hashPtr("000420e7fcc3a49d729479fb0b560dd7b8617b178a08e9e389620a9d1dd6361a")},
		UpgradeYcash:      {ProtocolVersion: 270007, Activation: ActivateAt(510248), ActivationBlockHash: hashPtr("0305d164e8f4dc75b9e9a6a15b7b381dbc1c9cb55f1534267be7c125923255c8")},
		UpgradeBlossom:    {ProtocolVersion: 270008, Activation: ActivateAt(661610)},
		UpgradeHeartwood:  {ProtocolVersion: 270010, Activation: ActivateAt(661622)},
		UpgradeCanopy:     {ProtocolVersion: 270012, Activation: ActivateAt(661634)},
		UpgradeNU5:        {ProtocolVersion: 270014, Activation: NeverActive},
		UpgradeZFuture:    {ProtocolVersion: 0x7FFFFFFF, Activation: NeverActive},
	}
	// timestamps are bounded more tightly from Blossom on
	c.FutureTimestampSoftForkHeight = heightPtr(661610)

	p.Checkpoints = CheckpointData{
		Checkpoints: []Checkpoint{
			{Height: 0, Hash: p.Genesis.Hash},
			checkpoint(38000, "001e9a2d2e2892b88e9998cf7b079b41d59dd085423a921fe8386cecc42287b8"),
			checkpoint(650000, "005dd2092f75382581468e870b51233a8950bf9c396689c513e5a80f00c14609"),
		},
		TimeLastCheckpoint:         1633853210,
		TransactionsLastCheckpoint: 862651,
		TransactionsPerDay:         765,
	}

	return mustFinalize(p)
}
