package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// Names of the network selection flags.
const (
	NetworkFlagName                  = "network"
	NUParamsFlagName                 = "nuparams"
	FundingStreamFlagName            = "fundingstream"
	RegtestShieldCoinbaseFlagName    = "regtestshieldcoinbase"
	DeveloperSetPoolSizeZeroFlagName = "developersetpoolsizezero"
	PresetFlagName                   = "preset"
)

// NetworkFlags select the chain and, on regtest, reshape its parameters.
func NetworkFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  NetworkFlagName,
			Usage: "Network to inspect (main|test|regtest)",
			Value: "main",
		},
		cli.StringSliceFlag{
			Name:  NUParamsFlagName,
			Usage: "Regtest upgrade activation as <upgrade>:<height|always|never> (repeatable)",
		},
		cli.StringSliceFlag{
			Name:  FundingStreamFlagName,
			Usage: "Regtest funding stream as <stream>:<start>:<end>:<addr>,<addr>,... (repeatable)",
		},
		cli.BoolFlag{
			Name:  RegtestShieldCoinbaseFlagName,
			Usage: "Enforce the shielded coinbase rule on regtest",
		},
		cli.BoolFlag{
			Name:  DeveloperSetPoolSizeZeroFlagName,
			Usage: "Enable the shielded pool turnstile check (ZIP 209) on regtest",
		},
		cli.StringFlag{
			Name:  PresetFlagName,
			Usage: "Regtest upgrade preset (default|sapling|ycash|blossom|canopy)",
		},
	}
}
