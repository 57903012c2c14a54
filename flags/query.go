package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// Names of the per-command query flags.
const (
	HeightFlagName = "height"
	CountFlagName  = "count"
	StepFlagName   = "step"
)

// HeightFlag is the block height a command evaluates the rules at.
var HeightFlag = cli.Uint64Flag{
	Name:  HeightFlagName,
	Usage: "Block height to evaluate at",
}

// RangeFlags walk a height range starting at --height.
func RangeFlags() []cli.Flag {
	return []cli.Flag{
		HeightFlag,
		cli.IntFlag{
			Name:  CountFlagName,
			Usage: "Number of heights to print",
			Value: 1,
		},
		cli.Uint64Flag{
			Name:  StepFlagName,
			Usage: "Distance between printed heights",
			Value: 1,
		},
	}
}
