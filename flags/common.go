package flags

import (
	"gopkg.in/urfave/cli.v1"
)

// Names of the flags shared by every command.
const (
	ConfigFlagName       = "config"
	LogFormatFlagName    = "log.format"
	LogVerbosityFlagName = "log.verbosity"
	LogColorFlagName     = "log.color"
	SentryDSNFlagName    = "sentry.dsn"
	JSONFlagName         = "json"
)

// CommonFlags returns the base set of CLI flags shared across commands.
func CommonFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:  ConfigFlagName,
			Usage: "TOML configuration file",
		},
		cli.StringFlag{
			Name:  LogFormatFlagName,
			Usage: "Log output format (text|json)",
			Value: "text",
		},
		cli.IntFlag{
			Name:  LogVerbosityFlagName,
			Usage: "Logging verbosity (0=fatal,1=error,2=warn,3=info,4=debug,5=trace)",
			Value: 3,
		},
		cli.BoolFlag{
			Name:  LogColorFlagName,
			Usage: "Enable colored log and table output",
		},
		cli.StringFlag{
			Name:  SentryDSNFlagName,
			Usage: "Report errors to this Sentry DSN",
		},
		cli.BoolFlag{
			Name:  JSONFlagName,
			Usage: "Print command results as JSON",
		},
	}
}
