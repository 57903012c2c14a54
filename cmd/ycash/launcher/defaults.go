package launcher

import (
	"github.com/rony4d/go-ycash-params/chaincfg"
)

// Defaults bundles the baseline configuration values the launcher uses before
// the config file and flags override them.
type Defaults struct {
	Network NetworkDefaults
	Logging LoggingDefaults
	Output  OutputDefaults
}

// NetworkDefaults selects the chain inspected when nothing else is given.
type NetworkDefaults struct {
	Name   string // main, test or regtest
	Preset string // regtest preset applied before --nuparams, empty for none
}

// LoggingDefaults controls log verbosity/format.
type LoggingDefaults struct {
	Verbosity int    // 0=fatal, 1=error, 2=warn, 3=info, 4=debug, 5=trace
	Format    string // text or json
	Color     bool
}

// OutputDefaults controls how command results are printed.
type OutputDefaults struct {
	JSON  bool
	Color bool
}

// DefaultConfig returns a fully populated Defaults instance.
func DefaultConfig() Defaults {
	return Defaults{
		Network: NetworkDefaults{
			Name: chaincfg.MainNet,
		},
		Logging: LoggingDefaults{
			Verbosity: 2,
			Format:    "text",
		},
	}
}
