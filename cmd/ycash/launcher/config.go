package launcher

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-ycash-params/flags"
	"github.com/rony4d/go-ycash-params/logging"
)

// Config aggregates everything the launcher needs to pick a network and print
// results.
type Config struct {
	Network NetworkConfig `toml:"network"`
	Logging LoggingConfig `toml:"logging"`
	Output  OutputConfig  `toml:"output"`
}

// NetworkConfig selects the network. The regtest fields are rejected for any
// other network.
type NetworkConfig struct {
	Name   string `toml:"name"`
	Preset string `toml:"preset,omitempty"`
	// NUParams are <upgrade>:<activation> pairs.
	NUParams []string `toml:"nuparams,omitempty"`
	// FundingStreams are <stream>:<start>:<end>:<addr>,... specs.
	FundingStreams           []string `toml:"fundingstreams,omitempty"`
	RegtestShieldCoinbase    bool     `toml:"regtestshieldcoinbase,omitempty"`
	DeveloperSetPoolSizeZero bool     `toml:"developersetpoolsizezero,omitempty"`
}

type LoggingConfig struct {
	Verbosity int    `toml:"verbosity"`
	Format    string `toml:"format"`
	Color     bool   `toml:"color"`
	SentryDSN string `toml:"sentrydsn,omitempty"`
}

type OutputConfig struct {
	JSON  bool `toml:"json"`
	Color bool `toml:"color"`
}

func (c LoggingConfig) logging() logging.Config {
	return logging.Config{
		Verbosity: c.Verbosity,
		Format:    c.Format,
		Color:     c.Color,
		SentryDSN: c.SentryDSN,
	}
}

func defaultConfig() Config {
	d := DefaultConfig()
	return Config{
		Network: NetworkConfig{
			Name:   d.Network.Name,
			Preset: d.Network.Preset,
		},
		Logging: LoggingConfig{
			Verbosity: d.Logging.Verbosity,
			Format:    d.Logging.Format,
			Color:     d.Logging.Color,
		},
		Output: OutputConfig{
			JSON:  d.Output.JSON,
			Color: d.Output.Color,
		},
	}
}

// MakeAllConfigs merges defaults, the optional config file, then CLI flag
// overrides.
func MakeAllConfigs(ctx *cli.Context) (Config, error) {
	cfg := defaultConfig()

	if file := ctx.GlobalString(flags.ConfigFlagName); file != "" {
		if err := loadConfigFile(resolvePath(file), &cfg); err != nil {
			return Config{}, err
		}
	}

	applyCLIOverrides(ctx, &cfg)
	return cfg, nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read config file")
	}
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return errors.Wrapf(err, "decode config file %s", path)
	}
	return nil
}

// dumpConfig renders cfg in the config file format.
func dumpConfig(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

func applyCLIOverrides(ctx *cli.Context, cfg *Config) {
	if ctx.GlobalIsSet(flags.NetworkFlagName) {
		cfg.Network.Name = ctx.GlobalString(flags.NetworkFlagName)
	}
	if ctx.GlobalIsSet(flags.PresetFlagName) {
		cfg.Network.Preset = ctx.GlobalString(flags.PresetFlagName)
	}
	if ctx.GlobalIsSet(flags.NUParamsFlagName) {
		cfg.Network.NUParams = append(cfg.Network.NUParams, ctx.GlobalStringSlice(flags.NUParamsFlagName)...)
	}
	if ctx.GlobalIsSet(flags.FundingStreamFlagName) {
		cfg.Network.FundingStreams = append(cfg.Network.FundingStreams, ctx.GlobalStringSlice(flags.FundingStreamFlagName)...)
	}
	if ctx.GlobalBool(flags.RegtestShieldCoinbaseFlagName) {
		cfg.Network.RegtestShieldCoinbase = true
	}
	if ctx.GlobalBool(flags.DeveloperSetPoolSizeZeroFlagName) {
		cfg.Network.DeveloperSetPoolSizeZero = true
	}

	if ctx.GlobalIsSet(flags.LogFormatFlagName) {
		cfg.Logging.Format = ctx.GlobalString(flags.LogFormatFlagName)
	}
	if ctx.GlobalIsSet(flags.LogVerbosityFlagName) {
		cfg.Logging.Verbosity = ctx.GlobalInt(flags.LogVerbosityFlagName)
	}
	if ctx.GlobalIsSet(flags.LogColorFlagName) {
		cfg.Logging.Color = ctx.GlobalBool(flags.LogColorFlagName)
		cfg.Output.Color = cfg.Logging.Color
	}
	if ctx.GlobalIsSet(flags.SentryDSNFlagName) {
		cfg.Logging.SentryDSN = ctx.GlobalString(flags.SentryDSNFlagName)
	}
	if ctx.GlobalBool(flags.JSONFlagName) {
		cfg.Output.JSON = true
	}
}

func resolvePath(p string) string {
	if strings.HasPrefix(p, "~") {
		return filepath.Join(GuessHomeDir(), strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(GuessWorkDir(), p)
}

func splitCSV(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func GuessWorkDir() string {
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}

func GuessHomeDir() string {
	if dir, err := os.UserHomeDir(); err == nil {
		return dir
	}
	return "."
}
