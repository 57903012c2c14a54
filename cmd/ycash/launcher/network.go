package launcher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-ycash-params/chaincfg"
	"github.com/rony4d/go-ycash-params/flags"
	"github.com/rony4d/go-ycash-params/integration"
)

// selectNetwork turns the network section of cfg into the active parameter
// set. Regtest customisations are applied through a RegtestBuilder in this
// order: preset, --nuparams, --fundingstream, policy switches.
func selectNetwork(cfg NetworkConfig) (*chaincfg.Params, error) {
	if cfg.Name != chaincfg.RegTest {
		if cfg.Preset != "" || len(cfg.NUParams) > 0 || len(cfg.FundingStreams) > 0 {
			return nil, fmt.Errorf("--%s, --%s and --%s are only allowed on regtest",
				flags.PresetFlagName, flags.NUParamsFlagName, flags.FundingStreamFlagName)
		}
		return chaincfg.Select(cfg.Name, chaincfg.SelectOptions{
			RegtestShieldCoinbase:    cfg.RegtestShieldCoinbase,
			DeveloperSetPoolSizeZero: cfg.DeveloperSetPoolSizeZero,
		})
	}

	b := chaincfg.NewRegtestBuilder()
	if cfg.Preset != "" {
		preset, err := integration.GetPresetByName(cfg.Preset)
		if err != nil {
			return nil, err
		}
		integration.ApplyPreset(b, preset)
	}
	for _, arg := range cfg.NUParams {
		u, a, err := parseNUParams(arg)
		if err != nil {
			return nil, err
		}
		b.UpdateNetworkUpgradeParameters(u, a)
	}
	for _, arg := range cfg.FundingStreams {
		i, fs, err := parseFundingStream(arg)
		if err != nil {
			return nil, err
		}
		b.UpdateFundingStreamParameters(i, fs)
	}
	if cfg.RegtestShieldCoinbase {
		b.SetCoinbaseMustBeShielded()
	}
	if cfg.DeveloperSetPoolSizeZero {
		b.SetZIP209Enabled()
	}

	p, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("regtest parameters: %w", err)
	}
	if err := chaincfg.SelectParams(p); err != nil {
		return nil, err
	}
	return p, nil
}

// parseNUParams parses <upgrade>:<height|always|never>.
func parseNUParams(arg string) (chaincfg.UpgradeIndex, chaincfg.Activation, error) {
	name, at, ok := strings.Cut(arg, ":")
	if !ok {
		return 0, chaincfg.NeverActive, fmt.Errorf("invalid nuparams %q: want <upgrade>:<height>", arg)
	}
	u, err := chaincfg.UpgradeIndexByName(name)
	if err != nil {
		return 0, chaincfg.NeverActive, fmt.Errorf("invalid nuparams %q: %w", arg, err)
	}
	if u == chaincfg.BaseSprout {
		return 0, chaincfg.NeverActive, fmt.Errorf("invalid nuparams %q: sprout cannot be rescheduled", arg)
	}
	a, err := chaincfg.ParseActivation(at)
	if err != nil {
		return 0, chaincfg.NeverActive, fmt.Errorf("invalid nuparams %q: %w", arg, err)
	}
	return u, a, nil
}

// parseFundingStream parses <stream>:<start>:<end>:<addr>,<addr>,... where
// stream is a name or an index.
func parseFundingStream(arg string) (chaincfg.FundingStreamIndex, chaincfg.FundingStream, error) {
	parts := strings.SplitN(arg, ":", 4)
	if len(parts) != 4 {
		return 0, chaincfg.FundingStream{}, fmt.Errorf("invalid fundingstream %q: want <stream>:<start>:<end>:<addresses>", arg)
	}
	i, err := parseFundingStreamIndex(parts[0])
	if err != nil {
		return 0, chaincfg.FundingStream{}, fmt.Errorf("invalid fundingstream %q: %w", arg, err)
	}
	start, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, chaincfg.FundingStream{}, fmt.Errorf("invalid fundingstream %q: start: %w", arg, err)
	}
	end, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return 0, chaincfg.FundingStream{}, fmt.Errorf("invalid fundingstream %q: end: %w", arg, err)
	}
	recipients := splitCSV(parts[3])
	if len(recipients) == 0 {
		return 0, chaincfg.FundingStream{}, fmt.Errorf("invalid fundingstream %q: no recipients", arg)
	}
	return i, chaincfg.FundingStream{
		StartHeight: idx.Block(start),
		EndHeight:   idx.Block(end),
		Recipients:  recipients,
	}, nil
}

func parseFundingStreamIndex(s string) (chaincfg.FundingStreamIndex, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i := chaincfg.FundingStreamIndex(0); i < chaincfg.MaxFundingStreams; i++ {
		if i.String() == s {
			return i, nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n >= int(chaincfg.MaxFundingStreams) {
		return 0, fmt.Errorf("unknown funding stream %q", s)
	}
	return chaincfg.FundingStreamIndex(n), nil
}
