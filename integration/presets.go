// Package integration provides named regtest profiles for test harnesses.
// A preset bundles an upgrade schedule and the regtest policy switches so a
// harness can say "sapling" instead of listing every activation height.
//
// Usage:
//
//	preset, err := integration.GetPresetByName("blossom")
//	b := integration.ApplyPreset(chaincfg.NewRegtestBuilder(), preset)
//	params, err := b.Build()
package integration

import (
	"fmt"
	"sort"
	"strings"

	"github.com/rony4d/go-ycash-params/chaincfg"
)

// PresetConfig captures what varies between regtest profiles.
type PresetConfig struct {
	Name string
	// Upgrades are applied in index order; unlisted upgrades keep the
	// builder's value.
	Upgrades map[chaincfg.UpgradeIndex]chaincfg.Activation
	// ShieldCoinbase enforces the shielded coinbase rule.
	ShieldCoinbase bool
	// ZIP209 enables the shielded pool turnstile check.
	ZIP209 bool
}

// DefaultPreset leaves every upgrade after Sprout disabled, matching plain
// regtest.
func DefaultPreset() PresetConfig {
	return PresetConfig{
		Name:     "default",
		Upgrades: map[chaincfg.UpgradeIndex]chaincfg.Activation{},
	}
}

// SaplingPreset starts the chain with Overwinter and Sapling active.
func SaplingPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "sapling"
	cfg.Upgrades[chaincfg.UpgradeOverwinter] = chaincfg.AlwaysActive
	cfg.Upgrades[chaincfg.UpgradeSapling] = chaincfg.AlwaysActive
	return cfg
}

// YcashPreset forks to Ycash right after the legacy founders reward range, so
// both rotation regimes are reachable.
func YcashPreset() PresetConfig {
	cfg := SaplingPreset()
	cfg.Name = "ycash"
	cfg.Upgrades[chaincfg.UpgradeYcash] = chaincfg.ActivateAt(chaincfg.PreBlossomRegtestHalvingInterval)
	return cfg
}

// BlossomPreset adds Blossom one block after the fork.
func BlossomPreset() PresetConfig {
	cfg := YcashPreset()
	cfg.Name = "blossom"
	cfg.Upgrades[chaincfg.UpgradeBlossom] = chaincfg.ActivateAt(chaincfg.PreBlossomRegtestHalvingInterval + 1)
	return cfg
}

// CanopyPreset activates everything up to Canopy from genesis and enables the
// shielded coinbase and turnstile checks those upgrades rely on.
func CanopyPreset() PresetConfig {
	cfg := DefaultPreset()
	cfg.Name = "canopy"
	for u := chaincfg.UpgradeOverwinter; u <= chaincfg.UpgradeCanopy; u++ {
		cfg.Upgrades[u] = chaincfg.AlwaysActive
	}
	cfg.ShieldCoinbase = true
	cfg.ZIP209 = true
	return cfg
}

var presets = map[string]func() PresetConfig{
	"default": DefaultPreset,
	"sapling": SaplingPreset,
	"ycash":   YcashPreset,
	"blossom": BlossomPreset,
	"canopy":  CanopyPreset,
}

// PresetNames lists the known presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// GetPresetByName looks up a preset by its identifier. This helper backs the
// --preset flag.
func GetPresetByName(name string) (PresetConfig, error) {
	mk, ok := presets[name]
	if !ok {
		return PresetConfig{}, fmt.Errorf("unknown preset: %q (valid: %s)", name, strings.Join(PresetNames(), ", "))
	}
	return mk(), nil
}

// ApplyPreset replays the preset onto b. Boolean switches only ever turn
// checks on, so presets compose with flags applied before them.
func ApplyPreset(b *chaincfg.RegtestBuilder, preset PresetConfig) *chaincfg.RegtestBuilder {
	for u := chaincfg.UpgradeOverwinter; u < chaincfg.MaxNetworkUpgrades; u++ {
		if a, ok := preset.Upgrades[u]; ok {
			b.UpdateNetworkUpgradeParameters(u, a)
		}
	}
	if preset.ShieldCoinbase {
		b.SetCoinbaseMustBeShielded()
	}
	if preset.ZIP209 {
		b.SetZIP209Enabled()
	}
	return b
}
