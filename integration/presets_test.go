package integration

import (
	"strings"
	"testing"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-ycash-params/chaincfg"
)

// TestDefaultPreset_isPlainRegtest verifies that the default preset leaves the
// regtest parameters untouched.
func TestDefaultPreset_isPlainRegtest(t *testing.T) {
	p, err := ApplyPreset(chaincfg.NewRegtestBuilder(), DefaultPreset()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got, want := p.Fingerprint(), chaincfg.RegTestParams().Fingerprint(); got != want {
		t.Fatalf("fingerprint = %s, want %s", got.Hex(), want.Hex())
	}
}

// TestPresets_build verifies that every preset produces a valid parameter set
// and that the expected epoch is in force.
func TestPresets_build(t *testing.T) {
	tests := []struct {
		preset string
		height idx.Block
		epoch  chaincfg.UpgradeIndex
	}{
		{"default", 1000, chaincfg.BaseSprout},
		{"sapling", 0, chaincfg.UpgradeSapling},
		{"ycash", 149, chaincfg.UpgradeSapling},
		{"ycash", 150, chaincfg.UpgradeYcash},
		{"blossom", 151, chaincfg.UpgradeBlossom},
		{"canopy", 0, chaincfg.UpgradeCanopy},
	}
	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			preset, err := GetPresetByName(tt.preset)
			if err != nil {
				t.Fatalf("GetPresetByName: %v", err)
			}
			p, err := ApplyPreset(chaincfg.NewRegtestBuilder(), preset).Build()
			if err != nil {
				t.Fatalf("Build: %v", err)
			}
			if got := p.Consensus.CurrentEpoch(tt.height); got != tt.epoch {
				t.Fatalf("epoch at %d = %s, want %s", tt.height, got, tt.epoch)
			}
		})
	}
}

// TestYcashPreset_bothRotationRegimes checks that the ycash preset reaches the
// legacy and the post-fork founders lists.
func TestYcashPreset_bothRotationRegimes(t *testing.T) {
	p, err := ApplyPreset(chaincfg.NewRegtestBuilder(), YcashPreset()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, legacy := p.FoundersRewardIndexAtHeight(149); !legacy {
		t.Fatal("height 149 should pay a legacy founders address")
	}
	if _, legacy := p.FoundersRewardIndexAtHeight(150); legacy {
		t.Fatal("height 150 should pay a post-fork founders address")
	}
}

// TestCanopyPreset_policySwitches verifies the policy flags carried by the
// canopy preset.
func TestCanopyPreset_policySwitches(t *testing.T) {
	p, err := ApplyPreset(chaincfg.NewRegtestBuilder(), CanopyPreset()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !p.CoinbaseMustBeShielded || !p.ZIP209Enabled {
		t.Fatalf("CoinbaseMustBeShielded = %v, ZIP209Enabled = %v, want both true", p.CoinbaseMustBeShielded, p.ZIP209Enabled)
	}
}

// TestApplyPreset_keepsEarlierSwitches verifies that a preset never turns a
// policy check back off.
func TestApplyPreset_keepsEarlierSwitches(t *testing.T) {
	b := chaincfg.NewRegtestBuilder().SetCoinbaseMustBeShielded()
	p, err := ApplyPreset(b, SaplingPreset()).Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !p.CoinbaseMustBeShielded {
		t.Fatal("CoinbaseMustBeShielded was reset by the preset")
	}
}

// TestPresets_areIndependent guards against presets sharing their upgrade
// maps.
func TestPresets_areIndependent(t *testing.T) {
	a := SaplingPreset()
	a.Upgrades[chaincfg.UpgradeCanopy] = chaincfg.AlwaysActive
	if _, ok := SaplingPreset().Upgrades[chaincfg.UpgradeCanopy]; ok {
		t.Fatal("mutating a preset leaked into the next call")
	}
}

// TestGetPresetByName_invalidName verifies that unknown names are rejected
// with the list of valid ones.
func TestGetPresetByName_invalidName(t *testing.T) {
	for _, name := range []string{"", "lite", "Canopy"} {
		_, err := GetPresetByName(name)
		if err == nil {
			t.Fatalf("GetPresetByName(%q) should fail", name)
		}
		if !strings.Contains(err.Error(), "valid: blossom, canopy, default, sapling, ycash") {
			t.Fatalf("error %q does not list the valid presets", err)
		}
	}
}
