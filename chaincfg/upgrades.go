package chaincfg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// UpgradeIndex identifies a network upgrade. Indices are dense and ordered by
// deployment.
type UpgradeIndex int

const (
	BaseSprout UpgradeIndex = iota
	UpgradeTestDummy
	UpgradeOverwinter
	UpgradeSapling
	UpgradeYcash
	UpgradeBlossom
	UpgradeHeartwood
	UpgradeCanopy
	UpgradeNU5
	// UpgradeZFuture is a placeholder that never activates on public networks.
	UpgradeZFuture

	MaxNetworkUpgrades
)

var upgradeNames = [MaxNetworkUpgrades]string{
	"sprout", "testdummy", "overwinter", "sapling", "ycash",
	"blossom", "heartwood", "canopy", "nu5", "zfuture",
}

func (u UpgradeIndex) String() string {
	if u < 0 || u >= MaxNetworkUpgrades {
		return "upgrade(" + strconv.Itoa(int(u)) + ")"
	}
	return upgradeNames[u]
}

// UpgradeIndexByName resolves a lowercase upgrade name.
func UpgradeIndexByName(name string) (UpgradeIndex, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range upgradeNames {
		if n == name {
			return UpgradeIndex(i), nil
		}
	}
	return 0, fmt.Errorf("unknown network upgrade %q", name)
}

type activationKind uint8

const (
	neverActive activationKind = iota
	alwaysActive
	atHeight
)

// Activation says when an upgrade takes effect. The zero value never
// activates.
type Activation struct {
	kind   activationKind
	height idx.Block
}

var (
	NeverActive  = Activation{}
	AlwaysActive = Activation{kind: alwaysActive}
)

// ActivateAt activates an upgrade from height h onwards.
func ActivateAt(h idx.Block) Activation {
	return Activation{kind: atHeight, height: h}
}

// ActiveAt reports whether the activation has happened by height h.
func (a Activation) ActiveAt(h idx.Block) bool {
	switch a.kind {
	case alwaysActive:
		return true
	case atHeight:
		return h >= a.height
	}
	return false
}

// Height returns the numeric activation height, if there is one.
func (a Activation) Height() (idx.Block, bool) {
	return a.height, a.kind == atHeight
}

func (a Activation) IsNever() bool  { return a.kind == neverActive }
func (a Activation) IsAlways() bool { return a.kind == alwaysActive }

func (a Activation) Equal(b Activation) bool { return a == b }

func (a Activation) String() string {
	switch a.kind {
	case alwaysActive:
		return "always"
	case atHeight:
		return strconv.FormatUint(uint64(a.height), 10)
	}
	return "never"
}

// MarshalText encodes "always", "never" or the decimal height.
func (a Activation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Activation) UnmarshalText(text []byte) error {
	act, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = act
	return nil
}

// ParseActivation reads the MarshalText form.
func ParseActivation(s string) (Activation, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "always":
		return AlwaysActive, nil
	case "never", "":
		return NeverActive, nil
	}
	h, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return NeverActive, fmt.Errorf("invalid activation %q: %w", s, err)
	}
	return ActivateAt(idx.Block(h)), nil
}

// Upgrade describes one network upgrade on one network.
type Upgrade struct {
	ProtocolVersion uint32
	Activation      Activation
	// ActivationBlockHash pins the block at the activation height, when known.
	ActivationBlockHash *common.Hash `json:",omitempty"`
}

// UpgradeState is the status of an upgrade at a height.
type UpgradeState int

const (
	UpgradeDisabled UpgradeState = iota
	UpgradePending
	UpgradeActive
)

func (s UpgradeState) String() string {
	switch s {
	case UpgradePending:
		return "pending"
	case UpgradeActive:
		return "active"
	}
	return "disabled"
}

// IsActive reports whether upgrade u is in force at height h.
func (c *Consensus) IsActive(u UpgradeIndex, h idx.Block) bool {
	return c.Upgrades[u].Activation.ActiveAt(h)
}

// CurrentEpoch returns the highest upgrade active at height h. BaseSprout is
// always active, so the scan terminates.
func (c *Consensus) CurrentEpoch(h idx.Block) UpgradeIndex {
	for u := MaxNetworkUpgrades - 1; u > BaseSprout; u-- {
		if c.IsActive(u, h) {
			return u
		}
	}
	return BaseSprout
}

// State classifies upgrade u at height h.
func (c *Consensus) State(h idx.Block, u UpgradeIndex) UpgradeState {
	a := c.Upgrades[u].Activation
	switch {
	case a.IsNever():
		return UpgradeDisabled
	case a.ActiveAt(h):
		return UpgradeActive
	}
	return UpgradePending
}

// IsActivationHeight reports whether h is exactly the activation height of u.
// BaseSprout has no activation height.
func (c *Consensus) IsActivationHeight(h idx.Block, u UpgradeIndex) bool {
	if u == BaseSprout {
		return false
	}
	at, ok := c.Upgrades[u].Activation.Height()
	return ok && at == h
}

func (c *Consensus) IsActivationHeightForAnyUpgrade(h idx.Block) bool {
	for u := BaseSprout + 1; u < MaxNetworkUpgrades; u++ {
		if c.IsActivationHeight(h, u) {
			return true
		}
	}
	return false
}

// NextEpoch returns the lowest upgrade still pending at height h.
func (c *Consensus) NextEpoch(h idx.Block) (UpgradeIndex, bool) {
	for u := BaseSprout + 1; u < MaxNetworkUpgrades; u++ {
		if c.State(h, u) == UpgradePending {
			return u, true
		}
	}
	return 0, false
}

// NextActivationHeight returns the activation height of NextEpoch(h).
func (c *Consensus) NextActivationHeight(h idx.Block) (idx.Block, bool) {
	u, ok := c.NextEpoch(h)
	if !ok {
		return 0, false
	}
	return c.Upgrades[u].Activation.Height()
}

// validateSchedule checks that numeric activation heights never decrease with
// the upgrade index. Sentinel activations are not compared.
func (c *Consensus) validateSchedule() error {
	if !c.Upgrades[BaseSprout].Activation.IsAlways() {
		return fmt.Errorf("%w: sprout must always be active", ErrScheduleIntegrity)
	}
	var (
		prev    idx.Block
		prevIdx = BaseSprout
		seen    bool
	)
	for u := BaseSprout + 1; u < MaxNetworkUpgrades; u++ {
		h, ok := c.Upgrades[u].Activation.Height()
		if !ok {
			continue
		}
		if seen && h < prev {
			return fmt.Errorf("%w: %s activates at %d, before %s at %d",
				ErrScheduleIntegrity, u, h, prevIdx, prev)
		}
		prev, prevIdx, seen = h, u, true
	}
	return nil
}
