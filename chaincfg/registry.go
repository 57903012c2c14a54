package chaincfg

import (
	"fmt"
	"sort"

	"github.com/algorand/go-deadlock"
	"go.uber.org/atomic"

	"github.com/rony4d/go-ycash-params/logging"
)

var log = logging.Module("chaincfg")

var (
	registryMu deadlock.RWMutex
	registry   = map[string]*Params{}

	active = atomic.NewPointer[Params](nil)
)

func init() {
	for _, p := range []*Params{MainNetParams(), TestNetParams(), RegTestParams()} {
		registry[p.Name] = p
	}
}

// Register adds a custom parameter set under its name. The set is validated
// first; names are unique.
func Register(p *Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("register %q: %w", p.Name, err)
	}
	cp := p.Copy()

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[cp.Name]; ok {
		return fmt.Errorf("register %q: network already registered", cp.Name)
	}
	registry[cp.Name] = cp
	return nil
}

// ParamsFor returns the registered parameter set for a network name.
func ParamsFor(network string) (*Params, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	p, ok := registry[network]
	if !ok {
		return nil, fmt.Errorf("%w %q (registered: %v)", ErrUnknownNetwork, network, registeredLocked())
	}
	return p, nil
}

// Registered lists the registered network names.
func Registered() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return registeredLocked()
}

func registeredLocked() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SelectOptions are the regtest switches honoured at selection time.
type SelectOptions struct {
	// RegtestShieldCoinbase enforces the shielded coinbase rule on regtest.
	RegtestShieldCoinbase bool
	// DeveloperSetPoolSizeZero enables the ZIP209 turnstile check on regtest.
	DeveloperSetPoolSizeZero bool
}

// Select makes the named network the process-wide active parameter set.
// Options only apply to regtest.
func Select(network string, opts SelectOptions) (*Params, error) {
	p, err := ParamsFor(network)
	if err != nil {
		return nil, err
	}
	if network == RegTest && (opts.RegtestShieldCoinbase || opts.DeveloperSetPoolSizeZero) {
		b := NewRegtestBuilder()
		if opts.RegtestShieldCoinbase {
			b.SetCoinbaseMustBeShielded()
		}
		if opts.DeveloperSetPoolSizeZero {
			b.SetZIP209Enabled()
		}
		if p, err = b.Build(); err != nil {
			return nil, err
		}
	}
	activate(p)
	return p, nil
}

// SelectParams activates a parameter set derived through RegtestBuilder.
func SelectParams(p *Params) error {
	if p.Name != RegTest {
		return fmt.Errorf("only regtest parameter sets can be selected directly, got %q", p.Name)
	}
	if p.keyIO == nil {
		return fmt.Errorf("parameter set was not built by RegtestBuilder")
	}
	activate(p)
	return nil
}

func activate(p *Params) {
	if prev := active.Swap(p); prev != nil && prev != p {
		log.Warnf("Replacing active chain parameters %s with %s", prev.Name, p.Name)
	}
	log.WithFields(logging.Fields{
		"network":     p.Name,
		"fingerprint": p.Fingerprint().Hex(),
	}).Info("Chain parameters selected")
}

// Active returns the selected parameter set. It panics with ErrNotInitialized
// before any selection.
func Active() *Params {
	p := active.Load()
	if p == nil {
		panic(ErrNotInitialized)
	}
	return p
}

// IsSelected reports whether a network has been selected.
func IsSelected() bool {
	return active.Load() != nil
}

func resetActive() {
	active.Store(nil)
}
