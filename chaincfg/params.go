// Package chaincfg defines the chain parameters of the Ycash networks.
//
// This package provides:
//   - the network upgrade schedule and epoch resolution by height
//   - per-epoch proof-of-work parameters with network-default fallback
//   - subsidy halving and funding period arithmetic
//   - the founders reward address rotation and payout scripts
//   - per-network parameter sets and process-wide network selection
//
// A *Params is immutable once published. Regtest harnesses derive altered
// parameter sets through RegtestBuilder instead of mutating shared state.
package chaincfg

import (
	"encoding/json"
	"math/big"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/hashicorp/go-multierror"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/rony4d/go-ycash-params/keyio"
	"github.com/rony4d/go-ycash-params/script"
)

// Network names.
const (
	MainNet = "main"
	TestNet = "test"
	RegTest = "regtest"
)

const scriptCacheSize = 128

// Params is the full parameter set of one network.
//
// Note: fields are exported for inspection and serialization only. Treat a
// *Params obtained from this package as read-only; use Copy or RegtestBuilder
// to derive a modified set.
type Params struct {
	Name string

	Consensus    Consensus
	KeyConstants keyio.Constants

	CurrencyUnits    string
	BIP44CoinType    uint32
	MessageStart     [4]byte
	AlertPubKey      []byte
	DefaultPort      uint16
	PruneAfterHeight idx.Block
	DNSSeeds         []DNSSeed

	Genesis     GenesisInfo
	Checkpoints CheckpointData

	SproutValuePool SproutValuePoolCheckpoint
	ZIP209Enabled   bool

	CoinbaseMustBeShielded        bool
	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool

	// LegacyFoundersRewardAddresses are paid before the Ycash upgrade and are
	// written with the legacy prefixes.
	LegacyFoundersRewardAddresses []string
	// FoundersRewardAddresses rotate from the Ycash upgrade onwards.
	FoundersRewardAddresses []string

	keyIO   *keyio.KeyIO
	scripts *lru.Cache[string, script.Script]
}

// Validate checks the invariants a parameter set must satisfy before use. All
// violations are reported together.
func (p *Params) Validate() error {
	var errs *multierror.Error
	c := &p.Consensus

	if err := c.validateSchedule(); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.PostBlossomPowTargetSpacing <= 0 || c.PostBlossomPowTargetSpacing >= c.PreBlossomPowTargetSpacing {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity,
			"post-Blossom spacing %s must be positive and below pre-Blossom spacing %s",
			c.PostBlossomPowTargetSpacing, c.PreBlossomPowTargetSpacing))
	}
	if c.PreBlossomSubsidyHalvingInterval == 0 || c.PostBlossomSubsidyHalvingInterval == 0 {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity, "halving intervals must be positive"))
	} else if n := len(p.LegacyFoundersRewardAddresses); n == 0 || idx.Block(n) > c.LastFoundersRewardBlockHeight(0) {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity,
			"%d legacy founders addresses for %d reward blocks", n, c.LastFoundersRewardBlockHeight(0)))
	}
	if !c.Upgrades[UpgradeYcash].Activation.IsNever() && len(p.FoundersRewardAddresses) == 0 {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity, "ycash upgrade scheduled without founders addresses"))
	}
	if c.PowLimit == nil || c.PowLimit.Sign() <= 0 {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity, "pow limit must be positive"))
	} else if new(big.Int).Div(maxUint256, c.PowLimit).Cmp(big.NewInt(c.PowAveragingWindow)) < 0 {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity, "pow limit overflows the averaging window"))
	}
	for i, fs := range c.FundingStreams {
		if fs == nil {
			continue
		}
		if err := ValidateFundingStream(c, fs); err != nil {
			errs = multierror.Append(errs, errorf(ErrScheduleIntegrity, "funding stream %s: %v", FundingStreamIndex(i), err))
		}
	}
	if !p.Checkpoints.sorted() {
		errs = multierror.Append(errs, errorf(ErrScheduleIntegrity, "checkpoints are not sorted by height"))
	}
	return errs.ErrorOrNil()
}

// init wires the derived helpers. It does not validate.
func (p *Params) init() {
	p.keyIO = keyio.New(&p.KeyConstants)
	cache, err := lru.New[string, script.Script](scriptCacheSize)
	if err != nil {
		panic(err)
	}
	p.scripts = cache
}

func (p *Params) finalize() (*Params, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p.init()
	return p, nil
}

func mustFinalize(p *Params) *Params {
	p, err := p.finalize()
	if err != nil {
		panic(err)
	}
	return p
}

// KeyIO returns the address codec for this network.
func (p *Params) KeyIO() *keyio.KeyIO {
	return p.keyIO
}

// Copy returns a deep copy with its own caches.
func (p *Params) Copy() *Params {
	cp := *p
	cp.Consensus = p.Consensus.Copy()
	cp.KeyConstants = p.KeyConstants.Copy()
	cp.AlertPubKey = append([]byte(nil), p.AlertPubKey...)
	cp.DNSSeeds = append([]DNSSeed(nil), p.DNSSeeds...)
	cp.Checkpoints = p.Checkpoints.Copy()
	cp.LegacyFoundersRewardAddresses = append([]string(nil), p.LegacyFoundersRewardAddresses...)
	cp.FoundersRewardAddresses = append([]string(nil), p.FoundersRewardAddresses...)
	cp.init()
	return &cp
}

// String returns the JSON form of the parameter set.
func (p *Params) String() string {
	b, _ := json.Marshal(p)
	return string(b)
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))
