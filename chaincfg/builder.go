package chaincfg

import (
	"github.com/ethereum/go-ethereum/common"
)

// RegtestBuilder derives regtest parameter sets for test harnesses. It owns a
// private copy of the regtest parameters until Build, so nothing shared is
// ever mutated.
//
// Update methods panic with ErrPrecondition on out of range indices, matching
// the consensus code's treatment of malformed schedules.
type RegtestBuilder struct {
	p *Params
}

// NewRegtestBuilder starts from the default regtest parameters.
func NewRegtestBuilder() *RegtestBuilder {
	return &RegtestBuilder{p: newRegTestParams()}
}

// UpdateNetworkUpgradeParameters reschedules upgrade u. Sprout cannot be
// rescheduled.
func (b *RegtestBuilder) UpdateNetworkUpgradeParameters(u UpgradeIndex, a Activation) *RegtestBuilder {
	if u <= BaseSprout || u >= MaxNetworkUpgrades {
		fatal(ErrPrecondition, "upgrade index %d out of range (%d, %d)", u, BaseSprout, MaxNetworkUpgrades)
	}
	b.p.Consensus.Upgrades[u].Activation = a
	return b
}

// UpdateFundingStreamParameters installs fs as stream i.
func (b *RegtestBuilder) UpdateFundingStreamParameters(i FundingStreamIndex, fs FundingStream) *RegtestBuilder {
	if i < 0 || i >= MaxFundingStreams {
		fatal(ErrPrecondition, "funding stream index %d out of range [0, %d)", i, MaxFundingStreams)
	}
	v := fs.Copy()
	b.p.Consensus.FundingStreams[i] = &v
	return b
}

// UpdateRegtestPow replaces the difficulty adjustment bounds and limit.
func (b *RegtestBuilder) UpdateRegtestPow(maxAdjustDown, maxAdjustUp int64, powLimit common.Hash, noRetargeting bool) *RegtestBuilder {
	c := &b.p.Consensus
	c.PowMaxAdjustDown = maxAdjustDown
	c.PowMaxAdjustUp = maxAdjustUp
	c.PowLimit = powLimit.Big()
	c.PowNoRetargeting = noRetargeting
	return b
}

// SetZIP209Enabled turns on the shielded pool turnstile check.
func (b *RegtestBuilder) SetZIP209Enabled() *RegtestBuilder {
	b.p.ZIP209Enabled = true
	return b
}

// SetCoinbaseMustBeShielded enforces the shielded coinbase rule.
func (b *RegtestBuilder) SetCoinbaseMustBeShielded() *RegtestBuilder {
	b.p.CoinbaseMustBeShielded = true
	return b
}

// Build validates and returns a frozen copy. The builder stays usable.
func (b *RegtestBuilder) Build() (*Params, error) {
	return b.p.Copy().finalize()
}
