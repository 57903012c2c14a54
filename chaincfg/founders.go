package chaincfg

import (
	"github.com/Fantom-foundation/lachesis-base/inter/idx"

	"github.com/rony4d/go-ycash-params/keyio"
	"github.com/rony4d/go-ycash-params/script"
)

// YcashFoundersAddressChangeInterval is the post-fork rotation period, about
// one month of blocks.
const YcashFoundersAddressChangeInterval idx.Block = 17917

// FoundersRewardIndexAtHeight returns the position of the founders address
// paid at height h and whether it indexes the legacy list.
//
// Before the Ycash upgrade the height is first remapped onto the pre-Blossom
// scale, must lie in (0, LastFoundersRewardBlockHeight(0)], and selects one of
// the legacy addresses in equal consecutive ranges. From the Ycash upgrade on
// the post-fork list is cycled every YcashFoundersAddressChangeInterval blocks.
func (p *Params) FoundersRewardIndexAtHeight(h idx.Block) (i int, legacy bool) {
	c := &p.Consensus
	if !c.IsActive(UpgradeYcash, h) {
		maxHeight := c.LastFoundersRewardBlockHeight(0)
		adjusted := c.FounderAddressAdjustedHeight(h)
		if adjusted == 0 || adjusted > maxHeight {
			fatal(ErrPrecondition, "height %d (adjusted %d) outside founders reward range (0, %d]", h, adjusted, maxHeight)
		}
		n := idx.Block(len(p.LegacyFoundersRewardAddresses))
		interval := (maxHeight + n) / n
		i := adjusted / interval
		if i >= n {
			fatal(ErrScheduleIntegrity, "founders index %d out of range for %d addresses", i, n)
		}
		return int(i), true
	}
	forkHeight, _ := c.Upgrades[UpgradeYcash].Activation.Height()
	n := idx.Block(len(p.FoundersRewardAddresses))
	return int(((h - forkHeight) / YcashFoundersAddressChangeInterval) % n), false
}

// FoundersRewardAddressAtHeight returns the founders address paid at height h,
// always in the current encoding.
func (p *Params) FoundersRewardAddressAtHeight(h idx.Block) string {
	i, legacy := p.FoundersRewardIndexAtHeight(h)
	if legacy {
		return p.LegacyFoundersRewardAddressAtIndex(i)
	}
	return p.FoundersRewardAddresses[i]
}

// LegacyFoundersRewardAddressAtIndex returns legacy address i re-encoded with
// the current prefixes.
func (p *Params) LegacyFoundersRewardAddressAtIndex(i int) string {
	if i < 0 || i >= len(p.LegacyFoundersRewardAddresses) {
		fatal(ErrPrecondition, "legacy founders index %d out of range [0, %d)", i, len(p.LegacyFoundersRewardAddresses))
	}
	addr, err := p.keyIO.ZecToYec(p.LegacyFoundersRewardAddresses[i])
	if err != nil {
		fatal(ErrScheduleIntegrity, "legacy founders address %d: %v", i, err)
	}
	return addr
}

// FoundersRewardAddressAtIndex returns post-fork address i.
func (p *Params) FoundersRewardAddressAtIndex(i int) string {
	if i < 0 || i >= len(p.FoundersRewardAddresses) {
		fatal(ErrPrecondition, "founders index %d out of range [0, %d)", i, len(p.FoundersRewardAddresses))
	}
	return p.FoundersRewardAddresses[i]
}

// FoundersRewardScriptAtHeight returns the output script the founders reward
// at height h must pay to. Before the fork the address must be a multisig
// script hash; afterwards key hashes are accepted too.
func (p *Params) FoundersRewardScriptAtHeight(h idx.Block) script.Script {
	c := &p.Consensus
	preFork := !c.IsActive(UpgradeYcash, h)
	if preFork {
		if last := c.LastFoundersRewardBlockHeight(h); h == 0 || h > last {
			fatal(ErrPrecondition, "height %d outside founders reward range (0, %d]", h, last)
		}
	}

	addr := p.FoundersRewardAddressAtHeight(h)
	if s, ok := p.scripts.Get(addr); ok {
		if preFork && !s.IsPayToScriptHash() {
			fatal(ErrScheduleIntegrity, "pre-fork founders address %s is not a script hash", addr)
		}
		return s.Copy()
	}

	d, err := p.keyIO.DecodeDestination(addr)
	if err != nil {
		fatal(ErrScheduleIntegrity, "founders address %s: %v", addr, err)
	}
	if preFork && d.Kind != keyio.ScriptDestination {
		fatal(ErrScheduleIntegrity, "pre-fork founders address %s is not a script hash", addr)
	}
	s := script.ForDestination(d)
	if s == nil {
		fatal(ErrScheduleIntegrity, "founders address %s has no payout script", addr)
	}
	p.scripts.Add(addr, s)
	return s.Copy()
}
