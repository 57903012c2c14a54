package launcher

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
	"gopkg.in/urfave/cli.v1"

	"github.com/rony4d/go-ycash-params/chaincfg"
	"github.com/rony4d/go-ycash-params/flags"
)

// environment is what the app's Before hook prepares for every command.
type environment struct {
	cfg    Config
	params *chaincfg.Params
	out    *printer
}

func (env *environment) commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "schedule",
			Usage:  "Print the network upgrade schedule and each upgrade's state",
			Flags:  []cli.Flag{flags.HeightFlag},
			Action: env.schedule,
		},
		{
			Name:   "epoch",
			Usage:  "Resolve the consensus epoch and the next upgrade for heights",
			Flags:  flags.RangeFlags(),
			Action: env.epoch,
		},
		{
			Name:   "pow",
			Usage:  "Print the proof-of-work parameters in force at heights",
			Flags:  flags.RangeFlags(),
			Action: env.pow,
		},
		{
			Name:   "subsidy",
			Usage:  "Print halving, founders reward and funding stream data for heights",
			Flags:  flags.RangeFlags(),
			Action: env.subsidy,
		},
		{
			Name:   "founders",
			Usage:  "Print the founders reward address and payout script for heights",
			Flags:  flags.RangeFlags(),
			Action: env.founders,
		},
		{
			Name:   "checkpoints",
			Usage:  "List the hardcoded block checkpoints",
			Action: env.checkpoints,
		},
		{
			Name:   "fingerprint",
			Usage:  "Print the hash identifying the consensus rules of the selected parameters",
			Action: env.fingerprint,
		},
		{
			Name:   "dumpconfig",
			Usage:  "Print the effective launcher configuration as TOML",
			Action: env.dumpConfig,
		},
	}
}

// heights expands --height, --count and --step.
func heights(ctx *cli.Context) ([]idx.Block, error) {
	count := ctx.Int(flags.CountFlagName)
	if count < 1 {
		return nil, fmt.Errorf("--%s must be positive, got %d", flags.CountFlagName, count)
	}
	step := ctx.Uint64(flags.StepFlagName)
	if step == 0 && count > 1 {
		return nil, fmt.Errorf("--%s must be positive", flags.StepFlagName)
	}
	h := idx.Block(ctx.Uint64(flags.HeightFlagName))
	out := make([]idx.Block, 0, count)
	for i := 0; i < count; i++ {
		out = append(out, h+idx.Block(uint64(i)*step))
	}
	return out, nil
}

// guard turns precondition panics raised by chaincfg into errors. Integrity
// violations are not recoverable and keep unwinding.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, chaincfg.ErrPrecondition) {
				err = e
				return
			}
			panic(r)
		}
	}()
	return fn()
}

type scheduleRow struct {
	Upgrade         string
	ProtocolVersion uint32
	Activation      chaincfg.Activation
	State           string
	ActivationHash  *common.Hash `json:",omitempty"`
}

func (env *environment) schedule(ctx *cli.Context) error {
	c := &env.params.Consensus
	h := idx.Block(ctx.Uint64(flags.HeightFlagName))

	var rows []scheduleRow
	t := table{header: []string{"upgrade", "protocol", "activation", "state@" + strconv.FormatUint(uint64(h), 10), "block hash"}}
	for u := chaincfg.BaseSprout; u < chaincfg.MaxNetworkUpgrades; u++ {
		up := c.Upgrades[u]
		state := c.State(h, u)
		rows = append(rows, scheduleRow{u.String(), up.ProtocolVersion, up.Activation, state.String(), up.ActivationBlockHash})

		hash := "-"
		if up.ActivationBlockHash != nil {
			hash = up.ActivationBlockHash.Hex()
		}
		t.rows = append(t.rows, []string{
			u.String(), strconv.FormatUint(uint64(up.ProtocolVersion), 10), up.Activation.String(), env.stateCell(state), hash,
		})
	}
	t.value = rows
	return env.out.print(t)
}

func (env *environment) stateCell(s chaincfg.UpgradeState) string {
	switch s {
	case chaincfg.UpgradeActive:
		return env.out.highlight(color.FgGreen, s.String())
	case chaincfg.UpgradePending:
		return env.out.highlight(color.FgYellow, s.String())
	}
	return s.String()
}

type epochRow struct {
	Height           idx.Block
	Epoch            string
	ActivationHeight bool
	NextUpgrade      string     `json:",omitempty"`
	NextActivationAt *idx.Block `json:",omitempty"`
}

func (env *environment) epoch(ctx *cli.Context) error {
	hs, err := heights(ctx)
	if err != nil {
		return err
	}
	c := &env.params.Consensus
	t := table{header: []string{"height", "epoch", "activates here", "next upgrade", "next activation"}}
	var rows []epochRow
	for _, h := range hs {
		r := epochRow{
			Height:           h,
			Epoch:            c.CurrentEpoch(h).String(),
			ActivationHeight: c.IsActivationHeightForAnyUpgrade(h),
		}
		next, hasNext := c.NextEpoch(h)
		if hasNext {
			r.NextUpgrade = next.String()
		}
		at, hasAt := c.NextActivationHeight(h)
		if hasAt {
			r.NextActivationAt = &at
		}
		rows = append(rows, r)
		t.rows = append(t.rows, []string{
			strconv.FormatUint(uint64(h), 10), r.Epoch, yesNo(r.ActivationHeight),
			optional(r.NextUpgrade, hasNext), optional(at, hasAt),
		})
	}
	t.value = rows
	return env.out.print(t)
}

type powRow struct {
	Height              idx.Block
	EquihashN           uint32
	EquihashK           uint32
	TargetSpacing       time.Duration
	AveragingWindow     time.Duration
	MinActualTimespan   time.Duration
	MaxActualTimespan   time.Duration
	MinDifficultyBlocks bool
}

func (env *environment) pow(ctx *cli.Context) error {
	hs, err := heights(ctx)
	if err != nil {
		return err
	}
	c := &env.params.Consensus
	t := table{header: []string{"height", "n", "k", "spacing", "window", "min timespan", "max timespan", "min difficulty"}}
	var rows []powRow
	for _, h := range hs {
		eq := c.EquihashParamsAt(h)
		r := powRow{
			Height:              h,
			EquihashN:           eq.N,
			EquihashK:           eq.K,
			TargetSpacing:       c.PoWTargetSpacing(h),
			AveragingWindow:     c.AveragingWindowTimespan(h),
			MinActualTimespan:   c.MinActualTimespan(h),
			MaxActualTimespan:   c.MaxActualTimespan(h),
			MinDifficultyBlocks: c.AllowsMinDifficultyBlocks(h),
		}
		rows = append(rows, r)
		t.rows = append(t.rows, []string{
			strconv.FormatUint(uint64(h), 10),
			strconv.FormatUint(uint64(r.EquihashN), 10),
			strconv.FormatUint(uint64(r.EquihashK), 10),
			r.TargetSpacing.String(), r.AveragingWindow.String(),
			r.MinActualTimespan.String(), r.MaxActualTimespan.String(),
			yesNo(r.MinDifficultyBlocks),
		})
	}
	t.value = rows
	return env.out.print(t)
}

type fundingRow struct {
	Stream    string
	Period    int64
	Recipient string
}

type subsidyRow struct {
	Height                  idx.Block
	Halving                 int64
	NextHalvingHeight       idx.Block
	LastFoundersRewardBlock idx.Block
	FundingStreams          []fundingRow `json:",omitempty"`
}

func (env *environment) subsidy(ctx *cli.Context) error {
	hs, err := heights(ctx)
	if err != nil {
		return err
	}
	c := &env.params.Consensus
	t := table{header: []string{"height", "halving", "next halving", "last founders reward", "funding streams"}}
	var rows []subsidyRow
	for _, h := range hs {
		halving := c.Halving(h)
		next := halving + 1
		if next < 1 {
			next = 1
		}
		r := subsidyRow{
			Height:                  h,
			Halving:                 halving,
			NextHalvingHeight:       c.HalvingHeight(h, next),
			LastFoundersRewardBlock: c.LastFoundersRewardBlockHeight(h),
		}
		streams := ""
		for _, i := range c.ActiveFundingStreams(h) {
			fs := c.FundingStreams[i]
			f := fundingRow{i.String(), c.FundingPeriodIndex(fs.StartHeight, h), fs.RecipientAt(c, h)}
			r.FundingStreams = append(r.FundingStreams, f)
			if streams != "" {
				streams += " "
			}
			streams += fmt.Sprintf("%s[%d]=%s", f.Stream, f.Period, f.Recipient)
		}
		rows = append(rows, r)
		t.rows = append(t.rows, []string{
			strconv.FormatUint(uint64(h), 10), strconv.FormatInt(halving, 10),
			strconv.FormatUint(uint64(r.NextHalvingHeight), 10),
			strconv.FormatUint(uint64(r.LastFoundersRewardBlock), 10),
			optional(streams, streams != ""),
		})
	}
	t.value = rows
	return env.out.print(t)
}

type foundersRow struct {
	Height  idx.Block
	Index   int
	Legacy  bool
	Address string
	Script  string
}

func (env *environment) founders(ctx *cli.Context) error {
	hs, err := heights(ctx)
	if err != nil {
		return err
	}
	p := env.params
	t := table{header: []string{"height", "index", "list", "address", "script"}}
	var rows []foundersRow
	for _, h := range hs {
		var r foundersRow
		err := guard(func() error {
			i, legacy := p.FoundersRewardIndexAtHeight(h)
			r = foundersRow{
				Height:  h,
				Index:   i,
				Legacy:  legacy,
				Address: p.FoundersRewardAddressAtHeight(h),
				Script:  p.FoundersRewardScriptAtHeight(h).String(),
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("founders reward at height %d: %w", h, err)
		}
		list := "ycash"
		if r.Legacy {
			list = env.out.highlight(color.FgCyan, "legacy")
		}
		rows = append(rows, r)
		t.rows = append(t.rows, []string{
			strconv.FormatUint(uint64(h), 10), strconv.Itoa(r.Index), list, r.Address, r.Script,
		})
	}
	t.value = rows
	return env.out.print(t)
}

func (env *environment) checkpoints(ctx *cli.Context) error {
	d := env.params.Checkpoints
	t := table{header: []string{"height", "hash"}, value: d}
	for _, cp := range d.Checkpoints {
		t.rows = append(t.rows, []string{strconv.FormatUint(uint64(cp.Height), 10), cp.Hash.Hex()})
	}
	if err := env.out.print(t); err != nil {
		return err
	}
	if !env.out.json && d.TimeLastCheckpoint != 0 {
		fmt.Fprintf(env.out.w, "\nlast checkpoint at %s, %d transactions, ~%.0f transactions/day after\n",
			time.Unix(d.TimeLastCheckpoint, 0).UTC().Format(time.RFC3339), d.TransactionsLastCheckpoint, d.TransactionsPerDay)
	}
	return nil
}

func (env *environment) fingerprint(ctx *cli.Context) error {
	fp := env.params.Fingerprint()
	return env.out.print(table{
		header: []string{"network", "fingerprint"},
		rows:   [][]string{{env.params.Name, fp.Hex()}},
		value:  map[string]string{"network": env.params.Name, "fingerprint": fp.Hex()},
	})
}

func (env *environment) dumpConfig(ctx *cli.Context) error {
	out, err := dumpConfig(env.cfg)
	if err != nil {
		return err
	}
	_, err = env.out.w.Write(out)
	return err
}
