package chaincfg

import (
	"fmt"
	"strconv"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
)

// FundingStreamIndex identifies a development funding stream.
type FundingStreamIndex int

const (
	FundingStreamBootstrap FundingStreamIndex = iota
	FundingStreamFoundation
	FundingStreamMajorGrants

	MaxFundingStreams
)

// FundingStreamInfo is the static description of a stream: who receives it and
// which share of the block subsidy.
type FundingStreamInfo struct {
	Recipient        string
	Specification    string
	ValueNumerator   uint64
	ValueDenominator uint64
}

// FundingStreamInfos is indexed by FundingStreamIndex.
var FundingStreamInfos = [MaxFundingStreams]FundingStreamInfo{
	{"Electric Coin Company", "https://zips.z.cash/zip-0214", 7, 100},
	{"Zcash Foundation", "https://zips.z.cash/zip-0214", 5, 100},
	{"Major Grants", "https://zips.z.cash/zip-0214", 8, 100},
}

func (i FundingStreamIndex) String() string {
	switch i {
	case FundingStreamBootstrap:
		return "bootstrap"
	case FundingStreamFoundation:
		return "foundation"
	case FundingStreamMajorGrants:
		return "majorgrants"
	}
	return "stream(" + strconv.Itoa(int(i)) + ")"
}

// Value returns the part of blockSubsidy paid to the stream.
func (info FundingStreamInfo) Value(blockSubsidy uint64) uint64 {
	return blockSubsidy * info.ValueNumerator / info.ValueDenominator
}

// FundingStream pays Recipients[i] during funding period i of [StartHeight,
// EndHeight).
type FundingStream struct {
	StartHeight idx.Block
	EndHeight   idx.Block
	Recipients  []string
}

// Copy returns a deep copy.
func (fs FundingStream) Copy() FundingStream {
	cp := fs
	cp.Recipients = append([]string(nil), fs.Recipients...)
	return cp
}

// ActiveAt reports whether the stream pays at height h.
func (fs *FundingStream) ActiveAt(h idx.Block) bool {
	return fs.StartHeight <= h && h < fs.EndHeight
}

// ValidateFundingStream checks the stream against the consensus funding
// period grid.
func ValidateFundingStream(c *Consensus, fs *FundingStream) error {
	if c.FundingPeriodLength == 0 {
		return fmt.Errorf("funding period length is zero")
	}
	if fs.StartHeight >= fs.EndHeight {
		return fmt.Errorf("funding stream start %d is not before end %d", fs.StartHeight, fs.EndHeight)
	}
	want := c.FundingPeriodIndex(fs.StartHeight, fs.EndHeight-1) + 1
	if int64(len(fs.Recipients)) < want {
		return fmt.Errorf("funding stream needs %d recipients, has %d", want, len(fs.Recipients))
	}
	return nil
}

// RecipientAt returns the recipient paid at height h, which must lie inside
// the stream.
func (fs *FundingStream) RecipientAt(c *Consensus, h idx.Block) string {
	if !fs.ActiveAt(h) {
		fatal(ErrPrecondition, "height %d outside funding stream [%d, %d)", h, fs.StartHeight, fs.EndHeight)
	}
	i := c.FundingPeriodIndex(fs.StartHeight, h)
	if i < 0 || i >= int64(len(fs.Recipients)) {
		fatal(ErrScheduleIntegrity, "funding period %d has no recipient", i)
	}
	return fs.Recipients[i]
}

// ActiveFundingStreams returns the indices of streams paying at height h.
func (c *Consensus) ActiveFundingStreams(h idx.Block) []FundingStreamIndex {
	var out []FundingStreamIndex
	for i, fs := range c.FundingStreams {
		if fs != nil && fs.ActiveAt(h) {
			out = append(out, FundingStreamIndex(i))
		}
	}
	return out
}
