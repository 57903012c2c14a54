package chaincfg

import (
	"sort"

	"github.com/Fantom-foundation/lachesis-base/inter/idx"
	"github.com/ethereum/go-ethereum/common"
)

// Checkpoint pins the hash of the block at Height.
type Checkpoint struct {
	Height idx.Block
	Hash   common.Hash
}

// CheckpointData is the checkpoint list with statistics used to estimate
// verification progress.
type CheckpointData struct {
	// Checkpoints are sorted by height.
	Checkpoints []Checkpoint
	// TimeLastCheckpoint is the UNIX time of the last checkpoint block.
	TimeLastCheckpoint int64
	// TransactionsLastCheckpoint counts transactions up to the last checkpoint.
	TransactionsLastCheckpoint int64
	// TransactionsPerDay estimates the transaction rate after the last
	// checkpoint.
	TransactionsPerDay float64
}

// Checkpoint returns the pinned hash at height h, if any.
func (d *CheckpointData) Checkpoint(h idx.Block) (common.Hash, bool) {
	i := sort.Search(len(d.Checkpoints), func(i int) bool { return d.Checkpoints[i].Height >= h })
	if i < len(d.Checkpoints) && d.Checkpoints[i].Height == h {
		return d.Checkpoints[i].Hash, true
	}
	return common.Hash{}, false
}

// LastCheckpoint returns the highest checkpoint.
func (d *CheckpointData) LastCheckpoint() (Checkpoint, bool) {
	if len(d.Checkpoints) == 0 {
		return Checkpoint{}, false
	}
	return d.Checkpoints[len(d.Checkpoints)-1], true
}

func (d CheckpointData) Copy() CheckpointData {
	cp := d
	cp.Checkpoints = append([]Checkpoint(nil), d.Checkpoints...)
	return cp
}

func (d *CheckpointData) sorted() bool {
	return sort.SliceIsSorted(d.Checkpoints, func(i, j int) bool {
		return d.Checkpoints[i].Height < d.Checkpoints[j].Height
	})
}

// SproutValuePoolCheckpoint is the hardcoded Sprout pool balance for nodes that
// have not reindexed since pool monitoring was introduced.
type SproutValuePoolCheckpoint struct {
	Height    idx.Block
	Balance   int64
	BlockHash common.Hash
}

// GenesisInfo records the header fields and expected hashes of the genesis
// block. Block construction itself lives outside this package.
type GenesisInfo struct {
	Time       uint32
	Nonce      common.Hash
	Bits       uint32
	Version    int32
	Reward     uint64
	Hash       common.Hash
	MerkleRoot common.Hash
}

// genesisMerkleRoot is shared by every network.
var genesisMerkleRoot = common.HexToHash("c4eaa58879081de3c24a7b117ed2b28300e7ec4c4c1dff1d3f1268b7857a4ddb")

// DNSSeed is a DNS seeder host.
type DNSSeed struct {
	Name string
	Host string
}

func checkpoint(h idx.Block, hash string) Checkpoint {
	return Checkpoint{Height: h, Hash: common.HexToHash(hash)}
}
