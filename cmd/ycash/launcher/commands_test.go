package launcher

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rony4d/go-ycash-params/chaincfg"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	err := newApp(&buf).Run(append([]string{"ycash-params"}, args...))
	return buf.String(), err
}

func runJSON(t *testing.T, v interface{}, args ...string) {
	t.Helper()
	out, err := run(t, append([]string{"--json"}, args...)...)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

func TestScheduleCommand(t *testing.T) {
	out, err := run(t, "--network", "main", "schedule", "--height", "570000")
	require.NoError(t, err)
	assert.Contains(t, out, "ycash")
	assert.Contains(t, out, "0x0000014fbc5917ba8bcacf3336faf588d86b32443aa3a490a587af5750c77ec5")

	var rows []scheduleRow
	runJSON(t, &rows, "--network", "main", "schedule", "--height", "570000")
	require.Len(t, rows, int(chaincfg.MaxNetworkUpgrades))
	assert.Equal(t, "active", rows[chaincfg.UpgradeYcash].State)
	assert.Equal(t, "pending", rows[chaincfg.UpgradeBlossom].State)
	assert.Equal(t, "disabled", rows[chaincfg.UpgradeNU5].State)
	assert.Equal(t, chaincfg.ActivateAt(570000), rows[chaincfg.UpgradeYcash].Activation)
}

func TestEpochCommand(t *testing.T) {
	var rows []epochRow
	runJSON(t, &rows, "--network", "main", "epoch", "--height", "1100002", "--count", "5")
	require.Len(t, rows, 5)
	assert.Equal(t, "blossom", rows[0].Epoch)
	assert.Equal(t, "heartwood", rows[1].Epoch)
	assert.True(t, rows[1].ActivationHeight)
	assert.Equal(t, "heartwood", rows[0].NextUpgrade)
	assert.Equal(t, "canopy", rows[1].NextUpgrade)
	require.NotNil(t, rows[1].NextActivationAt)
	assert.EqualValues(t, 1100006, *rows[1].NextActivationAt)
	assert.Equal(t, "canopy", rows[4].Epoch)
	assert.Nil(t, rows[4].NextActivationAt)

	_, err := run(t, "epoch", "--count", "0")
	assert.Error(t, err)
}

func TestPowCommand(t *testing.T) {
	var rows []powRow
	runJSON(t, &rows, "--network", "main", "pow", "--height", "569999", "--count", "2")
	require.Len(t, rows, 2)
	assert.Equal(t, uint32(200), rows[0].EquihashN)
	assert.Equal(t, uint32(192), rows[1].EquihashN)
	assert.Equal(t, uint32(7), rows[1].EquihashK)

	runJSON(t, &rows, "--network", "regtest", "--preset", "canopy", "pow")
	assert.Equal(t, uint32(48), rows[0].EquihashN)
	assert.False(t, rows[0].MinDifficultyBlocks)
}

func TestSubsidyCommand(t *testing.T) {
	var rows []subsidyRow
	runJSON(t, &rows, "--network", "main", "subsidy", "--height", "849999", "--count", "2")
	require.Len(t, rows, 2)
	assert.EqualValues(t, 0, rows[0].Halving)
	assert.EqualValues(t, 850000, rows[0].NextHalvingHeight)
	assert.EqualValues(t, 849999, rows[0].LastFoundersRewardBlock)
	assert.EqualValues(t, 1, rows[1].Halving)

	runJSON(t, &rows, "--network", "regtest",
		"--fundingstream", "majorgrants:10:16:"+strings.Join([]string{"r0", "r1"}, ","),
		"subsidy", "--height", "12")
	require.Len(t, rows[0].FundingStreams, 1)
	assert.Equal(t, fundingRow{"majorgrants", 1, "r1"}, rows[0].FundingStreams[0])
}

func TestSubsidyCommand_lateBlossom(t *testing.T) {
	var rows []subsidyRow
	runJSON(t, &rows, "--network", "regtest", "--nuparams", "blossom:400", "subsidy", "--height", "400")
	require.Len(t, rows, 1)
	assert.EqualValues(t, 2, rows[0].Halving)
	assert.EqualValues(t, 500, rows[0].NextHalvingHeight)
	assert.EqualValues(t, 0, rows[0].LastFoundersRewardBlock)
}

func TestFoundersCommand(t *testing.T) {
	out, err := run(t, "--network", "main", "founders", "--height", "570000")
	require.NoError(t, err)
	assert.Contains(t, out, "s1hfWJ4ej1H3s8XCUb7YnrU68K64AsGVUHE")

	var rows []foundersRow
	runJSON(t, &rows, "--network", "main", "founders", "--height", "1")
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Legacy)
	assert.True(t, strings.HasPrefix(rows[0].Address, "s3"))
	assert.True(t, strings.HasPrefix(rows[0].Script, "a914"))

	_, err = run(t, "--network", "regtest", "founders", "--height", "150")
	assert.ErrorIs(t, err, chaincfg.ErrPrecondition)
}

func TestCheckpointsCommand(t *testing.T) {
	var d chaincfg.CheckpointData
	runJSON(t, &d, "--network", "test", "checkpoints")
	want := chaincfg.TestNetParams().Checkpoints
	assert.Equal(t, want.Checkpoints, d.Checkpoints)

	out, err := run(t, "--network", "main", "checkpoints")
	require.NoError(t, err)
	assert.Contains(t, out, chaincfg.MainNetParams().Genesis.Hash.Hex())
}

func TestFingerprintCommand(t *testing.T) {
	var got map[string]string
	runJSON(t, &got, "--network", "main", "fingerprint")
	assert.Equal(t, chaincfg.MainNetParams().Fingerprint().Hex(), got["fingerprint"])

	runJSON(t, &got, "--network", "regtest", "--nuparams", "overwinter:1", "fingerprint")
	assert.NotEqual(t, chaincfg.RegTestParams().Fingerprint().Hex(), got["fingerprint"])
}

func TestDumpConfigCommand(t *testing.T) {
	out, err := run(t, "--network", "regtest", "--preset", "canopy", "dumpconfig")
	require.NoError(t, err)
	assert.Contains(t, out, "[network]")
	assert.Contains(t, out, "canopy")
}

func TestLaunch_unknownNetwork(t *testing.T) {
	_, err := run(t, "--network", "ropsten", "fingerprint")
	assert.ErrorIs(t, err, chaincfg.ErrUnknownNetwork)
}
