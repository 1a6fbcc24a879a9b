package config

import (
	"math/big"
	"os"
	"path"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultConfig(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.Equal(t, "/tmp/rolldown/rolldown.sqlite", cfg.Node.DBPath)
	require.Equal(t, 6*time.Second, cfg.Node.BlockTime.Duration)
	require.Equal(t, uint64(10), cfg.Rolldown.DisputePeriodLength)
	require.Equal(t, 100, cfg.Rolldown.MaxRequestsPerUpdate)
	require.Equal(t, uint64(10), cfg.Rolldown.MerkleRootAutomaticBatchSize)
	require.Equal(t, uint64(25), cfg.Rolldown.MerkleRootAutomaticBatchPeriod)
	require.Equal(t, 10, cfg.SequencerStaking.MaxSequencers)
	require.Equal(t, uint8(20), cfg.SequencerStaking.CancellerRewardPercentage)
	require.Equal(t, uint64(1), cfg.SequencerStaking.RotationPeriodBlocks)
	require.Equal(t, 5576, cfg.RPC.Port)
	require.Empty(t, cfg.Genesis.Chains)
}

func TestLoadFileWithGenesis(t *testing.T) {
	custom := `
AdminAddr = "0x00000000000000000000000000000000000000ad"

[Rolldown]
  DisputePeriodLength = 3

[[Genesis.Chains]]
  Chain = 1
  MinimalStake = "1000"
  SlashFine = "100"

[[Genesis.Sequencers]]
  Address = "0x00000000000000000000000000000000000000a1"
  Chain = 1
  Stake = "340282366920938463463374607431768211455"
`
	dir := t.TempDir()
	cfg, err := LoadFile([]FileData{{Name: "custom", Content: custom}}, dir)
	require.NoError(t, err)
	require.Equal(t, common.HexToAddress("0xad"), cfg.Node.Admin)
	require.Equal(t, uint64(3), cfg.Rolldown.DisputePeriodLength)
	require.Len(t, cfg.Genesis.Chains, 1)
	require.Equal(t, big.NewInt(1000), cfg.Genesis.Chains[0].MinimalStake)
	require.Len(t, cfg.Genesis.Sequencers, 1)
	require.Equal(t, common.HexToAddress("0xa1"), cfg.Genesis.Sequencers[0].Address)
	maxAmount, ok := new(big.Int).SetString("340282366920938463463374607431768211455", 10)
	require.True(t, ok)
	require.Equal(t, maxAmount, cfg.Genesis.Sequencers[0].Stake)

	saved, err := os.ReadFile(path.Join(dir, SaveConfigFileName))
	require.NoError(t, err)
	require.Contains(t, string(saved), "DisputePeriodLength = 3")
}

func TestLoadFileEnvVarOverride(t *testing.T) {
	t.Setenv("ROLLDOWN_PathRWData", "/data")
	t.Setenv("ROLLDOWN_RPC_PORT", "6000")
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	require.Equal(t, "/data/rolldown.sqlite", cfg.Node.DBPath)
	require.Equal(t, 6000, cfg.RPC.Port)
}

func TestReadFiles(t *testing.T) {
	dir := t.TempDir()
	jsonFile := path.Join(dir, "custom.json")
	require.NoError(t, os.WriteFile(jsonFile, []byte(`{"Rolldown": {"MaxRequestsPerUpdate": 7}}`), 0600))
	files, err := readFiles([]string{jsonFile})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Contains(t, files[0].Content, "MaxRequestsPerUpdate = 7")

	_, err = readFiles([]string{path.Join(dir, "missing.toml")})
	require.Error(t, err)
}

func TestSaveConfigToString(t *testing.T) {
	cfg, err := LoadFile(nil, "")
	require.NoError(t, err)
	s, err := SaveConfigToString(*cfg)
	require.NoError(t, err)
	require.Contains(t, s, "DisputePeriodLength")
}
