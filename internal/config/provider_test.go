package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[artifacts]
source = "artifacts"
frontend = "../web/src/constants"

[networks.goerli]
chain_id = 5
rpc_url = "${FRONTSYNC_TEST_GOERLI_RPC}"
private_key = "${FRONTSYNC_TEST_GOERLI_KEY}"

[networks.optimism]
chain_id = 420
rpc_url = "https://optimism.example.org"

[[contracts]]
name = "Token"

[[contracts]]
name = "BasicGNFT"

[[contracts]]
name = "Games"
interface = "Game/GameABI.json"
registry = "Game/GameAddress.json"

[[deploy]]
contract = "BasicGNFT"

[[deploy]]
contract = "Token"
args = ["@BasicGNFT"]

[[deploy]]
call = "BasicGNFT.setTokenContractAddress"
args = ["@Token"]

[[deploy]]
contract = "Games"
`

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoadProjectConfig(t *testing.T) {
	dir := writeProject(t, sampleConfig)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("FRONTSYNC_TEST_GOERLI_RPC=https://goerli.example.org\nFRONTSYNC_TEST_GOERLI_KEY=0xabc\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("FRONTSYNC_TEST_GOERLI_RPC")
		os.Unsetenv("FRONTSYNC_TEST_GOERLI_KEY")
	})

	pc, err := LoadProjectConfig(dir)
	require.NoError(t, err)

	t.Run("artifact directories are absolute", func(t *testing.T) {
		assert.Equal(t, filepath.Join(dir, "artifacts"), pc.Artifacts.Source)
		assert.Equal(t, filepath.Join(filepath.Dir(dir), "web", "src", "constants"), pc.Artifacts.Frontend)
	})

	t.Run("networks are expanded from .env", func(t *testing.T) {
		goerli := pc.Networks["goerli"]
		require.NotNil(t, goerli)
		assert.Equal(t, uint64(5), goerli.ChainID)
		assert.Equal(t, "https://goerli.example.org", goerli.RPCURL)
		assert.Equal(t, "0xabc", goerli.PrivateKey)
	})

	t.Run("builtin local networks are present", func(t *testing.T) {
		assert.Equal(t, []string{"goerli", "hardhat", "localhost", "optimism"}, pc.NetworkNames())
		assert.Equal(t, uint64(31337), pc.Networks["localhost"].ChainID)
	})

	t.Run("exports keep file order and default paths", func(t *testing.T) {
		assert.Equal(t, []domain.ContractIdentity{"Token", "BasicGNFT", "Games"}, pc.Exports.Identities())

		token, err := pc.Exports.Lookup("Token")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join("Token", "TokenAddress.json"), token.Registry)

		games, err := pc.Exports.Lookup("Games")
		require.NoError(t, err)
		assert.Equal(t, "Game/GameABI.json", games.Interface)
		assert.Equal(t, "Game/GameAddress.json", games.Registry)
	})

	t.Run("deploy plan keeps contract references", func(t *testing.T) {
		require.Len(t, pc.Deploy, 4)
		assert.Equal(t, domain.ContractIdentity("BasicGNFT"), pc.Deploy[0].Contract)
		assert.Equal(t, []string{"@BasicGNFT"}, pc.Deploy[1].Args)
		assert.True(t, pc.Deploy[2].IsCall())
	})
}

func TestLoadProjectConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "invalid toml", content: "[artifacts", wantErr: "failed to parse"},
		{name: "duplicate contract", content: "[[contracts]]\nname = \"Token\"\n[[contracts]]\nname = \"Token\"\n", wantErr: "more than once"},
		{name: "bad deploy step", content: "[[deploy]]\ncall = \"Token\"\n", wantErr: "step 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProject(t, tt.content)
			_, err := LoadProjectConfig(dir)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrConfiguration))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProvider(t *testing.T) {
	dir := writeProject(t, sampleConfig)

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("network", "", "")
	cmd.Flags().Bool("non-interactive", false, "")
	cmd.Flags().Bool("offline", false, "")
	require.NoError(t, cmd.Flags().Parse([]string{"--network", "optimism", "--non-interactive"}))

	v := SetupViper(dir, cmd)
	cfg, err := Provider(v)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ProjectRoot)
	assert.Equal(t, "optimism", cfg.NetworkName)
	require.NotNil(t, cfg.Network)
	assert.Equal(t, uint64(420), cfg.Network.ChainID)
	assert.True(t, cfg.NonInteractive)
	assert.False(t, cfg.Offline)
	assert.Equal(t, 5*time.Minute, cfg.Timeout)

	exports, err := ProvideExportConfig(cfg)
	require.NoError(t, err)
	assert.Len(t, exports.Identities(), 3)
}

func TestProviderUnknownNetwork(t *testing.T) {
	dir := writeProject(t, sampleConfig)
	t.Setenv("FRONTSYNC_NETWORK", "mainnet")

	cfg, err := Provider(SetupViper(dir, nil))
	require.NoError(t, err)
	assert.Equal(t, "mainnet", cfg.NetworkName)
	assert.Nil(t, cfg.Network)
}

func TestProviderDefaultsToLocalhost(t *testing.T) {
	dir := writeProject(t, "")

	cfg, err := Provider(SetupViper(dir, nil))
	require.NoError(t, err)
	require.NotNil(t, cfg.Network)
	assert.Equal(t, "localhost", cfg.Network.Name)
	assert.Equal(t, filepath.Join(dir, "out"), cfg.Artifacts.Source)
	assert.Equal(t, dir, cfg.Artifacts.Frontend)
	assert.Empty(t, cfg.Exports.Identities())
}

func TestProvideExportConfigWithoutContracts(t *testing.T) {
	exports, err := ProvideExportConfig(&config.RuntimeConfig{})
	require.NoError(t, err)
	assert.Empty(t, exports.Identities())
}
