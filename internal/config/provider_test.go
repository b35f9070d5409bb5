package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestProvider(t *testing.T) {
	t.Run("defaults without any config files", func(t *testing.T) {
		dir := t.TempDir()
		v := SetupViper(dir)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, dir, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(dir, ".catapult"), cfg.DataDir)
		assert.Equal(t, "default", cfg.Namespace)
		assert.Equal(t, 5*time.Minute, cfg.Timeout)
		assert.Nil(t, cfg.Network)
		assert.Nil(t, cfg.Deployer)
		assert.Equal(t, uint64(0), cfg.GasLimit)
		assert.Equal(t, []string{"out", "artifacts"}, cfg.ArtifactDirs)
	})

	t.Run("resolves network and deployer from project files", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "foundry.toml", `
[profile.default]
out = "build"

[rpc_endpoints]
sepolia = "${CATAPULT_TEST_SEPOLIA_URL}"
`)
		writeFile(t, dir, "catapult.toml", `
[accounts.anvil0]
type = "private_key"
private_key = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

[namespace.default]
deployer = "anvil0"

[deploy]
gas_limit = 3000000
chain_id = 11155111
`)
		writeFile(t, dir, ".env", "CATAPULT_TEST_SEPOLIA_URL=https://sepolia.example.org\n")
		t.Cleanup(func() { os.Unsetenv("CATAPULT_TEST_SEPOLIA_URL") })

		v := SetupViper(dir)
		v.Set("network", "sepolia")

		cfg, err := Provider(v)
		require.NoError(t, err)

		require.NotNil(t, cfg.Network)
		assert.Equal(t, "sepolia", cfg.Network.Name)
		assert.Equal(t, "https://sepolia.example.org", cfg.Network.RPCURL)
		assert.Equal(t, uint64(11155111), cfg.Network.ChainID)

		require.NotNil(t, cfg.Deployer)
		assert.Equal(t, config.AccountTypePrivateKey, cfg.Deployer.Type)
		assert.Equal(t, "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80", cfg.Deployer.PrivateKey)

		assert.Equal(t, uint64(3000000), cfg.GasLimit)
		assert.Equal(t, []string{"build", "artifacts"}, cfg.ArtifactDirs)
	})

	t.Run("rpc url and private key overrides", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "catapult.toml", `
[accounts.fromfile]
type = "private_key"
private_key = "0x01"

[namespace.default]
deployer = "fromfile"
`)

		v := SetupViper(dir)
		v.Set("rpc_url", "http://127.0.0.1:9545")
		v.Set("private_key", "0x02")
		v.Set("chain_id", 31337)
		v.Set("gas_limit", 500000)

		cfg, err := Provider(v)
		require.NoError(t, err)

		require.NotNil(t, cfg.Network)
		assert.Equal(t, "custom", cfg.Network.Name)
		assert.Equal(t, "http://127.0.0.1:9545", cfg.Network.RPCURL)
		assert.Equal(t, uint64(31337), cfg.Network.ChainID)
		assert.Equal(t, "0x02", cfg.Deployer.PrivateKey)
		assert.Equal(t, uint64(500000), cfg.GasLimit)
	})

	t.Run("unknown network fails", func(t *testing.T) {
		dir := t.TempDir()
		v := SetupViper(dir)
		v.Set("network", "nowhere")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "network 'nowhere' not found")
	})

	t.Run("invalid catapult.toml fails", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, dir, "catapult.toml", "invalid [[ toml")

		_, err := Provider(SetupViper(dir))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse catapult.toml")
	})
}

func TestFindProjectRoot(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "contracts", "src")
	require.NoError(t, os.MkdirAll(nested, 0755))
	writeFile(t, dir, "hardhat.config.ts", "export default {}")

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	root, err := FindProjectRoot()
	require.NoError(t, err)

	expected, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	actual, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, expected, actual)
}
