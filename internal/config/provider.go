package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// projectMarkers identify a project root, in lookup order
var projectMarkers = []string{
	CatapultFileName,
	"foundry.toml",
	"hardhat.config.ts",
	"hardhat.config.js",
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	// .env must be loaded before any env-backed viper key is read
	loadEnvFiles(projectRoot)

	foundryConfig, err := loadFoundryConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load foundry config: %w", err)
	}

	catapultConfig, err := loadCatapultConfig(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to load catapult config: %w", err)
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		DataDir:        filepath.Join(projectRoot, ".catapult"),
		Namespace:      v.GetString("namespace"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
		GasLimit:       v.GetUint64("gas_limit"),
		FoundryConfig:  foundryConfig,
		CatapultConfig: catapultConfig,
	}

	if cfg.GasLimit == 0 {
		cfg.GasLimit = catapultConfig.Deploy.GasLimit
	}

	cfg.ArtifactDirs = v.GetStringSlice("artifacts")
	if len(cfg.ArtifactDirs) == 0 {
		cfg.ArtifactDirs = catapultConfig.Deploy.Artifacts
	}
	if len(cfg.ArtifactDirs) == 0 {
		cfg.ArtifactDirs = []string{foundryOutDir(foundryConfig, cfg.Namespace), "artifacts"}
	}

	network, err := resolveNetwork(v, projectRoot, foundryConfig, catapultConfig)
	if err != nil {
		return nil, err
	}
	cfg.Network = network

	cfg.Deployer = resolveDeployer(v, catapultConfig, cfg.Namespace)

	return cfg, nil
}

// resolveNetwork picks the network from --rpc-url, then --network. Returns
// nil when neither is set; commands that need a chain fail later.
func resolveNetwork(v *viper.Viper, projectRoot string, foundryConfig *config.FoundryConfig, catapultConfig *config.CatapultFileConfig) (*config.Network, error) {
	chainID := v.GetUint64("chain_id")
	if chainID == 0 {
		chainID = catapultConfig.Deploy.ChainID
	}

	var network *config.Network
	if rpcURL := v.GetString("rpc_url"); rpcURL != "" {
		name := v.GetString("network")
		if name == "" {
			name = "custom"
		}
		network = &config.Network{Name: name, RPCURL: rpcURL}
	} else if networkName := v.GetString("network"); networkName != "" {
		resolved, err := NewNetworkResolver(projectRoot, foundryConfig).Resolve(networkName)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve network %s: %w", networkName, err)
		}
		network = resolved
	} else {
		return nil, nil
	}

	if chainID != 0 {
		network.ChainID = chainID
	}
	return network, nil
}

// resolveDeployer returns the account that signs deployments. An explicit
// private key from the environment or flags wins over catapult.toml.
func resolveDeployer(v *viper.Viper, catapultConfig *config.CatapultFileConfig, namespace string) *config.AccountConfig {
	if pk := v.GetString("private_key"); pk != "" {
		return &config.AccountConfig{
			Type:       config.AccountTypePrivateKey,
			PrivateKey: pk,
			Address:    v.GetString("address"),
		}
	}

	resolved := ResolveNamespace(catapultConfig, namespace)
	if acct, ok := resolved.Accounts[config.DeployerRole]; ok {
		return &acct
	}
	return nil
}

// FindProjectRoot walks up from the current directory looking for a project
// marker. Without one, the current directory is used.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := cwd
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return cwd, nil
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".catapult"))

	// Set up environment variables
	v.SetEnvPrefix("CATAPULT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("namespace", "default")
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.ProjectRoot, cfg.FoundryConfig)
}
