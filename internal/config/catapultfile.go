package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/trebuchet-org/catapult/internal/domain/config"
)

// CatapultFileName is the project-level configuration file.
const CatapultFileName = "catapult.toml"

// loadCatapultConfig loads catapult.toml with [accounts.*], [namespace.*] and [deploy] sections.
// Returns an empty configuration if the file doesn't exist.
func loadCatapultConfig(projectRoot string) (*config.CatapultFileConfig, error) {
	cfg := &config.CatapultFileConfig{
		Accounts:  make(map[string]config.AccountConfig),
		Namespace: make(map[string]config.NamespaceRoles),
	}

	path := filepath.Join(projectRoot, CatapultFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", CatapultFileName, err)
	}

	if cfg.Accounts == nil {
		cfg.Accounts = make(map[string]config.AccountConfig)
	}
	if cfg.Namespace == nil {
		cfg.Namespace = make(map[string]config.NamespaceRoles)
	}

	// Expand environment variables in all account config string fields
	for name, acct := range cfg.Accounts {
		acct.PrivateKey = os.ExpandEnv(acct.PrivateKey)
		acct.Address = os.ExpandEnv(acct.Address)
		cfg.Accounts[name] = acct
	}

	return cfg, nil
}

// ResolveNamespace resolves a namespace's role mapping by walking up the
// dot-separated hierarchy. Resolving "production.eu" walks
// default → production → production.eu, later levels overriding earlier ones.
// Roles that reference unknown accounts are skipped with a warning to warnWriter
// (os.Stderr when omitted).
func ResolveNamespace(cfg *config.CatapultFileConfig, namespaceName string, warnWriter ...io.Writer) *config.ResolvedNamespace {
	w := resolveWarnWriter(warnWriter)

	roles := make(map[string]string)
	for _, ancestor := range buildNamespaceChain(namespaceName) {
		ns, exists := cfg.Namespace[ancestor]
		if !exists {
			continue
		}
		for role, account := range ns.Roles {
			roles[role] = account
		}
	}

	accounts := make(map[string]config.AccountConfig, len(roles))
	for role, accountName := range roles {
		acct, exists := cfg.Accounts[accountName]
		if !exists {
			fmt.Fprintf(w, "Warning: namespace %q role %q references unknown account %q, skipping\n", namespaceName, role, accountName)
			continue
		}
		accounts[role] = acct
	}

	return &config.ResolvedNamespace{Accounts: accounts}
}

// resolveWarnWriter returns the first writer from the variadic args, or os.Stderr if none provided.
func resolveWarnWriter(writers []io.Writer) io.Writer {
	if len(writers) > 0 && writers[0] != nil {
		return writers[0]
	}
	return os.Stderr
}

// buildNamespaceChain returns the ordered list of namespace names to resolve.
// For "production.eu.v2" it returns: ["default", "production", "production.eu", "production.eu.v2"]
func buildNamespaceChain(namespaceName string) []string {
	if namespaceName == "" || namespaceName == "default" {
		return []string{"default"}
	}

	chain := []string{"default"}
	parts := strings.Split(namespaceName, ".")
	for i := range parts {
		chain = append(chain, strings.Join(parts[:i+1], "."))
	}
	return chain
}
