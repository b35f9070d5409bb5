package config

import "fmt"

// AccountType names how an account signs transactions.
type AccountType string

// AccountTypePrivateKey signs with a key held in config or the environment.
// It is the only type catapult can sign with.
const AccountTypePrivateKey AccountType = "private_key"

// DeployerRole is the namespace role whose account signs deployments.
const DeployerRole = "deployer"

// AccountConfig represents a named signing entity in [accounts.*] sections.
type AccountConfig struct {
	Type       AccountType `toml:"type"`
	Address    string      `toml:"address,omitempty"`
	PrivateKey string      `toml:"private_key,omitempty"` //nolint:gosec // holds env var reference, not a literal secret
}

// NamespaceRoles represents a [namespace.*] section in catapult.toml.
// Roles maps role names (e.g. "deployer") to account names.
type NamespaceRoles struct {
	Roles map[string]string `toml:"-"`
}

// UnmarshalTOML decodes every key of the section as a role name.
func (n *NamespaceRoles) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("namespace section must be a table, got %T", data)
	}
	n.Roles = make(map[string]string, len(table))
	for role, value := range table {
		account, ok := value.(string)
		if !ok {
			return fmt.Errorf("role %q must map to an account name (quote dotted namespace names)", role)
		}
		n.Roles[role] = account
	}
	return nil
}

// DeployDefaults represents the optional [deploy] section in catapult.toml.
type DeployDefaults struct {
	GasLimit  uint64   `toml:"gas_limit,omitempty"`
	Artifacts []string `toml:"artifacts,omitempty"`
	ChainID   uint64   `toml:"chain_id,omitempty"`
}

// CatapultFileConfig represents catapult.toml.
type CatapultFileConfig struct {
	Accounts  map[string]AccountConfig  `toml:"accounts"`
	Namespace map[string]NamespaceRoles `toml:"namespace"`
	Deploy    DeployDefaults            `toml:"deploy"`
}

// ResolvedNamespace holds the role -> account mapping after walking the
// dot-based namespace hierarchy.
type ResolvedNamespace struct {
	Accounts map[string]AccountConfig // role name -> resolved AccountConfig
}
