package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR_NAME} references inside TOML values
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 && matches[0] == rawValue {
		return matches[1], true
	}
	return "", false
}

// GenerateEnvVarName generates the conventional env var name for a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}

// expandRPCEndpoint expands env var references in a raw rpc_endpoints value
// and fails with the variable name when one of them is unset.
func expandRPCEndpoint(networkName, rawValue string) (string, error) {
	for _, m := range envVarPattern.FindAllStringSubmatch(rawValue, -1) {
		if _, ok := os.LookupEnv(m[1]); ok {
			continue
		}
		if name, whole := DetectEnvVar(rawValue); whole {
			return "", fmt.Errorf("network '%s' RPC URL is read from %s, which is not set (add it to .env)", networkName, name)
		}
		return "", fmt.Errorf("network '%s' RPC URL references unset environment variable %s", networkName, m[1])
	}
	return os.ExpandEnv(rawValue), nil
}
