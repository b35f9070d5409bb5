package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/catapult/internal/app"
	"github.com/trebuchet-org/catapult/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// cleanup collects release functions registered while a command runs.
// cobra skips PostRun hooks when RunE fails, so they run after Execute returns.
type cleanup struct {
	funcs []func()
}

func (c *cleanup) add(f func()) {
	c.funcs = append(c.funcs, f)
}

// run calls the registered functions in reverse order
func (c *cleanup) run() {
	for i := len(c.funcs) - 1; i >= 0; i-- {
		c.funcs[i]()
	}
	c.funcs = nil
}

// Execute runs the root command and releases the app whether or not the
// command succeeded
func Execute() error {
	var c cleanup
	defer c.run()
	return newRootCmd(&c).Execute()
}

// newRootCmd creates the root command
func newRootCmd(c *cleanup) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catapult",
		Short: "Verified single-contract deployment for EVM chains",
		Long: `Catapult deploys one compiled contract from a Foundry or Hardhat project,
checks the deployer can pay for it, and verifies code exists at the new address.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			// Set up viper
			v := config.SetupViper(projectRoot)

			// Bind flags that have been set
			bindGlobalFlags(v, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			c.add(appInstance.Close)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			var cancel context.CancelFunc
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			} else {
				ctx, cancel = context.WithCancel(ctx)
			}
			c.add(cancel)

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("namespace", "s", "", "Account namespace (defaults to 'default')")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., mainnet, sepolia)")
	rootCmd.PersistentFlags().String("rpc-url", "", "RPC endpoint, overrides --network")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Overall command timeout (default 5m)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	// Main commands
	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "main"
	rootCmd.AddCommand(checkCmd)

	// Management commands
	statusCmd := NewStatusCmd()
	statusCmd.GroupID = "management"
	rootCmd.AddCommand(statusCmd)

	networksCmd := NewNetworksCmd()
	networksCmd.GroupID = "management"
	rootCmd.AddCommand(networksCmd)

	// Version command
	versionCmd := NewVersionCmd()
	rootCmd.AddCommand(versionCmd)

	return rootCmd
}

// flagKeys maps flag names to the viper keys they override
var flagKeys = map[string]string{
	"debug":           "debug",
	"non-interactive": "non_interactive",
	"namespace":       "namespace",
	"network":         "network",
	"rpc-url":         "rpc_url",
	"timeout":         "timeout",
	"gas-limit":       "gas_limit",
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Visit only walks flags that have been changed
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// useColor reports whether the command writes to a color-capable terminal
func useColor(cmd *cobra.Command) bool {
	return !color.NoColor && cmd.OutOrStdout() == os.Stdout
}
