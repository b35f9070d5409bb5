package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		addressFile string
		yes         bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <contract>",
		Short: "Deploy a compiled contract and verify its code",
		Long: `Deploy a contract from the project's build output (Foundry out/ or Hardhat
artifacts/) using the namespace's deployer account.

The run resolves the deployer, refuses to submit from an account with a zero
balance, waits for the creation receipt and then checks that code exists at
the new address. Every run submits a new transaction.

Examples:
  catapult deploy Counter --network sepolia
  catapult deploy src/v2/Token.sol:Token --rpc-url http://127.0.0.1:8545
  catapult deploy Counter -n mainnet --address-file deployments/counter.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.DeployContractParams{
				Template:    args[0],
				AddressFile: addressFile,
				SkipConfirm: yes,
			}
			result, runErr := app.DeployContract.Run(cmd.Context(), params)

			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), useColor(cmd))
			if err := renderer.Render(result); err != nil {
				return err
			}
			return runErr
		},
	}

	cmd.Flags().Uint64("gas-limit", 0, "Gas limit for the creation transaction (default: estimate)")
	cmd.Flags().StringVar(&addressFile, "address-file", "", "Write the verified contract address to this file")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt on non-local networks")

	return cmd
}
