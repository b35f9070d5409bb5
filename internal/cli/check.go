package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <address>",
		Short: "Verify that an address holds contract code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckDeployment.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return render.NewCheckRenderer(cmd.OutOrStdout(), useColor(cmd)).Render(result)
		},
	}
}
