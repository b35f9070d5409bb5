package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/catapult/internal/cli/render"
)

// NewStatusCmd creates the status command
func NewStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show chain connectivity and deployer readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ShowStatus.Run(cmd.Context())
			if err != nil {
				return err
			}

			return render.NewStatusRenderer(cmd.OutOrStdout(), useColor(cmd)).Render(result)
		},
	}
}
