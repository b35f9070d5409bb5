package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// DeployRenderer renders the outcome of a deployment run
type DeployRenderer struct {
	out   io.Writer
	color bool
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, color bool) *DeployRenderer {
	return &DeployRenderer{
		out:   out,
		color: color,
	}
}

// Render prints the deployment summary, or the state trace of a failed run
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if result == nil {
		return nil
	}

	if !result.Success() {
		palette(r.color, color.Faint).Fprintf(r.out, "Run %s: %s\n", result.RunID, formatTrace(result.States))
		return nil
	}

	d := result.Deployment
	label := palette(r.color, color.FgWhite)
	fmt.Fprintln(r.out)
	palette(r.color, color.FgGreen, color.Bold).Fprintf(r.out, "✅ %s deployed and verified\n", result.Template)
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Address:    "), palette(r.color, color.FgYellow).Sprint(d.ContractAddress.Hex()))
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Transaction:"), d.TxHash.Hex())
	fmt.Fprintf(r.out, "  %s %d\n", label.Sprint("Block:      "), d.BlockNumber)
	fmt.Fprintf(r.out, "  %s %d\n", label.Sprint("Gas used:   "), d.GasUsed)
	fmt.Fprintf(r.out, "  %s %d bytes\n", label.Sprint("Code size:  "), result.CodeSize)

	if result.Network != nil {
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Network:    "), result.Network.Name)
		if link := explorerAddressURL(result.Network.ExplorerURL, d.ContractAddress.Hex()); link != "" {
			fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Explorer:   "), palette(r.color, color.FgCyan).Sprint(link))
		}
	}
	if result.AddressFile != "" {
		fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Saved to:   "), result.AddressFile)
	}
	fmt.Fprintf(r.out, "  %s %s\n", label.Sprint("Run:        "), palette(r.color, color.Faint).Sprint(result.RunID))

	return nil
}
