package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/catapult/internal/domain"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// StatusRenderer renders the connectivity report
type StatusRenderer struct {
	out   io.Writer
	color bool
}

// NewStatusRenderer creates a new status renderer
func NewStatusRenderer(out io.Writer, color bool) *StatusRenderer {
	return &StatusRenderer{
		out:   out,
		color: color,
	}
}

func (r *StatusRenderer) Render(result *usecase.ShowStatusResult) error {
	t := newKeyValueTable()

	network := "custom"
	if result.Network != nil {
		network = result.Network.Name
	}
	t.AppendRow(table.Row{"Network", network})
	t.AppendRow(table.Row{"Chain ID", result.ChainID})
	t.AppendRow(table.Row{"Block", result.BlockNumber})

	if result.AccountErr != nil {
		t.AppendRow(table.Row{"Deployer", palette(r.color, color.FgRed).Sprint(result.AccountErr.Error())})
	} else {
		t.AppendRow(table.Row{"Deployer", result.Account.Address.Hex()})
		t.AppendRow(table.Row{"Balance", domain.FormatEther(result.Account.Balance) + " ETH"})
	}

	ready := palette(r.color, color.FgGreen).Sprint("yes")
	if !result.Ready() {
		ready = palette(r.color, color.FgRed).Sprint("no")
	}
	t.AppendRow(table.Row{"Ready", ready})

	palette(r.color, color.FgCyan, color.Bold).Fprintln(r.out, "🔗 Connection Status")
	fmt.Fprintln(r.out, t.Render())
	return nil
}
