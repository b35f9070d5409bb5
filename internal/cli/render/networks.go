package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out   io.Writer
	color bool
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, color bool) *NetworksRenderer {
	return &NetworksRenderer{
		out:   out,
		color: color,
	}
}

// RenderNetworksList renders the configured networks as a table
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured in foundry.toml [rpc_endpoints]")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	t := newKeyValueTable()
	for _, network := range result.Networks {
		switch {
		case network.Error != nil:
			t.AppendRow(table.Row{"❌ " + network.Name, palette(r.color, color.FgRed).Sprintf("Error: %v", network.Error)})
		case network.ChainID == 0:
			t.AppendRow(table.Row{"•  " + network.Name, palette(r.color, color.Faint).Sprint("Chain ID: unknown")})
		default:
			t.AppendRow(table.Row{"✅ " + network.Name, fmt.Sprintf("Chain ID: %d", network.ChainID)})
		}
	}
	fmt.Fprintln(r.out, t.Render())

	return nil
}
