package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/catapult/internal/domain"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// palette returns a color that only emits escape codes when enabled
func palette(enabled bool, attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	if !enabled {
		c.DisableColor()
	}
	return c
}

// stateTitle turns "balance_checked" into "Balance Checked"
func stateTitle(s domain.RunState) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(s), "_", " "))
}

// formatTrace renders the states a run went through
func formatTrace(states []domain.RunState) string {
	titles := make([]string, len(states))
	for i, s := range states {
		titles[i] = stateTitle(s)
	}
	return strings.Join(titles, " → ")
}

// explorerAddressURL links an address on the network's block explorer
func explorerAddressURL(explorer string, address string) string {
	if explorer == "" {
		return ""
	}
	return strings.TrimRight(explorer, "/") + "/address/" + address
}

// newKeyValueTable creates the borderless two-column table used by status
func newKeyValueTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
	})
	return t
}
