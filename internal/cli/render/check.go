package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// CheckRenderer renders the result of a stand-alone code check
type CheckRenderer struct {
	out   io.Writer
	color bool
}

// NewCheckRenderer creates a new check renderer
func NewCheckRenderer(out io.Writer, color bool) *CheckRenderer {
	return &CheckRenderer{
		out:   out,
		color: color,
	}
}

func (r *CheckRenderer) Render(result *usecase.CheckDeploymentResult) error {
	fmt.Fprintf(r.out, "%s %s has %d bytes of code\n",
		palette(r.color, color.FgGreen).Sprint("✅"),
		palette(r.color, color.FgYellow).Sprint(result.Address.Hex()),
		result.CodeSize,
	)
	return nil
}
