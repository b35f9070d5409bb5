package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// SpinnerProgressReporter shows a spinner while a stage is waiting on the chain
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	return newSpinnerProgressReporter(os.Stdout)
}

func newSpinnerProgressReporter(out io.Writer) *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     out,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == usecase.StageCompleted || event.Stage == usecase.StageFailed {
		r.spinner.Stop()
		return
	}

	if event.Spinner {
		r.spinner.Suffix = " " + event.Message
		if !r.spinner.Active() {
			r.spinner.Start()
		}
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printAround(color.New(color.FgCyan), message)
}

// printAround pauses an active spinner so the line is not overdrawn
func (r *SpinnerProgressReporter) printAround(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// LineProgressReporter prints stage messages as plain lines, for
// non-interactive runs and CI logs
type LineProgressReporter struct {
	out       io.Writer
	lastStage usecase.ExecutionStage
}

// NewLineProgressReporter creates a reporter writing to out
func NewLineProgressReporter(out io.Writer) *LineProgressReporter {
	return &LineProgressReporter{out: out}
}

// OnProgress prints the first message of each stage. Terminal stages are
// left to the command's own output.
func (r *LineProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Stage == r.lastStage || event.Message == "" || event.Stage == usecase.StageCompleted || event.Stage == usecase.StageFailed {
		return
	}
	r.lastStage = event.Stage
	fmt.Fprintln(r.out, event.Message)
}

// Info prints an info message
func (r *LineProgressReporter) Info(message string) {
	fmt.Fprintln(r.out, message)
}

// Ensure the reporters implement ProgressSink
var (
	_ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
	_ usecase.ProgressSink = (*LineProgressReporter)(nil)
)
