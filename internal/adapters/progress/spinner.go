package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/gnft-labs/frontsync/internal/usecase"
)

// indicator is the animated part of the sink
type indicator interface {
	Start()
	Stop()
	Active() bool
	SetSuffix(suffix string)
}

// terminalSpinner adapts briandowns/spinner, which only animates on a terminal
type terminalSpinner struct {
	*spinner.Spinner
}

func (t terminalSpinner) SetSuffix(suffix string) {
	t.Lock()
	t.Suffix = suffix
	t.Unlock()
}

// SpinnerSink shows export and deploy progress with a spinner on out
type SpinnerSink struct {
	out     io.Writer
	spinner indicator
	stage   string
}

// NewSpinnerSink creates a new spinner-based progress sink
func NewSpinnerSink(out io.Writer) *SpinnerSink {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.HideCursor = false

	return &SpinnerSink{
		out:     out,
		spinner: terminalSpinner{s},
	}
}

// OnProgress handles progress events
func (r *SpinnerSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	// Announce each stage once
	if event.Stage != r.stage {
		r.stage = event.Stage
		if event.Spinner {
			r.print(color.New(color.FgWhite, color.Bold), stageTitle(event.Stage))
		}
	}

	if !event.Spinner {
		r.print(color.New(color.FgGreen), "✓ "+event.Message)
		return
	}

	suffix := " " + event.Message
	if event.Total > 0 {
		suffix = fmt.Sprintf(" [%d/%d] %s", event.Current, event.Total, event.Message)
	}
	r.spinner.SetSuffix(suffix)
	if !r.spinner.Active() {
		r.spinner.Start()
	}
}

// Info prints an info message
func (r *SpinnerSink) Info(message string) {
	r.print(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerSink) Error(message string) {
	r.print(color.New(color.FgRed), "✗ "+message)
}

// Stop stops the spinner if it is running
func (r *SpinnerSink) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// print stops the spinner and writes a line. The next spinner event starts it again.
func (r *SpinnerSink) print(c *color.Color, message string) {
	r.Stop()
	c.Fprintln(r.out, message)
}

func stageTitle(stage string) string {
	switch stage {
	case "interface":
		return "Exporting interfaces"
	case "registry":
		return "Recording addresses"
	case "deploy":
		return "Deploying contracts"
	default:
		return stage
	}
}

// Ensure SpinnerSink implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerSink)(nil)
