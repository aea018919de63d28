package render

import (
	"fmt"
	"io"

	"github.com/gnft-labs/frontsync/internal/usecase"
)

// ExportRenderer renders the steps of an export run
type ExportRenderer struct {
	out   io.Writer
	color bool
}

// NewExportRenderer creates a new export renderer
func NewExportRenderer(out io.Writer, color bool) *ExportRenderer {
	return &ExportRenderer{
		out:   out,
		color: color,
	}
}

// RenderExport prints one line per completed step. A partial result is rendered the
// same way; the caller reports the error.
func (r *ExportRenderer) RenderExport(result *usecase.ExportResult) error {
	if result == nil {
		return nil
	}

	fmt.Fprintf(r.out, "%s %s\n", paint(r.color, headerStyle, "Network"), paint(r.color, networkStyle, " "+result.NetworkID.Key()+" "))

	for _, step := range result.Steps {
		fmt.Fprintln(r.out, r.stepLine(step))
	}

	interfaces, added := 0, 0
	for _, step := range result.Steps {
		switch {
		case step.Kind == usecase.StepInterface:
			interfaces++
		case step.Added:
			added++
		}
	}
	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "Exported %d interfaces, recorded %d new addresses\n", interfaces, added)
	return nil
}

func (r *ExportRenderer) stepLine(step usecase.ExportStep) string {
	kind := fmt.Sprintf("%-9s", titleCaser.String(string(step.Kind)))
	name := paint(r.color, identityStyle, string(step.Identity))
	path := paint(r.color, pathStyle, step.Path)

	if step.Kind == usecase.StepInterface {
		return fmt.Sprintf("  %s %s %s → %s", paint(r.color, successStyle, "✓"), kind, name, path)
	}

	address := paint(r.color, addressStyle, step.Address)
	if !step.Added {
		return fmt.Sprintf("  %s %s %s %s already recorded in %s", paint(r.color, warningStyle, "="), kind, name, address, path)
	}
	return fmt.Sprintf("  %s %s %s %s → %s", paint(r.color, successStyle, "✓"), kind, name, address, path)
}
