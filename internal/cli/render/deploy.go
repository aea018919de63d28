package render

import (
	"fmt"
	"io"

	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
)

// DeployRenderer renders the result of a deploy run
type DeployRenderer struct {
	out    io.Writer
	color  bool
	export *ExportRenderer
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, color bool) *DeployRenderer {
	return &DeployRenderer{
		out:    out,
		color:  color,
		export: NewExportRenderer(out, color),
	}
}

// RenderDeploy prints the deployed contracts, the transactions sent and the export steps
func (r *DeployRenderer) RenderDeploy(result *usecase.DeployContractsResult) error {
	if result == nil {
		return nil
	}

	fmt.Fprintf(r.out, "%s %s (chain %s)\n\n",
		paint(r.color, headerStyle, "Deployed on"), result.Network, result.NetworkID.Key())

	if len(result.Deployed) > 0 {
		t := newPlainTable(r.out)
		t.AppendHeader(table.Row{"CONTRACT", "ADDRESS", "TX"})
		for _, d := range result.Deployed {
			t.AppendRow(table.Row{
				paint(r.color, identityStyle, string(d.Identity)),
				paint(r.color, addressStyle, d.Address),
				paint(r.color, pathStyle, d.TxHash),
			})
		}
		t.Render()
		fmt.Fprintln(r.out)
	}

	for _, tx := range result.Transactions {
		fmt.Fprintf(r.out, "  %s %s %s\n", paint(r.color, successStyle, "✓"), tx.Step, paint(r.color, pathStyle, tx.TxHash))
	}
	if len(result.Transactions) > 0 {
		fmt.Fprintln(r.out)
	}

	if result.Export != nil {
		return r.export.RenderExport(result.Export)
	}
	return nil
}

// newPlainTable returns a borderless left aligned table writer
func newPlainTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateColumns = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateRows = false
	t.Style().Box.PaddingLeft = "  "
	t.Style().Box.PaddingRight = " "
	return t
}
