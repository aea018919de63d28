package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"gopkg.in/yaml.v3"
)

// RegistryFormat selects how registries are printed
type RegistryFormat string

const (
	FormatTable RegistryFormat = "table"
	FormatJSON  RegistryFormat = "json"
	FormatYAML  RegistryFormat = "yaml"
)

// RegistryRenderer renders exported address registries
type RegistryRenderer struct {
	out   io.Writer
	color bool
}

// NewRegistryRenderer creates a new registry renderer
func NewRegistryRenderer(out io.Writer, color bool) *RegistryRenderer {
	return &RegistryRenderer{
		out:   out,
		color: color,
	}
}

// RenderRegistries prints the registries in the requested format. JSON and YAML keep
// contracts, networks and addresses in file order.
func (r *RegistryRenderer) RenderRegistries(result *usecase.ShowRegistryResult, format RegistryFormat) error {
	switch format {
	case FormatJSON:
		return r.renderJSON(result)
	case FormatYAML:
		return r.renderYAML(result)
	case FormatTable, "":
		return r.renderTable(result)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r *RegistryRenderer) renderTable(result *usecase.ShowRegistryResult) error {
	if len(result.Entries) == 0 {
		fmt.Fprintln(r.out, "No contracts configured for export")
		return nil
	}

	t := newPlainTable(r.out)
	t.AppendHeader(table.Row{"CONTRACT", "NETWORK", "ADDRESS", "ABI"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, AutoMerge: true},
		{Number: 2, AutoMerge: true, Align: text.AlignRight},
	})

	for _, entry := range result.Entries {
		abi := paint(r.color, successStyle, "✓")
		if !entry.HasInterface {
			abi = paint(r.color, errorStyle, "✗")
		}
		name := paint(r.color, identityStyle, string(entry.Identity))

		if entry.Registry.Len() == 0 {
			t.AppendRow(table.Row{name, "-", paint(r.color, pathStyle, "no addresses recorded"), abi})
			continue
		}

		for _, network := range entry.Registry.Networks() {
			addresses := entry.Registry.Addresses(network)
			latest, _ := entry.Registry.Latest(network)
			for _, addr := range addresses {
				shown := paint(r.color, pathStyle, addr)
				if addr == latest {
					shown = paint(r.color, addressStyle, addr)
				}
				t.AppendRow(table.Row{name, network.Key(), shown, abi})
			}
		}
	}

	t.Render()
	return nil
}

// renderJSON writes {"<contract>": <registry>, ...} with each registry in its own
// compact form indented as a whole
func (r *RegistryRenderer) renderJSON(result *usecase.ShowRegistryResult) error {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range result.Entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(string(entry.Identity))
		if err != nil {
			return err
		}
		value, err := entry.Registry.MarshalJSON()
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return fmt.Errorf("failed to format JSON: %w", err)
	}
	indented.WriteByte('\n')
	_, err := r.out.Write(indented.Bytes())
	return err
}

// renderYAML builds the document node by node so map order follows the files
func (r *RegistryRenderer) renderYAML(result *usecase.ShowRegistryResult) error {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range result.Entries {
		networks := &yaml.Node{Kind: yaml.MappingNode}
		for _, network := range entry.Registry.Networks() {
			addresses := &yaml.Node{Kind: yaml.SequenceNode}
			for _, addr := range entry.Registry.Addresses(network) {
				value := scalar(addr)
				value.Style = yaml.DoubleQuotedStyle
				addresses.Content = append(addresses.Content, value)
			}
			key := scalar(network.Key())
			key.Style = yaml.DoubleQuotedStyle
			networks.Content = append(networks.Content, key, addresses)
		}
		root.Content = append(root.Content, scalar(string(entry.Identity)), networks)
	}

	enc := yaml.NewEncoder(r.out)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{root}}); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return enc.Close()
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value}
}
