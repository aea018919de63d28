package render

import (
	"fmt"
	"io"

	"github.com/gnft-labs/frontsync/internal/usecase"
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

// RenderNetworksList renders the list of networks, marking the selected one
func (r *NetworksRenderer) RenderNetworksList(result *usecase.ListNetworksResult) error {
	if len(result.Networks) == 0 {
		fmt.Fprintln(r.out, "No networks configured")
		return nil
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		marker := " "
		if network.Name == result.Current {
			marker = "*"
		}
		name := network.Name
		if network.Local {
			name += " (local)"
		}

		if network.Error != nil {
			fmt.Fprintf(r.out, "%s ❌ %s - Error: %v\n", marker, name, network.Error)
		} else {
			fmt.Fprintf(r.out, "%s ✅ %s - Chain ID: %s\n", marker, name, paint(r.color, headerStyle, fmt.Sprint(network.ChainID)))
		}
	}

	return nil
}
