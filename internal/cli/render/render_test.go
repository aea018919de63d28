package render

import (
	"bytes"
	"testing"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegistries() *usecase.ShowRegistryResult {
	token := domain.NewAddressRegistry()
	token.Add(5, "0x1111111111111111111111111111111111111111")
	token.Add(31337, "0xAAA")
	token.Add(31337, "0xCCC")

	return &usecase.ShowRegistryResult{
		Entries: []usecase.RegistryEntry{
			{Identity: "Token", Registry: token, HasInterface: true},
			{Identity: "BasicGNFT", Registry: domain.NewAddressRegistry()},
		},
	}
}

func TestRegistryRendererJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewRegistryRenderer(&out, false).RenderRegistries(sampleRegistries(), FormatJSON))

	expected := `{
  "Token": {
    "5": [
      "0x1111111111111111111111111111111111111111"
    ],
    "31337": [
      "0xAAA",
      "0xCCC"
    ]
  },
  "BasicGNFT": {}
}
`
	assert.Equal(t, expected, out.String())
}

func TestRegistryRendererYAML(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewRegistryRenderer(&out, false).RenderRegistries(sampleRegistries(), FormatYAML))

	expected := `Token:
  "5":
    - "0x1111111111111111111111111111111111111111"
  "31337":
    - "0xAAA"
    - "0xCCC"
BasicGNFT: {}
`
	assert.Equal(t, expected, out.String())
}

func TestRegistryRendererTable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewRegistryRenderer(&out, false).RenderRegistries(sampleRegistries(), FormatTable))

	got := out.String()
	assert.Contains(t, got, "CONTRACT")
	assert.Contains(t, got, "0xCCC")
	assert.Contains(t, got, "no addresses recorded")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("0xAAA")), bytes.Index(out.Bytes(), []byte("0xCCC")))
}

func TestRegistryRendererUnknownFormat(t *testing.T) {
	err := NewRegistryRenderer(&bytes.Buffer{}, false).RenderRegistries(sampleRegistries(), "xml")
	assert.EqualError(t, err, `unknown output format "xml"`)
}

func TestExportRenderer(t *testing.T) {
	result := &usecase.ExportResult{
		NetworkID: 31337,
		Steps: []usecase.ExportStep{
			{Identity: "Token", Kind: usecase.StepInterface, Path: "Token/TokenABI.json", Address: "0xAAA", Added: true},
			{Identity: "Token", Kind: usecase.StepRegistry, Path: "Token/TokenAddress.json", Address: "0xAAA", Added: true},
			{Identity: "Games", Kind: usecase.StepRegistry, Path: "Games/GamesAddress.json", Address: "0xBBB", Added: false},
		},
	}

	var out bytes.Buffer
	require.NoError(t, NewExportRenderer(&out, false).RenderExport(result))

	got := out.String()
	assert.Contains(t, got, "Network  31337 \n")
	assert.Contains(t, got, "✓ Interface Token → Token/TokenABI.json\n")
	assert.Contains(t, got, "✓ Registry  Token 0xAAA → Token/TokenAddress.json\n")
	assert.Contains(t, got, "= Registry  Games 0xBBB already recorded in Games/GamesAddress.json\n")
	assert.Contains(t, got, "Exported 1 interfaces, recorded 1 new addresses\n")
}

func TestNetworksRenderer(t *testing.T) {
	result := &usecase.ListNetworksResult{
		Current: "localhost",
		Networks: []usecase.NetworkStatus{
			{Name: "localhost", ChainID: 31337, Local: true},
			{Name: "goerli", Error: assert.AnError},
		},
	}

	var out bytes.Buffer
	require.NoError(t, NewNetworksRenderer(&out, false).RenderNetworksList(result))

	assert.Contains(t, out.String(), "* ✅ localhost (local) - Chain ID: 31337\n")
	assert.Contains(t, out.String(), "  ❌ goerli - Error: "+assert.AnError.Error()+"\n")
}
