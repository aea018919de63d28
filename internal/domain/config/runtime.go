package config

import (
	"net/url"
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	ConfigFile  string

	// Context settings
	NetworkName string
	Network     *Network // nil if NetworkName is not configured
	Networks    map[string]*Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	Offline        bool // Skip on-chain checks during export
	AssumeYes      bool
	JSON           bool
	Timeout        time.Duration

	// Resolved configurations
	Artifacts ArtifactsConfig
	Exports   *ExportConfig
	Deploy    []DeployStep
}

// Network represents network configuration
type Network struct {
	Name       string `json:"name" yaml:"name"`
	ChainID    uint64 `json:"chainId,omitempty" yaml:"chainId,omitempty"` // 0 if it must be asked from the node
	RPCURL     string `json:"rpcUrl,omitempty" yaml:"rpcUrl,omitempty"`
	PrivateKey string `json:"-" yaml:"-"`
}

// IsLocal reports whether the network is a local development chain.
func (n *Network) IsLocal() bool {
	switch n.ChainID {
	case 31337, 1337:
		return true
	}
	if n.RPCURL == "" {
		return false
	}
	u, err := url.Parse(n.RPCURL)
	if err != nil {
		return false
	}
	switch u.Hostname() {
	case "localhost", "127.0.0.1", "0.0.0.0", "::1":
		return true
	}
	return false
}

// ArtifactsConfig locates compiled contract artifacts and the frontend export directory
type ArtifactsConfig struct {
	Source   string // absolute path of the compiler output directory
	Frontend string // absolute path the export paths are relative to
}
