package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/joho/godotenv"
)

// ConfigFileName is the project configuration file looked up from the working directory
const ConfigFileName = "frontsync.toml"

// Local chains that are always available unless the config file overrides them
var builtinNetworks = map[string]config.Network{
	"localhost": {Name: "localhost", ChainID: 31337, RPCURL: "http://127.0.0.1:8545"},
	"hardhat":   {Name: "hardhat", ChainID: 31337, RPCURL: "http://127.0.0.1:8545"},
}

// fileConfig represents the raw frontsync.toml structure
type fileConfig struct {
	Artifacts struct {
		Source   string `toml:"source"`
		Frontend string `toml:"frontend"`
	} `toml:"artifacts"`
	Networks  map[string]networkFile `toml:"networks"`
	Contracts []contractFile         `toml:"contracts"`
	Deploy    []deployFile           `toml:"deploy"`
}

type networkFile struct {
	ChainID    uint64 `toml:"chain_id"`
	RPCURL     string `toml:"rpc_url"`
	PrivateKey string `toml:"private_key"` //nolint:gosec // holds env var reference, not a literal secret
}

type contractFile struct {
	Name      string `toml:"name"`
	Interface string `toml:"interface"`
	Registry  string `toml:"registry"`
}

type deployFile struct {
	Contract string   `toml:"contract"`
	Call     string   `toml:"call"`
	Args     []string `toml:"args"`
}

// ProjectConfig is the parsed and env-expanded content of frontsync.toml
type ProjectConfig struct {
	Path      string
	Artifacts config.ArtifactsConfig
	Networks  map[string]*config.Network
	Exports   *config.ExportConfig
	Deploy    []config.DeployStep
}

// loadDotEnv loads .env files from the project root. Variables already present in
// the environment win.
func loadDotEnv(projectRoot string) {
	envFiles := []string{
		filepath.Join(projectRoot, ".env.local"),
		filepath.Join(projectRoot, ".env"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: Failed to load %s: %v\n", envFile, err)
			}
		}
	}
}

// LoadProjectConfig loads .env files and parses frontsync.toml from projectRoot
func LoadProjectConfig(projectRoot string) (*ProjectConfig, error) {
	loadDotEnv(projectRoot)

	path := filepath.Join(projectRoot, ConfigFileName)
	var raw fileConfig
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, domain.ConfigurationError("load config", fmt.Errorf("failed to parse %s: %w", ConfigFileName, err))
	}

	return buildProjectConfig(projectRoot, path, &raw)
}

func buildProjectConfig(projectRoot, path string, raw *fileConfig) (*ProjectConfig, error) {
	pc := &ProjectConfig{
		Path:     path,
		Networks: make(map[string]*config.Network),
	}

	pc.Artifacts = config.ArtifactsConfig{
		Source:   resolvePath(projectRoot, expand(raw.Artifacts.Source), defaultSourceDir(projectRoot)),
		Frontend: resolvePath(projectRoot, expand(raw.Artifacts.Frontend), "."),
	}

	for name, n := range builtinNetworks {
		pc.Networks[name] = &n
	}
	for name, n := range raw.Networks {
		pc.Networks[name] = &config.Network{
			Name:       name,
			ChainID:    n.ChainID,
			RPCURL:     expand(n.RPCURL),
			PrivateKey: expand(n.PrivateKey),
		}
	}

	targets := make([]config.ExportTarget, 0, len(raw.Contracts))
	for _, c := range raw.Contracts {
		identity := domain.ContractIdentity(c.Name)
		paths := config.DefaultArtifactPaths(identity)
		if c.Interface != "" {
			paths.Interface = expand(c.Interface)
		}
		if c.Registry != "" {
			paths.Registry = expand(c.Registry)
		}
		targets = append(targets, config.ExportTarget{Identity: identity, Paths: paths})
	}
	exports, err := config.NewExportConfig(targets)
	if err != nil {
		return nil, err
	}
	pc.Exports = exports

	for i, d := range raw.Deploy {
		step := config.DeployStep{
			Contract: domain.ContractIdentity(d.Contract),
			Call:     d.Call,
			Args:     make([]string, len(d.Args)),
		}
		for j, arg := range d.Args {
			step.Args[j] = expand(arg)
		}
		if err := step.Validate(); err != nil {
			return nil, domain.ConfigurationError("load deploy plan", fmt.Errorf("step %d: %w", i+1, err))
		}
		pc.Deploy = append(pc.Deploy, step)
	}

	return pc, nil
}

// NetworkNames returns the configured network names in sorted order
func (pc *ProjectConfig) NetworkNames() []string {
	names := make([]string, 0, len(pc.Networks))
	for name := range pc.Networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func expand(s string) string {
	return os.ExpandEnv(s)
}

// resolvePath makes p absolute relative to root, using def when p is empty
func resolvePath(root, p, def string) string {
	if p == "" {
		p = def
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(root, p)
}

// defaultSourceDir prefers a Foundry out/ directory and falls back to Hardhat's artifacts/
func defaultSourceDir(projectRoot string) string {
	if info, err := os.Stat(filepath.Join(projectRoot, "out")); err == nil && info.IsDir() {
		return "out"
	}
	if info, err := os.Stat(filepath.Join(projectRoot, "artifacts")); err == nil && info.IsDir() {
		return "artifacts"
	}
	return "out"
}
