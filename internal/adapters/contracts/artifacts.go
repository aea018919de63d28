package contracts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	iofs "io/fs"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/spf13/afero"
)

// Artifact is a compiled contract as written by forge (out/) or hardhat (artifacts/)
type Artifact struct {
	Path     string          `json:"-"`
	ABI      json.RawMessage `json:"abi"`
	Bytecode json.RawMessage `json:"bytecode"` // forge: {"object": "0x.."}, hardhat: "0x.."
}

// ParsedABI parses the artifact ABI
func (a *Artifact) ParsedABI() (abi.ABI, error) {
	if len(a.ABI) == 0 {
		return abi.ABI{}, fmt.Errorf("artifact %s has no abi", a.Path)
	}
	return abi.JSON(bytes.NewReader(a.ABI))
}

// CreationCode returns the contract creation bytecode
func (a *Artifact) CreationCode() ([]byte, error) {
	var code string
	if err := json.Unmarshal(a.Bytecode, &code); err != nil {
		var object struct {
			Object string `json:"object"`
		}
		if err := json.Unmarshal(a.Bytecode, &object); err != nil {
			return nil, fmt.Errorf("artifact %s has no bytecode", a.Path)
		}
		code = object.Object
	}

	if code == "" || code == "0x" {
		return nil, fmt.Errorf("artifact %s has empty bytecode (abstract contract or interface?)", a.Path)
	}
	if strings.Contains(code, "__") {
		return nil, fmt.Errorf("artifact %s has unlinked library references", a.Path)
	}
	if !strings.HasPrefix(code, "0x") {
		code = "0x" + code
	}
	return hexutil.Decode(code)
}

// ArtifactLoader finds and caches compiled artifacts by contract name
type ArtifactLoader struct {
	fs        afero.Fs
	sourceDir string
	cache     map[domain.ContractIdentity]*Artifact
}

// NewArtifactLoader creates a loader over the configured artifact directory
func NewArtifactLoader(fs afero.Fs, cfg *config.RuntimeConfig) *ArtifactLoader {
	return &ArtifactLoader{
		fs:        fs,
		sourceDir: cfg.Artifacts.Source,
		cache:     make(map[domain.ContractIdentity]*Artifact),
	}
}

// Load returns the artifact for identity. Forge and hardhat layouts are tried
// first, then the whole directory is searched for <Name>.json.
func (l *ArtifactLoader) Load(identity domain.ContractIdentity) (*Artifact, error) {
	if artifact, ok := l.cache[identity]; ok {
		return artifact, nil
	}

	path, err := l.find(identity)
	if err != nil {
		return nil, domain.ResolutionError("load artifact", identity, err)
	}

	data, err := afero.ReadFile(l.fs, path)
	if err != nil {
		return nil, domain.IOError("load artifact", path, err)
	}

	artifact := &Artifact{Path: path}
	if err := json.Unmarshal(data, artifact); err != nil {
		return nil, domain.ResolutionError("load artifact", identity, fmt.Errorf("invalid artifact %s: %w", path, err))
	}

	l.cache[identity] = artifact
	return artifact, nil
}

func (l *ArtifactLoader) find(identity domain.ContractIdentity) (string, error) {
	name := string(identity)
	candidates := []string{
		filepath.Join(l.sourceDir, name+".sol", name+".json"),
		filepath.Join(l.sourceDir, "contracts", name+".sol", name+".json"),
	}
	for _, candidate := range candidates {
		if ok, _ := afero.Exists(l.fs, candidate); ok {
			return candidate, nil
		}
	}

	var matches []string
	err := afero.Walk(l.fs, l.sourceDir, func(path string, info iofs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if info.Name() == name+".json" {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return "", fmt.Errorf("artifact directory %s does not exist (did you compile the contracts?)", l.sourceDir)
		}
		return "", err
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no compiled artifact named %s.json in %s", name, l.sourceDir)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("multiple artifacts named %s.json: %s", name, strings.Join(matches, ", "))
	}
}
