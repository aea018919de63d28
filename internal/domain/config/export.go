package config

import (
	"fmt"
	"path/filepath"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// ExportTarget binds a contract identity to its frontend artifact files
type ExportTarget struct {
	Identity domain.ContractIdentity
	Paths    domain.ArtifactPaths
}

// DefaultArtifactPaths returns the conventional file pair for an identity:
// <Name>/<Name>ABI.json and <Name>/<Name>Address.json.
func DefaultArtifactPaths(identity domain.ContractIdentity) domain.ArtifactPaths {
	name := string(identity)
	return domain.ArtifactPaths{
		Interface: filepath.Join(name, name+"ABI.json"),
		Registry:  filepath.Join(name, name+"Address.json"),
	}
}

// ExportConfig is the ordered table of contracts exported to the frontend
type ExportConfig struct {
	targets []ExportTarget
	index   map[domain.ContractIdentity]int
}

// NewExportConfig builds the export table, rejecting duplicate identities and
// targets that share a file.
func NewExportConfig(targets []ExportTarget) (*ExportConfig, error) {
	c := &ExportConfig{
		targets: make([]ExportTarget, 0, len(targets)),
		index:   make(map[domain.ContractIdentity]int, len(targets)),
	}

	owners := make(map[string]domain.ContractIdentity)
	for _, t := range targets {
		if t.Identity == "" {
			return nil, domain.ConfigurationError("load exports", fmt.Errorf("contract name is required"))
		}
		if _, dup := c.index[t.Identity]; dup {
			return nil, domain.ConfigurationError("load exports", fmt.Errorf("contract %q is listed more than once", t.Identity))
		}
		if t.Paths.Interface == "" || t.Paths.Registry == "" {
			return nil, domain.ConfigurationError("load exports", fmt.Errorf("contract %q needs both an interface and a registry path", t.Identity))
		}
		if t.Paths.Interface == t.Paths.Registry {
			return nil, domain.ConfigurationError("load exports", fmt.Errorf("contract %q uses the same file for interface and registry", t.Identity))
		}
		for _, p := range []string{t.Paths.Interface, t.Paths.Registry} {
			if owner, taken := owners[p]; taken {
				return nil, domain.ConfigurationError("load exports", fmt.Errorf("%s is used by both %s and %s", p, owner, t.Identity))
			}
			owners[p] = t.Identity
		}

		c.index[t.Identity] = len(c.targets)
		c.targets = append(c.targets, t)
	}

	return c, nil
}

// Identities returns the configured identities in configuration order
func (c *ExportConfig) Identities() []domain.ContractIdentity {
	return lo.Map(c.targets, func(t ExportTarget, _ int) domain.ContractIdentity {
		return t.Identity
	})
}

// Targets returns a copy of the export table
func (c *ExportConfig) Targets() []ExportTarget {
	out := make([]ExportTarget, len(c.targets))
	copy(out, c.targets)
	return out
}

// Lookup returns the artifact paths for identity, or a configuration error naming
// the closest configured identities.
func (c *ExportConfig) Lookup(identity domain.ContractIdentity) (domain.ArtifactPaths, error) {
	if i, ok := c.index[identity]; ok {
		return c.targets[i].Paths, nil
	}

	return domain.ArtifactPaths{}, &domain.Error{
		Kind:     domain.KindConfiguration,
		Op:       "lookup export paths",
		Identity: identity,
		Err: domain.UnknownIdentityErr{
			Identity:    identity,
			Suggestions: c.suggest(identity),
		},
	}
}

func (c *ExportConfig) suggest(identity domain.ContractIdentity) []string {
	names := lo.Map(c.targets, func(t ExportTarget, _ int) string { return string(t.Identity) })
	matches := fuzzy.Find(string(identity), names)

	suggestions := make([]string, 0, 3)
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == cap(suggestions) {
			break
		}
	}
	return suggestions
}
