package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"path/filepath"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/spf13/afero"
)

// ArtifactStoreAdapter reads and writes the frontend artifact files. Relative paths
// are resolved against the frontend directory.
type ArtifactStoreAdapter struct {
	fs      afero.Fs
	baseDir string
}

// ProvideFs provides the operating system filesystem
func ProvideFs() afero.Fs {
	return afero.NewOsFs()
}

// NewArtifactStoreAdapter creates a new artifact store rooted at the frontend directory
func NewArtifactStoreAdapter(fs afero.Fs, cfg *config.RuntimeConfig) *ArtifactStoreAdapter {
	return &ArtifactStoreAdapter{
		fs:      fs,
		baseDir: cfg.Artifacts.Frontend,
	}
}

// ReadInterface reads an interface description file
func (s *ArtifactStoreAdapter) ReadInterface(ctx context.Context, path string) (domain.InterfaceDescription, error) {
	full := s.resolve(path)
	data, err := afero.ReadFile(s.fs, full)
	if err != nil {
		return nil, domain.IOError("read interface", full, err)
	}

	description, err := domain.NewInterfaceDescription(data)
	if err != nil {
		return nil, domain.ParseError("read interface", full, err)
	}
	return description, nil
}

// WriteInterface replaces an interface description file
func (s *ArtifactStoreAdapter) WriteInterface(ctx context.Context, path string, description domain.InterfaceDescription) error {
	full := s.resolve(path)
	if err := s.writeFile(full, description); err != nil {
		return domain.IOError("write interface", full, err)
	}
	return nil
}

// ReadRegistry reads an address registry file. A missing or empty file is an empty registry.
func (s *ArtifactStoreAdapter) ReadRegistry(ctx context.Context, path string) (*domain.AddressRegistry, error) {
	full := s.resolve(path)
	data, err := afero.ReadFile(s.fs, full)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return domain.NewAddressRegistry(), nil
		}
		return nil, domain.IOError("read registry", full, err)
	}

	registry, err := domain.ParseAddressRegistry(data)
	if err != nil {
		return nil, domain.ParseError("read registry", full, err)
	}
	return registry, nil
}

// WriteRegistry replaces an address registry file
func (s *ArtifactStoreAdapter) WriteRegistry(ctx context.Context, path string, registry *domain.AddressRegistry) error {
	full := s.resolve(path)
	data, err := registry.MarshalJSON()
	if err != nil {
		return domain.IOError("write registry", full, err)
	}
	if err := s.writeFile(full, data); err != nil {
		return domain.IOError("write registry", full, err)
	}
	return nil
}

func (s *ArtifactStoreAdapter) resolve(path string) string {
	if filepath.IsAbs(path) || s.baseDir == "" {
		return filepath.Clean(path)
	}
	return filepath.Join(s.baseDir, path)
}

// writeFile writes to a temp file first so readers never see a partial file
func (s *ArtifactStoreAdapter) writeFile(path string, data []byte) error {
	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, data, 0644); err != nil {
		return err
	}

	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return err
	}
	return nil
}

// Ensure the adapter implements the interface
var _ usecase.ArtifactStore = (*ArtifactStoreAdapter)(nil)
