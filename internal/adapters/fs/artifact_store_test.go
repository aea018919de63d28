package fs

import (
	"context"
	"errors"
	iofs "io/fs"
	"testing"

	"github.com/gnft-labs/frontsync/internal/domain"
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(fs afero.Fs) *ArtifactStoreAdapter {
	return NewArtifactStoreAdapter(fs, &config.RuntimeConfig{
		Artifacts: config.ArtifactsConfig{Frontend: "/app/src/constants"},
	})
}

func TestArtifactStoreRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file is an empty registry", func(t *testing.T) {
		store := newTestStore(afero.NewMemMapFs())

		registry, err := store.ReadRegistry(ctx, "Token/TokenAddress.json")
		require.NoError(t, err)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("empty file is an empty registry", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/app/src/constants/Token/TokenAddress.json", []byte("\n"), 0644))
		store := newTestStore(fs)

		registry, err := store.ReadRegistry(ctx, "Token/TokenAddress.json")
		require.NoError(t, err)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("write creates parent directories", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := newTestStore(fs)

		registry := domain.NewAddressRegistry()
		registry.Add(31337, "0xAAA")
		require.NoError(t, store.WriteRegistry(ctx, "Token/TokenAddress.json", registry))

		data, err := afero.ReadFile(fs, "/app/src/constants/Token/TokenAddress.json")
		require.NoError(t, err)
		assert.Equal(t, `{"31337":["0xAAA"]}`, string(data))

		exists, err := afero.Exists(fs, "/app/src/constants/Token/TokenAddress.json.tmp")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("malformed file is a parse error", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(fs, "/app/src/constants/Token/TokenAddress.json", []byte(`{"31337":`), 0644))
		store := newTestStore(fs)

		_, err := store.ReadRegistry(ctx, "Token/TokenAddress.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
		assert.Contains(t, err.Error(), "/app/src/constants/Token/TokenAddress.json")
	})

	t.Run("read-only filesystem is an io error", func(t *testing.T) {
		store := newTestStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))

		err := store.WriteRegistry(ctx, "Token/TokenAddress.json", domain.NewAddressRegistry())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrIO))
	})

	t.Run("absolute paths bypass the frontend directory", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		store := newTestStore(fs)

		registry := domain.NewAddressRegistry()
		registry.Add(5, "0xBBB")
		require.NoError(t, store.WriteRegistry(ctx, "/elsewhere/Games.json", registry))

		data, err := afero.ReadFile(fs, "/elsewhere/Games.json")
		require.NoError(t, err)
		assert.Equal(t, `{"5":["0xBBB"]}`, string(data))
	})
}

func TestArtifactStoreInterface(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	store := newTestStore(fs)

	t.Run("missing interface is not-exist", func(t *testing.T) {
		_, err := store.ReadInterface(ctx, "Token/TokenABI.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrIO))
		assert.True(t, errors.Is(err, iofs.ErrNotExist))
	})

	t.Run("write replaces previous content", func(t *testing.T) {
		first, err := domain.NewInterfaceDescription([]byte(`[{"type":"function","name":"a"}]`))
		require.NoError(t, err)
		second, err := domain.NewInterfaceDescription([]byte(`[{"type":"function","name":"b"}]`))
		require.NoError(t, err)

		require.NoError(t, store.WriteInterface(ctx, "Token/TokenABI.json", first))
		require.NoError(t, store.WriteInterface(ctx, "Token/TokenABI.json", second))

		got, err := store.ReadInterface(ctx, "Token/TokenABI.json")
		require.NoError(t, err)
		assert.Equal(t, second, got)
	})

	t.Run("non-array interface is a parse error", func(t *testing.T) {
		require.NoError(t, afero.WriteFile(fs, "/app/src/constants/Bad/BadABI.json", []byte(`{}`), 0644))

		_, err := store.ReadInterface(ctx, "Bad/BadABI.json")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrParse))
	})
}
