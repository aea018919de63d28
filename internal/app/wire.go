//go:build wireinject
// +build wireinject

package app

import (
	"github.com/gnft-labs/frontsync/internal/adapters"
	"github.com/gnft-labs/frontsync/internal/config"
	domainconfig "github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/logging"
	"github.com/gnft-labs/frontsync/internal/usecase"
	"github.com/google/wire"
)

// InitApp creates a fully wired App instance. The returned cleanup closes the
// chain connection.
func InitApp(cfg *domainconfig.RuntimeConfig, sink usecase.ProgressSink) (*App, func(), error) {
	wire.Build(
		config.ProvideExportConfig,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewExportInterface,
		usecase.NewSyncAddress,
		usecase.NewExportAll,
		usecase.NewDeployContracts,
		usecase.NewShowRegistry,
		usecase.NewListNetworks,

		// App
		NewApp,
	)
	return nil, nil, nil
}
