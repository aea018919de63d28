package app

import (
	"github.com/gnft-labs/frontsync/internal/domain/config"
	"github.com/gnft-labs/frontsync/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig

	// Shared dependencies
	Progress usecase.ProgressSink

	// Use cases
	ExportAll       *usecase.ExportAll
	DeployContracts *usecase.DeployContracts
	ShowRegistry    *usecase.ShowRegistry
	ListNetworks    *usecase.ListNetworks
}

// NewApp creates a new App instance
func NewApp(
	cfg *config.RuntimeConfig,
	progress usecase.ProgressSink,
	exportAll *usecase.ExportAll,
	deployContracts *usecase.DeployContracts,
	showRegistry *usecase.ShowRegistry,
	listNetworks *usecase.ListNetworks,
) *App {
	return &App{
		Config:          cfg,
		Progress:        progress,
		ExportAll:       exportAll,
		DeployContracts: deployContracts,
		ShowRegistry:    showRegistry,
		ListNetworks:    listNetworks,
	}
}
