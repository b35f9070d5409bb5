package app

import (
	"log/slog"

	"github.com/trebuchet-org/catapult/internal/adapters/blockchain"
	"github.com/trebuchet-org/catapult/internal/domain/config"
	"github.com/trebuchet-org/catapult/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Logger *slog.Logger

	// Use cases
	DeployContract  *usecase.DeployContract
	ShowStatus      *usecase.ShowStatus
	CheckDeployment *usecase.CheckDeployment
	ListNetworks    *usecase.ListNetworks

	// Shared dependencies
	Chain chainCloser
}

// chainCloser releases the chain connection when the command finishes
type chainCloser interface {
	Close()
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	logger *slog.Logger,
	deployContract *usecase.DeployContract,
	showStatus *usecase.ShowStatus,
	checkDeployment *usecase.CheckDeployment,
	listNetworks *usecase.ListNetworks,
	chain *blockchain.Client,
) (*App, error) {
	return &App{
		Config:          cfg,
		Logger:          logger,
		DeployContract:  deployContract,
		ShowStatus:      showStatus,
		CheckDeployment: checkDeployment,
		ListNetworks:    listNetworks,
		Chain:           chain,
	}, nil
}

// Close releases resources held by the app
func (a *App) Close() {
	if a.Chain != nil {
		a.Chain.Close()
	}
}
