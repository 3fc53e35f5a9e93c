// Package serve provides the CLI command that serves the Bet contract client over HTTP.
package serve

import (
	"context"

	"github.com/smartcontractkit/bet-contract-client/api"
	"github.com/smartcontractkit/bet-contract-client/bet"
	"github.com/smartcontractkit/bet-contract-client/config"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

// QuestionClient is the part of bet.Client the server needs.
type QuestionClient interface {
	api.QuestionCreator
	Close()
}

// ConfigLoaderFunc loads the configuration from the given file path.
type ConfigLoaderFunc func(filePath string) (*config.Config, error)

// ClientLoaderFunc connects a client to the Bet contract described by cfg.
type ClientLoaderFunc func(ctx context.Context, cfg *config.Config, lggr logger.Logger) (QuestionClient, error)

// ServerRunnerFunc serves HTTP requests until ctx is cancelled.
type ServerRunnerFunc func(ctx context.Context, cfg api.ServerConfig) error

// defaultConfigLoader is the production implementation that loads config.
func defaultConfigLoader(filePath string) (*config.Config, error) {
	return config.Load(filePath)
}

// defaultClientLoader is the production implementation that bootstraps a bet.Client.
func defaultClientLoader(ctx context.Context, cfg *config.Config, lggr logger.Logger) (QuestionClient, error) {
	return bet.Bootstrap(ctx, cfg, bet.WithLogger(lggr))
}

// defaultServerRunner is the production implementation that runs an api.Server.
func defaultServerRunner(ctx context.Context, cfg api.ServerConfig) error {
	srv, err := api.NewServer(cfg)
	if err != nil {
		return err
	}

	return srv.Run(ctx)
}

// Deps holds the injectable dependencies for the serve command.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// ClientLoader connects the contract client.
	// Default: bet.Bootstrap
	ClientLoader ClientLoaderFunc

	// ServerRunner runs the HTTP server.
	// Default: api.NewServer followed by Server.Run
	ServerRunner ServerRunnerFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = defaultConfigLoader
	}
	if d.ClientLoader == nil {
		d.ClientLoader = defaultClientLoader
	}
	if d.ServerRunner == nil {
		d.ServerRunner = defaultServerRunner
	}
}
