// Package question provides the CLI commands that call the Bet contract.
package question

import (
	"context"

	"github.com/smartcontractkit/bet-contract-client/bet"
	"github.com/smartcontractkit/bet-contract-client/config"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

// QuestionClient is the part of bet.Client the question commands use.
type QuestionClient interface {
	CreateQuestion(ctx context.Context) (bet.CreateQuestionResult, error)
	Close()
}

// ConfigLoaderFunc loads the configuration from the given file path.
type ConfigLoaderFunc func(filePath string) (*config.Config, error)

// ClientLoaderFunc connects a client to the Bet contract described by cfg.
type ClientLoaderFunc func(ctx context.Context, cfg *config.Config, lggr logger.Logger) (QuestionClient, error)

// defaultConfigLoader is the production implementation that loads config.
func defaultConfigLoader(filePath string) (*config.Config, error) {
	return config.Load(filePath)
}

// defaultClientLoader is the production implementation that bootstraps a bet.Client.
func defaultClientLoader(ctx context.Context, cfg *config.Config, lggr logger.Logger) (QuestionClient, error) {
	return bet.Bootstrap(ctx, cfg, bet.WithLogger(lggr))
}

// Deps holds the injectable dependencies for question commands.
// All fields are optional; nil values will use production defaults.
type Deps struct {
	// ConfigLoader loads the configuration.
	// Default: config.Load
	ConfigLoader ConfigLoaderFunc

	// ClientLoader connects the contract client.
	// Default: bet.Bootstrap
	ClientLoader ClientLoaderFunc
}

// applyDefaults fills in nil dependencies with production defaults.
func (d *Deps) applyDefaults() {
	if d.ConfigLoader == nil {
		d.ConfigLoader = defaultConfigLoader
	}
	if d.ClientLoader == nil {
		d.ClientLoader = defaultClientLoader
	}
}
