package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/smartcontractkit/bet-contract-client/chain/evm"
	"github.com/smartcontractkit/bet-contract-client/chain/utils"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

// ErrNoProvider is returned by Select when no injected provider answers the capability probe
// and no fallback endpoint is configured.
var ErrNoProvider = errors.New("no injected provider detected and no fallback endpoint configured")

// Provider supplies a read-only connection to an EVM node.
type Provider interface {
	// Initialize connects the provider and returns the client. Calling it again returns the
	// same client.
	Initialize(ctx context.Context) (evm.OnchainClient, error)
	// Name returns a human readable name of the provider.
	Name() string
	// ChainID returns the chain ID reported by the node. It is nil until Initialize succeeds.
	ChainID() *big.Int
}

var (
	_ Provider = (*InjectedProvider)(nil)
	_ Provider = (*WSProvider)(nil)
)

// SelectConfig holds the candidates Select chooses from.
type SelectConfig struct {
	// Optional: the provider supplied by the host environment. It is preferred whenever its
	// capability probe succeeds.
	Injected *InjectedProvider
	// Optional: the remote-socket provider used when no injected provider is detected.
	Fallback *WSProvider
	// Optional: defaults to a no-op logger.
	Logger logger.Logger
}

// Selection is the outcome of Select.
type Selection struct {
	Provider Provider
	Client   evm.OnchainClient
	// Owned reports whether Client was dialed by the selected provider. Only owned clients
	// should be closed by the caller; a client handed in by the host stays open.
	Owned bool
}

// ChainID returns the chain ID reported by the selected node.
func (s Selection) ChainID() *big.Int {
	return s.Provider.ChainID()
}

// Select prefers the injected provider and only initializes the fallback when the injected
// provider is absent or fails its capability probe. The fallback is never dialed when the
// injected provider is usable.
func Select(ctx context.Context, cfg SelectConfig) (Selection, error) {
	lggr := cfg.Logger
	if lggr == nil {
		lggr = logger.Nop()
	}

	var (
		chosen Provider
		owned  = true
	)
	switch {
	case cfg.Injected != nil && cfg.Injected.Detect(ctx):
		chosen = cfg.Injected
		owned = !cfg.Injected.HostSupplied()
	case cfg.Fallback != nil:
		if cfg.Injected != nil {
			lggr.Infow("Injected provider not detected, using fallback", "fallback", cfg.Fallback.Name())
		}
		chosen = cfg.Fallback
	default:
		return Selection{}, ErrNoProvider
	}

	client, err := chosen.Initialize(ctx)
	if err != nil {
		return Selection{}, fmt.Errorf("failed to initialize %s: %w", chosen.Name(), err)
	}

	lggr.Infow("Provider selected",
		"provider", chosen.Name(),
		"chainID", chosen.ChainID().String(),
		"chain", utils.ChainName(chosen.ChainID()),
	)

	return Selection{Provider: chosen, Client: client, Owned: owned}, nil
}
