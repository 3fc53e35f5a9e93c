package bet

import (
	"context"
	"fmt"
	"strings"

	"github.com/smartcontractkit/bet-contract-client/chain/evm"
	"github.com/smartcontractkit/bet-contract-client/chain/evm/provider"
	"github.com/smartcontractkit/bet-contract-client/chain/utils"
	"github.com/smartcontractkit/bet-contract-client/config"
	"github.com/smartcontractkit/bet-contract-client/contract/artifact"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

// BootstrapOption customizes Bootstrap.
type BootstrapOption func(*bootstrapOptions)

type bootstrapOptions struct {
	injected evm.OnchainClient
	lggr     logger.Logger
}

// WithInjectedClient hands Bootstrap a client supplied by the host process. It takes
// precedence over the configured IPC endpoint and is probed like any injected provider. The
// host keeps ownership: closing the returned Client leaves it open.
func WithInjectedClient(client evm.OnchainClient) BootstrapOption {
	return func(o *bootstrapOptions) {
		o.injected = client
	}
}

// WithLogger sets the logger used during bootstrap and by the returned Client.
func WithLogger(lggr logger.Logger) BootstrapOption {
	return func(o *bootstrapOptions) {
		o.lggr = lggr
	}
}

// Bootstrap validates cfg, loads the contract artifact, selects a provider and returns a
// Client bound to the configured contract. The caller owns the returned Client and should
// Close it when done.
func Bootstrap(ctx context.Context, cfg *config.Config, opts ...BootstrapOption) (*Client, error) {
	o := bootstrapOptions{lggr: logger.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	art, err := artifact.Load(cfg.ArtifactPath)
	if err != nil {
		return nil, err
	}

	selectCfg := provider.SelectConfig{Logger: o.lggr.Named("provider")}
	if o.injected != nil || cfg.IPCPath != "" {
		selectCfg.Injected = provider.NewInjectedProvider(provider.InjectedProviderConfig{
			Client:  o.injected,
			IPCPath: cfg.IPCPath,
			Logger:  o.lggr.Named("provider"),
		})
	}
	if cfg.Endpoint != "" {
		selectCfg.Fallback = provider.NewWSProvider(provider.WSProviderConfig{
			URL:    cfg.Endpoint,
			Logger: o.lggr.Named("provider"),
		})
	}

	sel, err := provider.Select(ctx, selectCfg)
	if err != nil {
		return nil, err
	}

	checkDeployment(o.lggr, cfg, art, sel)

	client, err := NewClient(ClientConfig{
		Backend:         sel.Client,
		ABI:             art.ABI,
		ContractAddress: cfg.ContractAddr(),
		Network:         cfg.Network,
		Account:         cfg.AccountAddr(),
		Logger:          o.lggr.Named("bet"),
		CloseBackend:    sel.Owned,
	})
	if err != nil {
		if sel.Owned {
			evm.Close(sel.Client)
		}

		return nil, err
	}

	return client, nil
}

// checkDeployment warns when the connected chain does not look like the configured one. It
// never fails: the configured values win.
func checkDeployment(lggr logger.Logger, cfg *config.Config, art *artifact.Artifact, sel provider.Selection) {
	chainID := sel.ChainID()

	if recorded, ok := art.DeployedAddress(chainID); ok && recorded != cfg.ContractAddr() {
		lggr.Warnw("Artifact records a different contract address for the connected chain",
			"chainID", chainID.String(),
			"configured", cfg.ContractAddr().Hex(),
			"artifact", recorded.Hex(),
		)
	}

	info, err := utils.ChainInfoByChainID(chainID)
	if err != nil {
		return
	}
	if !strings.Contains(strings.ToLower(info.ChainName), strings.ToLower(cfg.Network)) {
		lggr.Warnw("Connected chain does not match the configured network",
			"network", cfg.Network,
			"chain", info.ChainName,
		)
	}
}
