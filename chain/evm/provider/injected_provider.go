package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/smartcontractkit/bet-contract-client/chain/evm"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

// DefaultProbeTimeout bounds the capability probe of an injected provider.
const DefaultProbeTimeout = 2 * time.Second

var errNotDetected = errors.New("injected provider not detected")

// InjectedProviderConfig holds the configuration to initialize the InjectedProvider.
type InjectedProviderConfig struct {
	// Optional: a client already constructed by the host process. Takes precedence over
	// IPCPath.
	Client evm.OnchainClient
	// Optional: path of the IPC endpoint exposed by a node running alongside the host.
	IPCPath string
	// Optional: bounds the capability probe. Defaults to DefaultProbeTimeout.
	ProbeTimeout time.Duration
	// Optional: defaults to a no-op logger.
	Logger logger.Logger
}

// InjectedProvider is a provider supplied by the host environment: either a client the host
// hands in directly or a local node reachable over IPC.
type InjectedProvider struct {
	config InjectedProviderConfig

	client  evm.OnchainClient
	chainID *big.Int
}

// NewInjectedProvider creates a new InjectedProvider. No connection is made until Detect or
// Initialize is called.
func NewInjectedProvider(config InjectedProviderConfig) *InjectedProvider {
	if config.ProbeTimeout == 0 {
		config.ProbeTimeout = DefaultProbeTimeout
	}
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	return &InjectedProvider{config: config}
}

// Detect is the capability probe. It reports whether the host supplied a provider that
// answers eth_chainId. A failed probe leaves no open connection behind.
func (p *InjectedProvider) Detect(ctx context.Context) bool {
	if p.client != nil {
		return true
	}

	client, err := p.connect(ctx)
	if err != nil {
		p.config.Logger.Debugw("Injected provider not available", "err", err)
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, p.config.ProbeTimeout)
	defer cancel()

	chainID, err := client.ChainID(probeCtx)
	if err != nil {
		p.config.Logger.Debugw("Injected provider failed capability probe", "err", err)
		if p.config.Client == nil {
			evm.Close(client)
		}

		return false
	}

	p.client = client
	p.chainID = chainID

	return true
}

// Initialize returns the injected client, probing it first if Detect has not been called.
func (p *InjectedProvider) Initialize(ctx context.Context) (evm.OnchainClient, error) {
	if p.client != nil {
		return p.client, nil // Already initialized
	}

	if !p.Detect(ctx) {
		return nil, errNotDetected
	}

	return p.client, nil
}

// Name returns the name of the InjectedProvider.
func (p *InjectedProvider) Name() string {
	if p.config.Client == nil && p.config.IPCPath != "" {
		return "Injected IPC Provider"
	}

	return "Injected Provider"
}

// HostSupplied reports whether the client was handed in by the host. The host keeps ownership
// of such a client and closes it itself.
func (p *InjectedProvider) HostSupplied() bool {
	return p.config.Client != nil
}

// ChainID returns the chain ID reported by the injected node.
func (p *InjectedProvider) ChainID() *big.Int {
	return p.chainID
}

func (p *InjectedProvider) connect(ctx context.Context) (evm.OnchainClient, error) {
	if p.config.Client != nil {
		return p.config.Client, nil
	}

	if p.config.IPCPath == "" {
		return nil, errNotDetected
	}

	if _, err := os.Stat(p.config.IPCPath); err != nil {
		return nil, fmt.Errorf("ipc endpoint %s: %w", p.config.IPCPath, err)
	}

	rc, err := rpc.DialIPC(ctx, p.config.IPCPath)
	if err != nil {
		return nil, fmt.Errorf("failed to dial ipc endpoint %s: %w", p.config.IPCPath, err)
	}

	return ethclient.NewClient(rc), nil
}
