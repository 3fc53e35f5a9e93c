package provider

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/google/uuid"

	"github.com/smartcontractkit/bet-contract-client/chain/evm"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

const (
	// DefaultDialTimeout bounds dialing the remote endpoint.
	DefaultDialTimeout = 10 * time.Second
	// DefaultHealthCheckTimeout bounds the eth_chainId request made right after dialing.
	DefaultHealthCheckTimeout = 2 * time.Second
)

// WSProviderConfig holds the configuration to initialize the WSProvider.
type WSProviderConfig struct {
	// Required: the remote endpoint. ws:// and wss:// open a websocket, http:// and https://
	// are accepted as well.
	URL string
	// Optional: defaults to DefaultDialTimeout.
	DialTimeout time.Duration
	// Optional: defaults to DefaultHealthCheckTimeout.
	HealthCheckTimeout time.Duration
	// Optional: defaults to a no-op logger.
	Logger logger.Logger
}

// validate checks if the WSProviderConfig is valid.
func (c WSProviderConfig) validate() error {
	if c.URL == "" {
		return errors.New("endpoint URL is required")
	}

	u, err := url.Parse(c.URL)
	if err != nil {
		return fmt.Errorf("invalid endpoint URL: %w", err)
	}

	switch u.Scheme {
	case "ws", "wss", "http", "https":
		return nil
	default:
		return fmt.Errorf("unsupported endpoint URL scheme %q", u.Scheme)
	}
}

// WSProvider is the fallback provider that connects to a remote node over a socket. Creating
// it does not connect; the endpoint is only dialed by Initialize.
type WSProvider struct {
	config WSProviderConfig

	client  *ethclient.Client
	chainID *big.Int
}

// NewWSProvider creates a new WSProvider with the given configuration.
func NewWSProvider(config WSProviderConfig) *WSProvider {
	if config.DialTimeout == 0 {
		config.DialTimeout = DefaultDialTimeout
	}
	if config.HealthCheckTimeout == 0 {
		config.HealthCheckTimeout = DefaultHealthCheckTimeout
	}
	if config.Logger == nil {
		config.Logger = logger.Nop()
	}

	return &WSProvider{config: config}
}

// Initialize dials the endpoint once and checks that the node answers eth_chainId. There is no
// retry: a failed dial or health check is returned to the caller.
func (p *WSProvider) Initialize(ctx context.Context) (evm.OnchainClient, error) {
	if p.client != nil {
		return p.client, nil // Already initialized
	}

	if err := p.config.validate(); err != nil {
		return nil, fmt.Errorf("failed to validate provider config: %w", err)
	}

	traceID := uuid.New()
	lggr := p.config.Logger

	dialCtx, cancel := context.WithTimeout(ctx, p.config.DialTimeout)
	defer cancel()

	lggr.Debugf("traceID %q: dialing endpoint '%s'", traceID.String(), p.config.URL)
	client, err := ethclient.DialContext(dialCtx, p.config.URL)
	if err != nil {
		lggr.Warnf("traceID %q: dialing endpoint '%s' failed: %v", traceID.String(), p.config.URL, err)
		return nil, fmt.Errorf("failed to dial endpoint '%s': %w", p.config.URL, err)
	}

	checkCtx, cancelCheck := context.WithTimeout(ctx, p.config.HealthCheckTimeout)
	defer cancelCheck()

	chainID, err := client.ChainID(checkCtx)
	if err != nil {
		client.Close()
		lggr.Warnf("traceID %q: health check failed for endpoint '%s': %v", traceID.String(), p.config.URL, err)

		return nil, fmt.Errorf("health check failed: %w", err)
	}

	lggr.Debugf("traceID %q: connected to endpoint '%s' (chain ID %s)", traceID.String(), p.config.URL, chainID)

	p.client = client
	p.chainID = chainID

	return p.client, nil
}

// Name returns the name of the WSProvider.
func (*WSProvider) Name() string {
	return "Remote Socket Provider"
}

// ChainID returns the chain ID reported by the remote node.
func (p *WSProvider) ChainID() *big.Int {
	return p.chainID
}
