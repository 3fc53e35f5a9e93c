// Package bet binds a read-only client to a deployed Bet contract.
package bet

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/smartcontractkit/bet-contract-client/chain/evm"
	"github.com/smartcontractkit/bet-contract-client/config"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

const (
	// DefaultTestnet is the network label used when none is configured.
	DefaultTestnet = config.DefaultNetwork
	// AddQuestionMethod is the contract method invoked by CreateQuestion.
	AddQuestionMethod = "addQuestion"
)

// CreateQuestionResult is the labeled record returned by CreateQuestion.
type CreateQuestionResult struct {
	// NewQuestion holds the raw decoded result of the call: the single output value, or the
	// full output list when the method declares several outputs.
	NewQuestion any `json:"newQuestion"`
}

// ClientConfig holds the configuration to construct a Client.
type ClientConfig struct {
	// Required: the connection selected by the provider package.
	Backend evm.OnchainClient
	// Required: the contract interface description. It is used as given and never modified.
	ABI abi.ABI
	// Required: the deployed contract address.
	ContractAddress common.Address
	// Optional: the network label. Defaults to DefaultTestnet.
	Network string
	// Optional: the account used as the "from" of calls, so the contract sees it as
	// msg.sender. Defaults to the zero address, which matches a call made without a sender.
	Account common.Address
	// Optional: whether Close releases the backend connection. Leave it false when the
	// backend is owned by someone else, such as a client supplied by the host.
	CloseBackend bool
	// Optional: defaults to a no-op logger.
	Logger logger.Logger
}

// validate checks if the ClientConfig is valid.
func (c ClientConfig) validate() error {
	if c.Backend == nil {
		return errors.New("backend is required")
	}
	if c.ContractAddress == (common.Address{}) {
		return errors.New("contract address is required")
	}

	return nil
}

// Client is a handle bound to one deployed Bet contract. It is immutable after construction
// and safe for concurrent use.
type Client struct {
	backend  evm.OnchainClient
	contract *bind.BoundContract
	address  common.Address
	network  string
	account  common.Address
	lggr     logger.Logger

	closeBackend bool
}

// NewClient binds a Client to the contract described by cfg. No network request is made.
func NewClient(cfg ClientConfig) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if cfg.Network == "" {
		cfg.Network = DefaultTestnet
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Nop()
	}

	return &Client{
		backend:  cfg.Backend,
		contract: bind.NewBoundContract(cfg.ContractAddress, cfg.ABI, cfg.Backend, nil, nil),
		address:  cfg.ContractAddress,
		network:  cfg.Network,
		account:  cfg.Account,
		lggr:     cfg.Logger,

		closeBackend: cfg.CloseBackend,
	}, nil
}

// CreateQuestion calls the contract's addQuestion method as a read-only query against the
// latest state. Nothing is signed or broadcast. Every failure, whether from the provider, a
// missing method in the ABI or an address without code, is returned to the caller as is.
func (c *Client) CreateQuestion(ctx context.Context) (CreateQuestionResult, error) {
	c.lggr.Debugw("Calling contract", "method", AddQuestionMethod, "address", c.address.Hex())

	var out []any
	opts := &bind.CallOpts{Context: ctx, From: c.account}
	if err := c.contract.Call(opts, &out, AddQuestionMethod); err != nil {
		return CreateQuestionResult{}, err
	}

	return CreateQuestionResult{NewQuestion: callResult(out)}, nil
}

// BetContractAddress returns the contract address the client is bound to, in its EIP-55
// checksummed hex form.
func (c *Client) BetContractAddress() string {
	return c.address.Hex()
}

// ContractAddress returns the contract address the client is bound to.
func (c *Client) ContractAddress() common.Address {
	return c.address
}

// Testnet returns the network label the client was configured with.
func (c *Client) Testnet() string {
	return c.network
}

// Close releases the backend connection when the client owns it. A backend the client does
// not own is left open.
func (c *Client) Close() {
	if c.closeBackend {
		evm.Close(c.backend)
	}
}

func callResult(out []any) any {
	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return out
	}
}
