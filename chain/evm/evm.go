package evm

import (
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// OnchainClient is a read-only EVM chain client.
// It is enough to perform eth_call against a deployed contract and to learn which chain the
// connection is attached to. Both ethclient.Client and the simulated backend client satisfy it.
type OnchainClient interface {
	bind.ContractCaller
	ethereum.ChainIDReader
}

// Closer is implemented by clients that hold a connection which should be released.
type Closer interface {
	Close()
}

// Close releases the connection held by client if it has one.
func Close(client OnchainClient) {
	if c, ok := client.(Closer); ok {
		c.Close()
	}
}
