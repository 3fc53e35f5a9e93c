package provider

import (
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

// SimClient is a wrapper struct around a simulated backend which implements OnchainClient but
// also exposes backend methods. Hand it to NewInjectedProvider to stand in for a host supplied
// node in tests.
type SimClient struct {
	mu sync.Mutex

	// Embed the simulated.Client to provide access to its methods and adhere to the OnchainClient interface.
	simulated.Client
	// sim is the underlying simulated backend that this client wraps.
	sim *simulated.Backend
}

// NewSimClient starts an in memory chain seeded with alloc and returns a client for it. The
// chain ID is always 1337. The backend is closed when the test is done.
func NewSimClient(t *testing.T, alloc types.GenesisAlloc) *SimClient {
	t.Helper()

	if alloc == nil {
		alloc = types.GenesisAlloc{}
	}

	sim := simulated.NewBackend(alloc)
	require.NotNil(t, sim, "simulated backend must not be nil")
	t.Cleanup(func() {
		_ = sim.Close()
	})

	sim.Commit() // Commit the genesis block

	return &SimClient{
		sim:    sim,
		Client: sim.Client(),
	}
}

// Commit mines a new block.
func (b *SimClient) Commit() common.Hash {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.sim.Commit()
}
