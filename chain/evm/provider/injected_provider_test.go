package provider

import (
	"math/big"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chainIDService answers eth_chainId over a go-ethereum rpc server.
type chainIDService struct {
	chainID *big.Int
}

func (s *chainIDService) ChainId() *hexutil.Big { //nolint:revive,stylecheck // rpc method name
	return (*hexutil.Big)(s.chainID)
}

// startIPCNode serves eth_chainId on a unix socket inside a temporary directory and returns
// the socket path.
func startIPCNode(t *testing.T, chainID *big.Int) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "ipc")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	path := filepath.Join(dir, "n.ipc")

	srv := rpc.NewServer()
	require.NoError(t, srv.RegisterName("eth", &chainIDService{chainID: chainID}))

	l, err := net.Listen("unix", path)
	require.NoError(t, err)

	go func() { _ = srv.ServeListener(l) }()
	t.Cleanup(func() {
		srv.Stop()
		_ = l.Close()
	})

	return path
}

func Test_InjectedProvider_Detect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		giveConfig  func(t *testing.T) InjectedProviderConfig
		wantFound   bool
		wantChainID string
	}{
		{
			name: "host supplied client",
			giveConfig: func(t *testing.T) InjectedProviderConfig {
				t.Helper()
				return InjectedProviderConfig{Client: NewSimClient(t, nil)}
			},
			wantFound:   true,
			wantChainID: "1337",
		},
		{
			name: "ipc endpoint",
			giveConfig: func(t *testing.T) InjectedProviderConfig {
				t.Helper()
				return InjectedProviderConfig{IPCPath: startIPCNode(t, big.NewInt(3))}
			},
			wantFound:   true,
			wantChainID: "3",
		},
		{
			name: "nothing supplied",
			giveConfig: func(t *testing.T) InjectedProviderConfig {
				t.Helper()
				return InjectedProviderConfig{}
			},
		},
		{
			name: "ipc endpoint missing",
			giveConfig: func(t *testing.T) InjectedProviderConfig {
				t.Helper()
				return InjectedProviderConfig{IPCPath: filepath.Join(t.TempDir(), "geth.ipc")}
			},
		},
		{
			name: "ipc path is not a socket",
			giveConfig: func(t *testing.T) InjectedProviderConfig {
				t.Helper()
				path := filepath.Join(t.TempDir(), "geth.ipc")
				require.NoError(t, os.WriteFile(path, []byte("not a socket"), 0o600))

				return InjectedProviderConfig{IPCPath: path}
			},
		},
		{
			name: "client failing the probe",
			giveConfig: func(t *testing.T) InjectedProviderConfig {
				t.Helper()
				return InjectedProviderConfig{Client: brokenClient{}}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := NewInjectedProvider(tt.giveConfig(t))

			found := p.Detect(t.Context())
			assert.Equal(t, tt.wantFound, found)

			client, err := p.Initialize(t.Context())
			if !tt.wantFound {
				require.Error(t, err)
				assert.Nil(t, client)
				assert.Nil(t, p.ChainID())

				return
			}

			require.NoError(t, err)
			require.NotNil(t, client)
			assert.Equal(t, tt.wantChainID, p.ChainID().String())

			again, err := p.Initialize(t.Context())
			require.NoError(t, err)
			assert.Same(t, client, again)
		})
	}
}

func Test_InjectedProvider_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Injected Provider", NewInjectedProvider(InjectedProviderConfig{}).Name())
	assert.Equal(t, "Injected IPC Provider",
		NewInjectedProvider(InjectedProviderConfig{IPCPath: "/tmp/geth.ipc"}).Name())
}

func Test_InjectedProvider_HostSupplied(t *testing.T) {
	t.Parallel()

	assert.True(t, NewInjectedProvider(InjectedProviderConfig{Client: brokenClient{}}).HostSupplied())
	assert.False(t, NewInjectedProvider(InjectedProviderConfig{IPCPath: "/tmp/geth.ipc"}).HostSupplied())
}
