package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var (
	// fileCfg is the config that is loaded from the testdata/config.yml file.
	fileCfg = &Config{
		Account:         "0x70997970C51812dc3A010C7d01b50e0d17dc79C8",
		Endpoint:        "wss://ropsten.infura.io/ws/v3/0123456789abcdef",
		Network:         "ropsten",
		ContractAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		ArtifactPath:    "./build/contracts/Bet.json",
		IPCPath:         "/var/run/geth.ipc",
		LogLevel:        "debug",
		HTTP:            HTTPConfig{ListenAddr: ":9090"},
	}

	// envCfg is the config that is loaded from the environment variables.
	envCfg = &Config{
		Account:         "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
		Endpoint:        "wss://sepolia.infura.io/ws/v3/fedcba9876543210",
		Network:         "sepolia",
		ContractAddress: "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		ArtifactPath:    "/srv/Bet.json",
		IPCPath:         "/tmp/geth.ipc",
		LogLevel:        "warn",
		HTTP:            HTTPConfig{ListenAddr: ":7070"},
	}

	envVars = map[string]string{
		"BET_ACCOUNT":          "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
		"BET_ENDPOINT":         "wss://sepolia.infura.io/ws/v3/fedcba9876543210",
		"BET_NETWORK":          "sepolia",
		"BET_CONTRACT_ADDRESS": "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"BET_ARTIFACT_PATH":    "/srv/Bet.json",
		"BET_IPC_PATH":         "/tmp/geth.ipc",
		"BET_LOG_LEVEL":        "warn",
		"BET_HTTP_LISTEN_ADDR": ":7070",
	}

	legacyEnvVars = map[string]string{
		"MY_ADDRESS":           "0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC",
		"INFURA_WSS":           "wss://sepolia.infura.io/ws/v3/fedcba9876543210",
		"TESTNET":              "sepolia",
		"BET_CONTRACT":         "0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512",
		"BET_ARTIFACT_PATH":    "/srv/Bet.json",
		"BET_IPC_PATH":         "/tmp/geth.ipc",
		"BET_LOG_LEVEL":        "warn",
		"BET_HTTP_LISTEN_ADDR": ":7070",
	}
)

func Test_Load(t *testing.T) { //nolint:paralleltest // see comment in setupEnvVars
	tests := []struct {
		name       string
		beforeFunc func(t *testing.T)
		givePath   string
		want       *Config
		wantErr    string
	}{
		{
			name:     "load from file",
			givePath: "./testdata/config.yml",
			want:     fileCfg,
		},
		{
			name:     "load from empty file applies defaults",
			givePath: "./testdata/empty.yml",
			want:     Default(),
		},
		{
			name: "override with env",
			beforeFunc: func(t *testing.T) {
				t.Helper()

				setupEnvVars(t, envVars)
			},
			givePath: "./testdata/config.yml",
			want:     envCfg,
		},
		{
			name: "fallback to env when file not found",
			beforeFunc: func(t *testing.T) {
				t.Helper()

				setupEnvVars(t, envVars)
			},
			givePath: "./testdata/invalid.yml",
			want:     envCfg,
		},
	}

	for _, tt := range tests { //nolint:paralleltest // see comment in setupEnvVars
		t.Run(tt.name, func(t *testing.T) {
			if tt.beforeFunc != nil {
				tt.beforeFunc(t)
			}

			got, err := Load(tt.givePath)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func Test_LoadEnv(t *testing.T) { //nolint:paralleltest // see comment in setupEnvVars
	setupEnvVars(t, envVars)

	got, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, envCfg, got)
}

func Test_LoadEnv_Legacy(t *testing.T) { //nolint:paralleltest // see comment in setupEnvVars
	setupEnvVars(t, legacyEnvVars)

	got, err := LoadEnv()
	require.NoError(t, err)

	assert.Equal(t, envCfg, got)
}

func Test_WriteFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, fileCfg.WriteFile(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Config
	require.NoError(t, yaml.Unmarshal(b, &got))
	assert.Equal(t, *fileCfg, got)

	want, err := os.ReadFile("./testdata/config.yml")
	require.NoError(t, err)
	assert.YAMLEq(t, string(want), string(b))
}

func Test_Validate(t *testing.T) {
	t.Parallel()

	valid := func() Config { return *fileCfg }

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name: "valid without optional fields",
			mutate: func(c *Config) {
				c.Account = ""
				c.Endpoint = ""
				c.IPCPath = ""
				c.LogLevel = ""
			},
		},
		{
			name:    "placeholder contract address",
			mutate:  func(c *Config) { c.ContractAddress = "" },
			wantErr: "contract_address is required",
		},
		{
			name:    "malformed contract address",
			mutate:  func(c *Config) { c.ContractAddress = "0x1234" },
			wantErr: `contract_address "0x1234" is not a hex address`,
		},
		{
			name:    "zero contract address",
			mutate:  func(c *Config) { c.ContractAddress = common.Address{}.Hex() },
			wantErr: "contract_address must not be the zero address",
		},
		{
			name:    "missing artifact",
			mutate:  func(c *Config) { c.ArtifactPath = "" },
			wantErr: "artifact_path is required",
		},
		{
			name:    "missing network",
			mutate:  func(c *Config) { c.Network = "" },
			wantErr: "network is required",
		},
		{
			name:    "malformed account",
			mutate:  func(c *Config) { c.Account = "me" },
			wantErr: `account "me" is not a hex address`,
		},
		{
			name:    "malformed endpoint",
			mutate:  func(c *Config) { c.Endpoint = "wss://[::1" },
			wantErr: "endpoint is not a valid URL",
		},
		{
			name:    "unsupported endpoint scheme",
			mutate:  func(c *Config) { c.Endpoint = "ipc:///tmp/geth.ipc" },
			wantErr: `endpoint scheme "ipc" is not supported`,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "chatty" },
			wantErr: "log_level",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_Addresses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, common.HexToAddress(fileCfg.ContractAddress), fileCfg.ContractAddr())
	assert.Equal(t, common.HexToAddress(fileCfg.Account), fileCfg.AccountAddr())
	assert.Equal(t, common.Address{}, (&Config{}).AccountAddr())
}

// setupEnvVars sets up the environment variables for the test.
//
// CAUTION: Because this function uses t.Setenv which affects the entire process, tests which call
// this function cannot be run in parallel.
func setupEnvVars(t *testing.T, envVars map[string]string) {
	t.Helper()

	for key, value := range envVars {
		t.Setenv(key, value)
	}
}
