// Package config loads the configuration of the bet contract client.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"slices"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultNetwork is the network label used when none is configured.
	DefaultNetwork = "ropsten"
	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "info"
	// DefaultListenAddr is the address the HTTP surface listens on when none is configured.
	DefaultListenAddr = ":8080"
)

// HTTPConfig is the configuration of the HTTP surface.
type HTTPConfig struct {
	ListenAddr string `mapstructure:"listen_addr" yaml:"listen_addr"` // The address to listen on, e.g. ":8080"
}

// Config wraps the entire configuration of the bet contract client.
type Config struct {
	Account         string     `mapstructure:"account" yaml:"account"`                   // The caller account used as the "from" of read calls
	Endpoint        string     `mapstructure:"endpoint" yaml:"endpoint"`                 // The remote websocket endpoint used when no injected provider is detected
	Network         string     `mapstructure:"network" yaml:"network"`                   // The target network label, e.g. "ropsten"
	ContractAddress string     `mapstructure:"contract_address" yaml:"contract_address"` // The deployed Bet contract address
	ArtifactPath    string     `mapstructure:"artifact_path" yaml:"artifact_path"`       // The path to the compiled contract artifact
	IPCPath         string     `mapstructure:"ipc_path" yaml:"ipc_path"`                 // The IPC endpoint of a node provided by the host
	LogLevel        string     `mapstructure:"log_level" yaml:"log_level"`               // The zap log level
	HTTP            HTTPConfig `mapstructure:"http" yaml:"http"`
}

// Default returns a Config holding only the default values.
func Default() *Config {
	return &Config{
		Network:  DefaultNetwork,
		LogLevel: DefaultLogLevel,
		HTTP:     HTTPConfig{ListenAddr: DefaultListenAddr},
	}
}

// Load loads the config from the file path, falling back to env vars if the file does not exist.
// If the file exists, any env vars that are set will override the values loaded from the file.
func Load(filePath string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(filePath)

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	// If the config file exists, we continue to read it, otherwise we fallback to using
	// environment variables
	if _, err := os.Stat(filePath); !errors.Is(err, fs.ErrNotExist) {
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// LoadEnv loads the config from the environment variables.
func LoadEnv() (*Config, error) {
	v := newViper()

	if err := bindEnvs(v); err != nil {
		return nil, err
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg)

	return cfg, err
}

// WriteFile writes the config as YAML to filePath.
func (c *Config) WriteFile(filePath string) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(filePath, b, 0o600)
}

// Validate checks that every required field is set and that every set field is well formed.
func (c *Config) Validate() error {
	if c.ContractAddress == "" {
		return errors.New("contract_address is required")
	}
	if !common.IsHexAddress(c.ContractAddress) {
		return fmt.Errorf("contract_address %q is not a hex address", c.ContractAddress)
	}
	if c.ContractAddr() == (common.Address{}) {
		return errors.New("contract_address must not be the zero address")
	}

	if c.ArtifactPath == "" {
		return errors.New("artifact_path is required")
	}

	if c.Network == "" {
		return errors.New("network is required")
	}

	if c.Account != "" && !common.IsHexAddress(c.Account) {
		return fmt.Errorf("account %q is not a hex address", c.Account)
	}

	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return fmt.Errorf("endpoint is not a valid URL: %w", err)
		}
		if !slices.Contains([]string{"ws", "wss", "http", "https"}, u.Scheme) {
			return fmt.Errorf("endpoint scheme %q is not supported, use ws, wss, http or https", u.Scheme)
		}
	}

	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	}

	return nil
}

// ContractAddr returns the configured contract address.
func (c *Config) ContractAddr() common.Address {
	return common.HexToAddress(c.ContractAddress)
}

// AccountAddr returns the configured caller account, or the zero address when none is set.
func (c *Config) AccountAddr() common.Address {
	if c.Account == "" {
		return common.Address{}
	}

	return common.HexToAddress(c.Account)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("network", DefaultNetwork)
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("http.listen_addr", DefaultListenAddr)

	return v
}

var (
	// envBindings defines how environment variables map to configuration keys used by Viper.
	//
	// The first element in the list is the preferred environment variable name, and the second
	// (if present) is the legacy name used by the web app configuration.
	//
	// When loading, Viper will check each listed environment variable in order and use the first one
	// that is set.
	envBindings = map[string][]string{
		"account":          {"BET_ACCOUNT", "MY_ADDRESS"},
		"endpoint":         {"BET_ENDPOINT", "INFURA_WSS"},
		"network":          {"BET_NETWORK", "TESTNET"},
		"contract_address": {"BET_CONTRACT_ADDRESS", "BET_CONTRACT"},
		"artifact_path":    {"BET_ARTIFACT_PATH"},
		"ipc_path":         {"BET_IPC_PATH"},
		"log_level":        {"BET_LOG_LEVEL"},
		"http.listen_addr": {"BET_HTTP_LISTEN_ADDR"},
	}
)

// bindEnvs binds the environment variables to the viper instance.
func bindEnvs(v *viper.Viper) error {
	for key, envs := range envBindings {
		// Prepend the env key to the start of the arguments
		inputs := slices.Insert(envs, 0, key)

		if err := v.BindEnv(inputs...); err != nil {
			return err
		}
	}

	return nil
}
