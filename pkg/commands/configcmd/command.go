// Package configcmd provides the CLI commands that manage the bet config file.
package configcmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/bet-contract-client/config"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/flags"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/text"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

var (
	initShort = "Write a config file"

	initLong = text.LongDesc(`
		Writes a YAML config file holding the defaults, overridden by any BET_* environment
		variables that are set. An existing file is only replaced with --force.
	`)

	initExample = text.Examples(`
		# Write bet.yml from the current environment
		BET_CONTRACT_ADDRESS=0x... bet config init --out bet.yml
	`)
)

// EnvLoaderFunc loads the configuration from the environment.
type EnvLoaderFunc func() (*config.Config, error)

// Config holds the configuration for config commands.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// EnvLoader is optional. Default: config.LoadEnv
	EnvLoader EnvLoaderFunc
}

// NewCommand creates a new config command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if cfg.Logger == nil {
		return nil, errors.New("configcmd.Config: missing required fields: Logger")
	}
	if cfg.EnvLoader == nil {
		cfg.EnvLoader = config.LoadEnv
	}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Config file commands",
	}

	cmd.AddCommand(newInitCmd(cfg))

	return cmd, nil
}

func newInitCmd(cfg Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "init",
		Short:   initShort,
		Long:    initLong,
		Example: initExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := flags.MustString(cmd.Flags().GetString("out"))
			force, _ := cmd.Flags().GetBool("force")

			return runInit(cmd, cfg, out, force)
		},
	}

	cmd.Flags().StringP("out", "o", "bet.yml", "Output file path")
	cmd.Flags().Bool("force", false, "Replace an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, cfg Config, out string, force bool) error {
	if _, err := os.Stat(out); !force && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%s already exists, use --force to replace it", out)
	}

	betCfg, err := cfg.EnvLoader()
	if err != nil {
		return fmt.Errorf("failed to load config from environment: %w", err)
	}

	if err := betCfg.WriteFile(out); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	cfg.Logger.Infow("Config written", "path", out)
	cmd.Printf("Config written to %s\n", out)

	return nil
}
