package serve

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/bet-contract-client/api"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/flags"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/text"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

var (
	serveShort = "Serve the Bet contract client over HTTP"

	serveLong = text.LongDesc(`
		Connects to the Bet contract once and serves it over HTTP until interrupted.

		Routes:
		  GET  /health     liveness check
		  POST /questions  read-only call of addQuestion
	`)

	serveExample = text.Examples(`
		# Serve on the address from bet.yml
		bet serve --config bet.yml

		# Serve on a different address
		bet serve --config bet.yml --listen 127.0.0.1:9000
	`)
)

// Config holds the configuration for the serve command.
type Config struct {
	// Logger is the logger to use for command output. Required.
	Logger logger.Logger

	// Deps holds optional dependencies that can be overridden.
	// If fields are nil, production defaults are used.
	Deps Deps
}

// Validate checks that all required configuration fields are set.
func (c Config) Validate() error {
	if c.Logger == nil {
		return errors.New("serve.Config: missing required fields: Logger")
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

type serveFlags struct {
	configPath string
	listen     string
}

// NewCommand creates the serve command.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   serveShort,
		Long:    serveLong,
		Example: serveExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := serveFlags{
				configPath: flags.MustString(cmd.Flags().GetString("config")),
				listen:     flags.MustString(cmd.Flags().GetString("listen")),
			}

			return runServe(cmd, cfg, f)
		},
	}

	flags.Config(cmd)
	flags.Listen(cmd)

	return cmd, nil
}

// runServe executes the serve command logic.
func runServe(cmd *cobra.Command, cfg Config, f serveFlags) error {
	ctx := cmd.Context()
	deps := cfg.deps()

	// --- Load

	betCfg, err := deps.ConfigLoader(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	listenAddr := betCfg.HTTP.ListenAddr
	if f.listen != "" {
		listenAddr = f.listen
	}

	client, err := deps.ClientLoader(ctx, betCfg, cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to connect to the Bet contract: %w", err)
	}
	defer client.Close()

	// --- Execute

	return deps.ServerRunner(ctx, api.ServerConfig{
		Creator:    client,
		ListenAddr: listenAddr,
		Logger:     cfg.Logger.Named("api"),
	})
}
