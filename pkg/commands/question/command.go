package question

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/bet-contract-client/pkg/commands/flags"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/text"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

var (
	questionShort = "Bet contract questions"

	questionLong = text.LongDesc(`
		Commands for the questions of the Bet contract.

		The contract address and the network endpoint are read from the config file or
		from the BET_* environment variables.
	`)
)

// Config holds the configuration for question commands.
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
		return errors.New("question.Config: missing required fields: Logger")
	}

	return nil
}

// deps returns the Deps with defaults applied.
func (c *Config) deps() *Deps {
	c.Deps.applyDefaults()

	return &c.Deps
}

// NewCommand creates a new question command with all subcommands.
func NewCommand(cfg Config) (*cobra.Command, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.deps()

	cmd := &cobra.Command{
		Use:   "question",
		Short: questionShort,
		Long:  questionLong,
	}

	cmd.AddCommand(newCreateCmd(cfg))

	flags.Config(cmd)

	return cmd, nil
}
