// Command bet calls the Bet contract from the command line or serves it over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/bet-contract-client/config"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	lggr, err := newLogger()
	if err != nil {
		return err
	}
	defer func() { _ = lggr.Sync() }()

	root := &cobra.Command{
		Use:           "bet",
		Short:         "Bet contract client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmds, err := commands.New(lggr).All()
	if err != nil {
		return err
	}
	root.AddCommand(cmds...)

	return root.ExecuteContext(ctx)
}

// newLogger builds the logger at the level from BET_LOG_LEVEL, defaulting to info.
func newLogger() (logger.Logger, error) {
	cfg, err := config.LoadEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config from environment: %w", err)
	}

	return logger.NewWithLevel(cfg.LogLevel)
}
