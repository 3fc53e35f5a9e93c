// Package commands provides the CLI command groups of the bet binary.
//
// The Commands factory shares one logger across all groups:
//
//	cmds := commands.New(lggr)
//	questionCmd, err := cmds.Question()
//	serveCmd, err := cmds.Serve()
//	rootCmd.AddCommand(questionCmd, serveCmd)
//
// The group packages can also be used directly to inject dependencies for testing:
//
//	question.NewCommand(question.Config{
//	    Logger: lggr,
//	    Deps:   question.Deps{ClientLoader: myLoader},
//	})
package commands

import (
	"github.com/spf13/cobra"

	"github.com/smartcontractkit/bet-contract-client/pkg/commands/configcmd"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/question"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/serve"
	"github.com/smartcontractkit/bet-contract-client/pkg/logger"
)

// Commands provides a factory for creating CLI commands with shared configuration.
type Commands struct {
	lggr logger.Logger
}

// New creates a new Commands factory with the given logger.
func New(lggr logger.Logger) *Commands {
	return &Commands{lggr: lggr}
}

// Question creates the question command group.
func (c *Commands) Question() (*cobra.Command, error) {
	return question.NewCommand(question.Config{
		Logger: c.lggr,
	})
}

// Serve creates the serve command.
func (c *Commands) Serve() (*cobra.Command, error) {
	return serve.NewCommand(serve.Config{
		Logger: c.lggr,
	})
}

// Config creates the config command group.
func (c *Commands) Config() (*cobra.Command, error) {
	return configcmd.NewCommand(configcmd.Config{
		Logger: c.lggr,
	})
}

// All creates every command group in the order they are listed in the help output.
func (c *Commands) All() ([]*cobra.Command, error) {
	builders := []func() (*cobra.Command, error){c.Question, c.Serve, c.Config}

	cmds := make([]*cobra.Command, 0, len(builders))
	for _, build := range builders {
		cmd, err := build()
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}

	return cmds, nil
}
