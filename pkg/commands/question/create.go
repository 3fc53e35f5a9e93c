package question

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/smartcontractkit/bet-contract-client/pkg/commands/flags"
	"github.com/smartcontractkit/bet-contract-client/pkg/commands/text"
)

var (
	createShort = "Call addQuestion and print the result"

	createLong = text.LongDesc(`
		Performs a read-only call of addQuestion on the Bet contract and prints the
		result as JSON. No transaction is sent.
	`)

	createExample = text.Examples(`
		# Call addQuestion with the settings from bet.yml
		bet question create --config bet.yml

		# Call addQuestion with the settings from the environment
		BET_CONTRACT_ADDRESS=0x... BET_ENDPOINT=wss://... bet question create
	`)
)

type createFlags struct {
	configPath string
}

// newCreateCmd creates the "create" subcommand.
func newCreateCmd(cfg Config) *cobra.Command {
	return &cobra.Command{
		Use:     "create",
		Short:   createShort,
		Long:    createLong,
		Example: createExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f := createFlags{
				configPath: flags.MustString(cmd.Flags().GetString("config")),
			}

			return runCreate(cmd, cfg, f)
		},
	}
}

// runCreate executes the create command logic.
func runCreate(cmd *cobra.Command, cfg Config, f createFlags) error {
	ctx := cmd.Context()
	deps := cfg.deps()

	// --- Load

	betCfg, err := deps.ConfigLoader(f.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	client, err := deps.ClientLoader(ctx, betCfg, cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to connect to the Bet contract: %w", err)
	}
	defer client.Close()

	// --- Execute

	res, err := client.CreateQuestion(ctx)
	if err != nil {
		return fmt.Errorf("createQuestion call failed: %w", err)
	}

	// --- Output

	b, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))

	return nil
}
