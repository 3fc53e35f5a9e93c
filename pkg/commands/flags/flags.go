// Package flags provides the flags shared by the bet CLI commands.
package flags

import (
	"github.com/spf13/cobra"
)

// MustString returns the string value, ignoring the error.
// Safe to use with registered flags where GetString cannot fail.
func MustString(s string, _ error) string { return s }

// Config adds the persistent --config/-c flag to a command and all of its subcommands.
// Retrieve the value with cmd.Flags().GetString("config").
//
// An empty or missing config file falls back to the BET_* environment variables.
func Config(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML config file")
}

// Listen adds the --listen flag which overrides the configured HTTP listen address.
func Listen(cmd *cobra.Command) {
	cmd.Flags().String("listen", "", "HTTP listen address, overrides http.listen_addr")
}
