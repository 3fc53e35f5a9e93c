package flags

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Parallel()

	parent := &cobra.Command{Use: "parent"}
	Config(parent)

	var got string
	child := &cobra.Command{
		Use: "child",
		RunE: func(cmd *cobra.Command, _ []string) error {
			got = MustString(cmd.Flags().GetString("config"))
			return nil
		},
	}
	parent.AddCommand(child)

	f := parent.PersistentFlags().Lookup("config")
	require.NotNil(t, f)
	assert.Equal(t, "c", f.Shorthand)
	assert.Empty(t, f.DefValue)

	parent.SetArgs([]string{"child", "-c", "bet.yml"})
	require.NoError(t, parent.Execute())
	assert.Equal(t, "bet.yml", got)
}

func TestListen(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "serve"}
	Listen(cmd)

	f := cmd.Flags().Lookup("listen")
	require.NotNil(t, f)
	assert.Empty(t, f.DefValue)
}
