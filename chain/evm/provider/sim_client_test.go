package provider

import (
	"testing"

	"github.com/ethereum/go-ethereum/params"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSimClient(t *testing.T) {
	t.Parallel()

	client := NewSimClient(t, nil)

	chainID, err := client.ChainID(t.Context())
	require.NoError(t, err)
	assert.Equal(t, params.AllDevChainProtocolChanges.ChainID.String(), chainID.String())

	before, err := client.BlockNumber(t.Context())
	require.NoError(t, err)
	client.Commit()
	after, err := client.BlockNumber(t.Context())
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
}
