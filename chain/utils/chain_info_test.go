package utils_test

import (
	"math/big"
	"testing"

	chainsel "github.com/smartcontractkit/chain-selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartcontractkit/bet-contract-client/chain/utils"
)

func TestChainInfoByChainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		chainID       *big.Int
		expectError   string
		wantAnyErr    bool
		validateChain func(t *testing.T, info chainsel.ChainDetails)
	}{
		{
			name:    "returns details for ethereum mainnet",
			chainID: new(big.Int).SetUint64(chainsel.ETHEREUM_MAINNET.EvmChainID),
			validateChain: func(t *testing.T, info chainsel.ChainDetails) {
				t.Helper()
				assert.Equal(t, chainsel.ETHEREUM_MAINNET.Name, info.ChainName)
				assert.Equal(t, chainsel.ETHEREUM_MAINNET.Selector, info.ChainSelector)
			},
		},
		{
			name:    "returns details for the dev chain",
			chainID: new(big.Int).SetUint64(chainsel.GETH_TESTNET.EvmChainID),
			validateChain: func(t *testing.T, info chainsel.ChainDetails) {
				t.Helper()
				assert.Equal(t, chainsel.GETH_TESTNET.Selector, info.ChainSelector)
			},
		},
		{
			name:        "nil chain id",
			expectError: "chain id is nil",
		},
		{
			name:       "unknown chain id",
			chainID:    big.NewInt(987654321987),
			wantAnyErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info, err := utils.ChainInfoByChainID(tt.chainID)

			if tt.wantAnyErr {
				assert.Error(t, err)
				return
			}
			if len(tt.expectError) > 0 {
				assert.ErrorContains(t, err, tt.expectError)
				return
			}

			require.NoError(t, err)
			if tt.validateChain != nil {
				tt.validateChain(t, info)
			}
		})
	}
}

func TestChainName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, chainsel.ETHEREUM_MAINNET.Name,
		utils.ChainName(new(big.Int).SetUint64(chainsel.ETHEREUM_MAINNET.EvmChainID)))
	assert.Equal(t, "987654321987", utils.ChainName(big.NewInt(987654321987)))
	assert.Empty(t, utils.ChainName(nil))
}
