package utils

import (
	"errors"
	"math/big"

	chain_selectors "github.com/smartcontractkit/chain-selectors"
)

var errNilChainID = errors.New("chain id is nil")

// ChainInfoByChainID returns the chain details of the EVM chain with the given chain ID.
// It returns an error if the chain ID is unknown to chain-selectors.
func ChainInfoByChainID(chainID *big.Int) (chain_selectors.ChainDetails, error) {
	if chainID == nil {
		return chain_selectors.ChainDetails{}, errNilChainID
	}

	return chain_selectors.GetChainDetailsByChainIDAndFamily(chainID.String(), chain_selectors.FamilyEVM)
}

// ChainName returns the human readable name of an EVM chain, or the decimal chain ID when the
// chain is not known.
func ChainName(chainID *big.Int) string {
	info, err := ChainInfoByChainID(chainID)
	if err != nil || info.ChainName == "" {
		if chainID == nil {
			return ""
		}

		return chainID.String()
	}

	return info.ChainName
}
