package provider

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

// brokenClient is an OnchainClient whose every request fails.
type brokenClient struct{}

func (brokenClient) CodeAt(context.Context, common.Address, *big.Int) ([]byte, error) {
	return nil, assert.AnError
}

func (brokenClient) CallContract(context.Context, ethereum.CallMsg, *big.Int) ([]byte, error) {
	return nil, assert.AnError
}

func (brokenClient) ChainID(context.Context) (*big.Int, error) {
	return nil, assert.AnError
}
