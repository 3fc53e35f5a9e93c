// Package artifact loads compiled contract artifacts as produced by Truffle
// (build/contracts/<Name>.json).
package artifact

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/Masterminds/semver/v3"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

// supportedSchemas is the range of artifact schema versions whose layout this package reads.
const supportedSchemas = ">= 2.0.0"

// Deployment is the record an artifact keeps for a network the contract was migrated to.
type Deployment struct {
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

// Artifact is a compiled contract artifact. The ABI is parsed once on load and treated as
// read-only afterwards.
type Artifact struct {
	ContractName  string
	SchemaVersion *semver.Version
	ABI           abi.ABI
	// Networks maps a decimal chain ID to the deployment recorded for it.
	Networks map[string]Deployment
}

type rawArtifact struct {
	ContractName  string                `json:"contractName"`
	ABI           json.RawMessage       `json:"abi"`
	SchemaVersion string                `json:"schemaVersion"`
	Networks      map[string]Deployment `json:"networks"`
}

// Load reads and parses the artifact at path.
func Load(path string) (*Artifact, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	a, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}

	return a, nil
}

// Parse parses an artifact from its JSON encoding.
func Parse(b []byte) (*Artifact, error) {
	var raw rawArtifact
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode artifact: %w", err)
	}

	if len(raw.ABI) == 0 || bytes.Equal(raw.ABI, []byte("null")) {
		return nil, errors.New("abi is missing")
	}

	parsed, err := abi.JSON(bytes.NewReader(raw.ABI))
	if err != nil {
		return nil, fmt.Errorf("failed to parse abi: %w", err)
	}

	a := &Artifact{
		ContractName: raw.ContractName,
		ABI:          parsed,
		Networks:     raw.Networks,
	}

	if raw.SchemaVersion != "" {
		v, err := checkSchemaVersion(raw.SchemaVersion)
		if err != nil {
			return nil, err
		}
		a.SchemaVersion = v
	}

	return a, nil
}

// DeployedAddress returns the address the artifact records for chainID.
func (a *Artifact) DeployedAddress(chainID *big.Int) (common.Address, bool) {
	if chainID == nil {
		return common.Address{}, false
	}

	d, ok := a.Networks[chainID.String()]
	if !ok || !common.IsHexAddress(d.Address) {
		return common.Address{}, false
	}

	return common.HexToAddress(d.Address), true
}

func checkSchemaVersion(s string) (*semver.Version, error) {
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid schema version %q: %w", s, err)
	}

	c, err := semver.NewConstraint(supportedSchemas)
	if err != nil {
		return nil, err
	}

	if !c.Check(v) {
		return nil, fmt.Errorf("unsupported schema version %s, want %s", v, supportedSchemas)
	}

	return v, nil
}
