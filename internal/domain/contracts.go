package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ContractIdentity is the symbolic name of a contract type, e.g. "Token" or "BasicGNFT".
type ContractIdentity string

func (c ContractIdentity) String() string { return string(c) }

// NetworkID distinguishes one chain from another (the EIP-155 chain id).
type NetworkID uint64

// Key returns the decimal form used as a key in address registry files.
func (n NetworkID) Key() string {
	return strconv.FormatUint(uint64(n), 10)
}

func (n NetworkID) String() string { return n.Key() }

// ParseNetworkKey parses a registry key. Only the canonical decimal form is accepted
// so that every network has exactly one key.
func ParseNetworkKey(key string) (NetworkID, error) {
	v, err := strconv.ParseUint(key, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid network identifier %q", key)
	}
	id := NetworkID(v)
	if id.Key() != key {
		return 0, fmt.Errorf("network identifier %q is not in canonical decimal form", key)
	}
	return id, nil
}

// ContractAddress pairs a contract identity with the address of one of its instances.
type ContractAddress struct {
	Identity ContractIdentity `json:"contract" yaml:"contract"`
	Address  string           `json:"address" yaml:"address"`
}

// PairContracts zips positionally aligned identities and addresses.
func PairContracts(identities []ContractIdentity, addresses []string) ([]ContractAddress, error) {
	if len(identities) != len(addresses) {
		return nil, ConfigurationError("pair contracts", MisalignedInputErr{
			Identities: len(identities),
			Addresses:  len(addresses),
		})
	}

	pairs := make([]ContractAddress, len(identities))
	for i := range identities {
		pairs[i] = ContractAddress{Identity: identities[i], Address: addresses[i]}
	}
	return pairs, nil
}

// InterfaceDescription is the JSON array describing a contract's functions, events and errors.
type InterfaceDescription []byte

// NewInterfaceDescription compacts raw and checks that it is a JSON array.
func NewInterfaceDescription(raw []byte) (InterfaceDescription, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("interface description must be a JSON array")
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, fmt.Errorf("invalid interface description: %w", err)
	}
	return InterfaceDescription(buf.Bytes()), nil
}

func (d InterfaceDescription) String() string { return string(d) }

// ContractHandle is what the deployment collaborator returns for a resolved instance.
type ContractHandle struct {
	Identity  ContractIdentity
	Address   string
	Interface InterfaceDescription
}

// ArtifactPaths are the two frontend files owned by one contract identity.
type ArtifactPaths struct {
	Interface string `json:"interface" yaml:"interface"`
	Registry  string `json:"registry" yaml:"registry"`
}
