package model

import (
	"fmt"
	"strings"
)

type Network string

var (
	Mainnet Network = "mainnet"
	Testnet Network = "testnet"
	Signet  Network = "signet"
)

// ExplorerURL returns the default public explorer API base for the network.
func (n Network) ExplorerURL() (string, error) {
	switch strings.ToLower(string(n)) {
	case "main", "mainnet", "bitcoin":
		return "https://blockstream.info/api", nil
	case "testnet", "testnet3":
		return "https://blockstream.info/testnet/api", nil
	case "signet":
		return "https://blockstream.info/signet/api", nil
	default:
		return "", fmt.Errorf("unsupported network %q", n)
	}
}
