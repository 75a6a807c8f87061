// Package config defines the network, chain and backend settings a
// drops SDK is constructed with.
package config

import "strings"

// Network is the bitcoin network the backend should operate on.
type Network string

// Supported networks.
const (
	Mainnet  Network = "mainnet"
	Testnet  Network = "testnet"
	Testnet4 Network = "testnet4"
	Signet   Network = "signet"
)

// Chain is the bitcoin-family chain the backend should operate on.
type Chain string

// Supported chains.
const (
	Bitcoin Chain = "bitcoin"
	Fractal Chain = "fractal"
)

// DefaultBaseURL is the hosted drops backend.
const DefaultBaseURL = "https://api.inscrib3.com"

// Config is fixed at SDK construction.
type Config struct {
	Network Network `json:"network" validate:"required,oneof=mainnet testnet testnet4 signet"`
	Chain   Chain   `json:"chain" validate:"required,oneof=bitcoin fractal"`
	BaseURL string  `json:"baseUrl" validate:"required,http_url"`
}

// Default returns mainnet, bitcoin against the hosted backend.
func Default() Config {
	return Config{
		Network: Mainnet,
		Chain:   Bitcoin,
		BaseURL: DefaultBaseURL,
	}
}

// Normalize trims surrounding whitespace and trailing slashes from BaseURL.
func (c Config) Normalize() Config {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	return c
}

// Validate checks c against its declared tags.
func (c Config) Validate() error {
	return Validate(c)
}
