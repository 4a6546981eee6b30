package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Wallets []walletSchema `toml:"wallets"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported wallets schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type walletSchema struct {
	ID           string              `toml:"id"`
	Name         string              `toml:"name"`
	CreatedAt    string              `toml:"created_at"`
	Transactions []transactionSchema `toml:"transactions,omitempty"`
}

// Amounts are minor units kept as decimal strings so totals beyond int64
// survive a round trip.
type transactionSchema struct {
	ID     string `toml:"id"`
	Title  string `toml:"title,omitempty"`
	Type   string `toml:"type"`
	State  string `toml:"state"`
	Amount string `toml:"amount"`
	Date   string `toml:"date"`
}
