package domain

import (
	"fmt"
	"strings"
	"time"
)

type WalletID string

type Wallet struct {
	ID           WalletID
	Name         string
	CreatedAt    time.Time
	Transactions []Transaction
}

func (w Wallet) Validate() error {
	if strings.TrimSpace(string(w.ID)) == "" {
		return fmt.Errorf("id is required")
	}
	if strings.TrimSpace(w.Name) == "" {
		return fmt.Errorf("name is required")
	}

	for _, tx := range w.Transactions {
		if err := tx.Validate(); err != nil {
			return fmt.Errorf("transaction %s: %w", tx.ID, err)
		}
	}

	return nil
}
