package application

import (
	"time"

	"github.com/bnema/ada-wallet-cli/internal/domain"
)

type CreateWalletCommand struct {
	ID   domain.WalletID
	Name string
}

type AddTransactionCommand struct {
	WalletID domain.WalletID
	Title    string
	Type     domain.TransactionType
	State    domain.TransactionState
	// Amount is user input in major units, e.g. "1,234.56" or "12 ADA".
	Amount string
	Date   time.Time
}
