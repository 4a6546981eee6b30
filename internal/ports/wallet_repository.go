package ports

import (
	"context"

	"github.com/bnema/ada-wallet-cli/internal/domain"
)

// WalletMutator edits a stored wallet in place. Returning an error discards
// the edit.
type WalletMutator func(wallet *domain.Wallet) error

// WalletBuilder derives a new wallet from the wallets already stored.
type WalletBuilder func(existing []domain.Wallet) (domain.Wallet, error)

// WalletRepository persists wallets. Update and Create run their callback
// and the write under one exclusive lock, so concurrent callers never
// overwrite each other.
type WalletRepository interface {
	GetByID(ctx context.Context, id domain.WalletID) (domain.Wallet, error)
	List(ctx context.Context) ([]domain.Wallet, error)
	Save(ctx context.Context, wallet domain.Wallet) error
	Update(ctx context.Context, id domain.WalletID, mutate WalletMutator) (domain.Wallet, error)
	Create(ctx context.Context, build WalletBuilder) (domain.Wallet, error)
}
