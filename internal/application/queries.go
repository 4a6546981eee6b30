package application

import "github.com/bnema/ada-wallet-cli/internal/domain"

type WalletSummary struct {
	Wallet  domain.Wallet
	Summary domain.Summary
}
