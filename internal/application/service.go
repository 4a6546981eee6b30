package application

import (
	"context"
	"fmt"
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/ada-wallet-cli/internal/currency"
	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/bnema/ada-wallet-cli/internal/ports"
	"github.com/google/uuid"
)

type Service struct {
	repo      ports.WalletRepository
	converter *currency.Converter
	clock     ports.Clock
	newID     func() string
}

func NewService(repo ports.WalletRepository, converter *currency.Converter, clock ports.Clock) *Service {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Service{
		repo:      repo,
		converter: converter,
		clock:     clock,
		newID:     uuid.NewString,
	}
}

func (s *Service) Converter() *currency.Converter {
	return s.converter
}

// CreateWallet stores a new empty wallet. An empty ID picks the lowest free
// positive number. The choice and the write happen under the repository
// lock, so concurrent creates never receive the same ID.
func (s *Service) CreateWallet(ctx context.Context, cmd CreateWalletCommand) (domain.Wallet, error) {
	requested := domain.WalletID(strings.TrimSpace(string(cmd.ID)))
	name := strings.TrimSpace(cmd.Name)
	createdAt := s.clock.Now().UTC()

	wallet, err := s.repo.Create(ctx, func(existing []domain.Wallet) (domain.Wallet, error) {
		id := requested
		if id == "" || id == "0" {
			id = nextAvailableWalletID(existing)
		} else if containsWallet(existing, id) {
			return domain.Wallet{}, fmt.Errorf("%w: %s", domain.ErrWalletExists, id)
		}

		walletName := name
		if walletName == "" {
			walletName = fmt.Sprintf("Wallet %s", id)
		}

		wallet := domain.Wallet{
			ID:        id,
			Name:      walletName,
			CreatedAt: createdAt,
		}
		if err := wallet.Validate(); err != nil {
			return domain.Wallet{}, fmt.Errorf("validate wallet: %w", err)
		}

		return wallet, nil
	})
	if err != nil {
		return domain.Wallet{}, fmt.Errorf("create wallet: %w", err)
	}

	return wallet, nil
}

func nextAvailableWalletID(wallets []domain.Wallet) domain.WalletID {
	used := make(map[int]struct{}, len(wallets))
	for _, wallet := range wallets {
		n, err := strconv.Atoi(string(wallet.ID))
		if err != nil || n <= 0 {
			continue
		}
		used[n] = struct{}{}
	}

	for i := 1; ; i++ {
		if _, ok := used[i]; !ok {
			return domain.WalletID(strconv.Itoa(i))
		}
	}
}

func containsWallet(wallets []domain.Wallet, id domain.WalletID) bool {
	for _, wallet := range wallets {
		if wallet.ID == id {
			return true
		}
	}
	return false
}

// AddTransaction records a transaction on an existing wallet. Outgoing
// amounts must satisfy the send limits; other amounts are rounded to the
// smallest unit. The append runs as one locked update, so concurrent adds
// are all kept.
func (s *Service) AddTransaction(ctx context.Context, cmd AddTransactionCommand) (domain.Transaction, error) {
	if !cmd.Type.Valid() {
		return domain.Transaction{}, fmt.Errorf("unsupported transaction type %q", cmd.Type)
	}
	state := cmd.State
	if state == "" {
		state = domain.TransactionOK
	}
	if !state.Valid() {
		return domain.Transaction{}, fmt.Errorf("unsupported transaction state %q", state)
	}

	amount, err := s.parseAmount(cmd.Type, cmd.Amount)
	if err != nil {
		return domain.Transaction{}, err
	}

	date := cmd.Date
	if date.IsZero() {
		date = s.clock.Now()
	}

	title := strings.TrimSpace(cmd.Title)
	if title == "" {
		title = defaultTitle(cmd.Type)
	}

	tx := domain.Transaction{
		ID:     s.newID(),
		Title:  title,
		Type:   cmd.Type,
		State:  state,
		Amount: amount,
		Date:   date.UTC(),
	}
	if err := tx.Validate(); err != nil {
		return domain.Transaction{}, fmt.Errorf("validate transaction: %w", err)
	}

	_, err = s.repo.Update(ctx, cmd.WalletID, func(wallet *domain.Wallet) error {
		wallet.Transactions = append(wallet.Transactions, tx)
		return nil
	})
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("append wallet transaction: %w", err)
	}

	return tx, nil
}

func (s *Service) parseAmount(kind domain.TransactionType, raw string) (*big.Int, error) {
	if kind == domain.TransactionExpend {
		if _, err := s.converter.ValidateSendAmount(raw); err != nil {
			return nil, fmt.Errorf("validate send amount: %w", err)
		}
	}

	amount, err := s.converter.ToMinorUnitAmount(raw)
	if err != nil {
		return nil, fmt.Errorf("parse amount: %w", err)
	}

	return amount, nil
}

func defaultTitle(kind domain.TransactionType) string {
	switch kind {
	case domain.TransactionIncome:
		return "Money in"
	case domain.TransactionExpend:
		return "Money out"
	default:
		return "Exchange"
	}
}

func (s *Service) Summary(ctx context.Context, id domain.WalletID) (WalletSummary, error) {
	wallet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return WalletSummary{}, fmt.Errorf("get wallet by id: %w", err)
	}

	return summaryFromWallet(wallet), nil
}

func (s *Service) List(ctx context.Context) ([]WalletSummary, error) {
	wallets, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}

	summaries := make([]WalletSummary, 0, len(wallets))
	for _, wallet := range wallets {
		summaries = append(summaries, summaryFromWallet(wallet))
	}

	return summaries, nil
}

// Transactions returns the wallet's transactions, newest first.
func (s *Service) Transactions(ctx context.Context, id domain.WalletID) ([]domain.Transaction, error) {
	wallet, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}

	txs := append([]domain.Transaction(nil), wallet.Transactions...)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.After(txs[j].Date)
	})

	return txs, nil
}

func summaryFromWallet(wallet domain.Wallet) WalletSummary {
	return WalletSummary{
		Wallet:  wallet,
		Summary: wallet.Summarize(),
	}
}
