package toml

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/bnema/ada-wallet-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

const (
	walletsFileMode = 0o600
	walletsDirMode  = 0o700
	tempFilePattern = ".wallets-*.toml.tmp"
)

type Repository struct {
	walletsPath string
	mu          *sync.RWMutex
	logger      *zap.Logger
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.WalletRepository = (*Repository)(nil)

func NewRepository(walletsPath string, logger *zap.Logger) (*Repository, error) {
	if walletsPath == "" {
		return nil, errors.New("wallets path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	walletsPath, err := normalizeWalletsPath(walletsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{walletsPath: walletsPath, mu: lockForPath(walletsPath), logger: logger}, nil
}

func (r *Repository) Path() string {
	return r.walletsPath
}

func (r *Repository) Save(ctx context.Context, wallet domain.Wallet) error {
	created := false
	err := r.mutate(ctx, func(ledger *ledgerFile) error {
		created = ledger.put(toSchema(wallet))
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Debug("wallet saved",
		zap.String("wallet", string(wallet.ID)),
		zap.Int("transactions", len(wallet.Transactions)),
		zap.Bool("created", created),
	)

	return nil
}

// Update loads the wallet, runs apply and writes it back while holding
// the write lock for the whole sequence.
func (r *Repository) Update(ctx context.Context, id domain.WalletID, apply ports.WalletMutator) (domain.Wallet, error) {
	var updated domain.Wallet
	err := r.mutate(ctx, func(ledger *ledgerFile) error {
		entry, ok := ledger.find(id)
		if !ok {
			return domain.ErrWalletNotFound
		}

		wallet, err := fromSchema(entry)
		if err != nil {
			return err
		}
		if err := apply(&wallet); err != nil {
			return err
		}
		if wallet.ID != id {
			return fmt.Errorf("update wallet %s: id cannot change to %s", id, wallet.ID)
		}

		ledger.put(toSchema(wallet))
		updated = wallet
		return nil
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	r.logger.Debug("wallet updated",
		zap.String("wallet", string(id)),
		zap.Int("transactions", len(updated.Transactions)),
	)

	return updated, nil
}

// Create builds a wallet from the current contents and stores it, failing
// with domain.ErrWalletExists if the chosen ID is taken.
func (r *Repository) Create(ctx context.Context, build ports.WalletBuilder) (domain.Wallet, error) {
	var created domain.Wallet
	err := r.mutate(ctx, func(ledger *ledgerFile) error {
		existing, err := ledger.wallets()
		if err != nil {
			return err
		}

		wallet, err := build(existing)
		if err != nil {
			return err
		}
		if _, taken := ledger.find(wallet.ID); taken {
			return fmt.Errorf("%w: %s", domain.ErrWalletExists, wallet.ID)
		}

		ledger.put(toSchema(wallet))
		created = wallet
		return nil
	})
	if err != nil {
		return domain.Wallet{}, err
	}

	r.logger.Debug("wallet created", zap.String("wallet", string(created.ID)))

	return created, nil
}

// mutate is the only write path: read, edit and replace the file under the
// exclusive lock. Nothing is written when edit fails.
func (r *Repository) mutate(ctx context.Context, edit func(*ledgerFile) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	ledger := &ledgerFile{schema: file}
	if err := edit(ledger); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(ledger.schema)
}

type ledgerFile struct {
	schema fileSchema
}

func (l *ledgerFile) find(id domain.WalletID) (walletSchema, bool) {
	for _, entry := range l.schema.Wallets {
		if entry.ID == string(id) {
			return entry, true
		}
	}
	return walletSchema{}, false
}

// put replaces the entry with the same ID or appends it, reporting whether
// it was appended.
func (l *ledgerFile) put(entry walletSchema) bool {
	for i := range l.schema.Wallets {
		if l.schema.Wallets[i].ID == entry.ID {
			l.schema.Wallets[i] = entry
			return false
		}
	}
	l.schema.Wallets = append(l.schema.Wallets, entry)
	return true
}

func (l *ledgerFile) wallets() ([]domain.Wallet, error) {
	wallets := make([]domain.Wallet, 0, len(l.schema.Wallets))
	for _, entry := range l.schema.Wallets {
		wallet, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		wallets = append(wallets, wallet)
	}
	return wallets, nil
}

func (r *Repository) GetByID(ctx context.Context, id domain.WalletID) (domain.Wallet, error) {
	ledger, err := r.snapshot(ctx)
	if err != nil {
		return domain.Wallet{}, err
	}

	entry, ok := ledger.find(id)
	if !ok {
		return domain.Wallet{}, domain.ErrWalletNotFound
	}

	return fromSchema(entry)
}

func (r *Repository) List(ctx context.Context) ([]domain.Wallet, error) {
	ledger, err := r.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	return ledger.wallets()
}

func (r *Repository) snapshot(ctx context.Context) (*ledgerFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	return &ledgerFile{schema: file}, nil
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.walletsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			r.logger.Debug("wallets file not found, starting empty", zap.String("path", r.walletsPath))
			return fileSchema{Version: currentSchemaVersion}, nil
		}
		return fileSchema{}, fmt.Errorf("read wallets file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode wallets file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeWalletsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve wallets path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.walletsPath), walletsDirMode); err != nil {
		return fmt.Errorf("create wallets directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode wallets file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.walletsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp wallets file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp wallets file: %w", err)
	}

	if err := tempFile.Chmod(walletsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp wallets file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp wallets file: %w", err)
	}

	if err := os.Rename(tempName, r.walletsPath); err != nil {
		return fmt.Errorf("replace wallets file: %w", err)
	}

	cleanup = false

	return nil
}

func toSchema(wallet domain.Wallet) walletSchema {
	txs := make([]transactionSchema, 0, len(wallet.Transactions))
	for _, tx := range wallet.Transactions {
		amount := "0"
		if tx.Amount != nil {
			amount = tx.Amount.String()
		}
		txs = append(txs, transactionSchema{
			ID:     tx.ID,
			Title:  tx.Title,
			Type:   string(tx.Type),
			State:  string(tx.State),
			Amount: amount,
			Date:   formatTime(tx.Date),
		})
	}

	return walletSchema{
		ID:           string(wallet.ID),
		Name:         wallet.Name,
		CreatedAt:    formatTime(wallet.CreatedAt),
		Transactions: txs,
	}
}

func fromSchema(entry walletSchema) (domain.Wallet, error) {
	wallet := domain.Wallet{
		ID:        domain.WalletID(entry.ID),
		Name:      entry.Name,
		CreatedAt: parseTime(entry.CreatedAt),
	}

	if len(entry.Transactions) > 0 {
		wallet.Transactions = make([]domain.Transaction, 0, len(entry.Transactions))
	}
	for _, tx := range entry.Transactions {
		amount, ok := new(big.Int).SetString(tx.Amount, 10)
		if !ok {
			return domain.Wallet{}, fmt.Errorf("decode wallet %s transaction %s: %w: %q", entry.ID, tx.ID, domain.ErrMalformedAmount, tx.Amount)
		}
		wallet.Transactions = append(wallet.Transactions, domain.Transaction{
			ID:     tx.ID,
			Title:  tx.Title,
			Type:   domain.TransactionType(tx.Type),
			State:  domain.TransactionState(tx.State),
			Amount: amount,
			Date:   parseTime(tx.Date),
		})
	}

	return wallet, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
