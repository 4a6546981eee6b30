package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	summaryadapter "github.com/bnema/ada-wallet-cli/internal/adapters/render/summary"
	tomlrepo "github.com/bnema/ada-wallet-cli/internal/adapters/repo/toml"
	"github.com/bnema/ada-wallet-cli/internal/application"
	"github.com/bnema/ada-wallet-cli/internal/config"
	"github.com/bnema/ada-wallet-cli/internal/currency"
	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/bnema/ada-wallet-cli/internal/logging"
	"github.com/bnema/ada-wallet-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type app struct {
	settings        config.Settings
	env             config.Env
	converter       *currency.Converter
	service         *application.Service
	logger          *zap.Logger
	summaryRenderer func([]application.WalletSummary, *currency.Converter) (string, error)
	txRenderer      func(domain.Wallet, []domain.Transaction, *currency.Converter, summaryadapter.RenderOptions) (string, error)
	now             func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	settings, err := config.Load(viper.New(), homeDir)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	env, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	converter, err := currency.NewConverter(settings.Currency)
	if err != nil {
		return nil, fmt.Errorf("wire currency converter: %w", err)
	}

	a := &app{
		settings:        settings,
		env:             env,
		converter:       converter,
		summaryRenderer: summaryadapter.Render,
		txRenderer:      summaryadapter.RenderTransactions,
		now:             time.Now,
	}
	if err := a.wireService(zap.NewNop()); err != nil {
		return nil, err
	}

	return a, nil
}

// useLogger swaps in a logger writing to w once flags are parsed. --verbose
// wins over ADA_LOG_LEVEL.
func (a *app) useLogger(w io.Writer, verbose bool) error {
	level := a.env.LogLevel
	if verbose {
		level = "debug"
	}

	logger, err := logging.New(w, level, a.env.IsProduction())
	if err != nil {
		return fmt.Errorf("wire logger: %w", err)
	}

	return a.wireService(logger)
}

func (a *app) wireService(logger *zap.Logger) error {
	repo, err := tomlrepo.NewRepository(a.settings.WalletsPath, logger.Named("ledger"))
	if err != nil {
		return fmt.Errorf("wire wallet repository: %w", err)
	}

	a.logger = logger
	a.service = application.NewService(repo, a.converter, ports.SystemClock{})
	return nil
}
