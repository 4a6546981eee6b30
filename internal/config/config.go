package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/ada-wallet-cli/internal/domain"
	"github.com/bnema/ada-wallet-cli/internal/poll"
	"github.com/spf13/viper"
)

const (
	configName  = "config"
	configType  = "toml"
	configDir   = ".ada"
	walletsFile = "wallets.toml"
	envPrefix   = "ADA"

	keyCurrencyCode     = "currency.code"
	keyCurrencyLabel    = "currency.label"
	keyDecimalPlaces    = "currency.decimal_places"
	keyUnitsPerMajor    = "currency.units_per_major"
	keyMaxIntegerDigits = "currency.max_integer_digits"
	keyLocale           = "currency.locale"
	keyWaitTimeout      = "wait.timeout"
	keyWaitInterval     = "wait.retry_interval"
	KeyWalletsPath      = "wallets.path"
)

type Settings struct {
	Currency    domain.Currency
	Wait        poll.Config
	WalletsPath string
}

// Load reads ~/.ada/config.toml when present and layers ADA_* environment
// overrides on top of the defaults. A missing config file is not an error.
func Load(cfg *viper.Viper, homeDir string) (Settings, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	dir := filepath.Join(homeDir, configDir)
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(dir)
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	currency := domain.DefaultCurrency()
	cfg.SetDefault(keyCurrencyCode, currency.Code)
	cfg.SetDefault(keyCurrencyLabel, currency.Label)
	cfg.SetDefault(keyDecimalPlaces, currency.DecimalPlaces)
	cfg.SetDefault(keyUnitsPerMajor, currency.UnitsPerMajor)
	cfg.SetDefault(keyMaxIntegerDigits, currency.MaxIntegerDigits)
	cfg.SetDefault(keyLocale, currency.Locale)
	cfg.SetDefault(keyWaitTimeout, poll.DefaultTimeout.String())
	cfg.SetDefault(keyWaitInterval, poll.DefaultRetryInterval.String())
	cfg.SetDefault(KeyWalletsPath, filepath.Join(dir, walletsFile))

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	settings := Settings{
		Currency: domain.Currency{
			Code:             cfg.GetString(keyCurrencyCode),
			Label:            cfg.GetString(keyCurrencyLabel),
			DecimalPlaces:    cfg.GetInt(keyDecimalPlaces),
			UnitsPerMajor:    cfg.GetInt64(keyUnitsPerMajor),
			MaxIntegerDigits: cfg.GetInt(keyMaxIntegerDigits),
			Locale:           cfg.GetString(keyLocale),
		},
		Wait: poll.Config{
			Timeout:       cfg.GetDuration(keyWaitTimeout),
			RetryInterval: cfg.GetDuration(keyWaitInterval),
		},
		WalletsPath: cfg.GetString(KeyWalletsPath),
	}

	if err := settings.Currency.Validate(); err != nil {
		return Settings{}, err
	}
	if settings.Wait.Timeout < 0 || settings.Wait.RetryInterval < 0 {
		return Settings{}, fmt.Errorf("wait durations must not be negative (timeout %s, retry interval %s)", settings.Wait.Timeout, settings.Wait.RetryInterval)
	}
	if settings.WalletsPath == "" {
		return Settings{}, errors.New("wallets path is empty")
	}

	return settings, nil
}

// DurationOrDefault is used by flags where zero means "use the config value".
func DurationOrDefault(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}
