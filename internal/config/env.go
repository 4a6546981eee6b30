package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Env carries the process-level switches the wallet backend is started with.
type Env struct {
	API        string `env:"API" envDefault:"ada"`
	APIVersion string `env:"API_VERSION" envDefault:"dev"`
	NodeEnv    string `env:"NODE_ENV" envDefault:"development"`
	WalletPort int    `env:"WALLET_PORT" envDefault:"8090"`
	WalletHost string `env:"WALLET_HOST" envDefault:"127.0.0.1"`
	LogLevel   string `env:"ADA_LOG_LEVEL" envDefault:"warn"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	if e.WalletPort <= 0 || e.WalletPort > 65535 {
		return Env{}, fmt.Errorf("parse env: WALLET_PORT %d out of range", e.WalletPort)
	}

	return e, nil
}

func (e Env) IsProduction() bool {
	return strings.EqualFold(e.NodeEnv, "production")
}

// NodeInfoURL is the wallet backend endpoint that answers once the node is up.
func (e Env) NodeInfoURL() string {
	return fmt.Sprintf("http://%s:%d/api/%s/node-info", e.WalletHost, e.WalletPort, e.APIVersion)
}
