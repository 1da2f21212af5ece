// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"peertrade/internal/gateway"
	"peertrade/pkg/db"
)

// AppConfig holds all application-wide configurations.
type AppConfig struct {
	Env        string
	ServerPort string
	JWTSecret  string

	// DefaultCurrencies is the wallet set seeded for brand-new users.
	DefaultCurrencies []string

	DB db.Config

	OpenBanking   gateway.OpenBankingConfig
	CardProcessor gateway.CardProcessorConfig
	AssetLedger   gateway.AssetLedgerConfig
	AccountLink   gateway.AccountLinkConfig
}

// LoadConfig loads configuration from the environment, reading a local .env
// file first when one exists. It returns an error if a required variable is
// missing or invalid.
func LoadConfig() (*AppConfig, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	dbPort, err := strconv.Atoi(envOr("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return &AppConfig{
		Env:               envOr("APP_ENV", "development"),
		ServerPort:        envOr("SERVER_PORT", "8080"),
		JWTSecret:         jwtSecret,
		DefaultCurrencies: splitList(envOr("WALLET_DEFAULT_CURRENCIES", "GBP,NGN")),
		DB: db.Config{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     envOr("DB_USER", "user"),
			Password: envOr("DB_PASSWORD", "password"),
			DBName:   envOr("DB_NAME", "peertrade"),
			SSLMode:  envOr("DB_SSLMODE", "disable"),
		},
		OpenBanking: gateway.OpenBankingConfig{
			AuthURL:      envOr("OPEN_BANKING_AUTH_URL", "https://auth.truelayer-sandbox.com"),
			BaseURL:      envOr("OPEN_BANKING_BASE_URL", "https://api.truelayer-sandbox.com"),
			ClientID:     os.Getenv("OPEN_BANKING_CLIENT_ID"),
			ClientSecret: os.Getenv("OPEN_BANKING_CLIENT_SECRET"),
			Timeout:      envDuration("OPEN_BANKING_TIMEOUT", 30*time.Second),
		},
		CardProcessor: gateway.CardProcessorConfig{
			BaseURL:   envOr("CARD_PROCESSOR_BASE_URL", "https://api.paystack.co"),
			SecretKey: os.Getenv("CARD_PROCESSOR_SECRET_KEY"),
			Timeout:   envDuration("CARD_PROCESSOR_TIMEOUT", 30*time.Second),
		},
		AssetLedger: gateway.AssetLedgerConfig{
			BridgeURL: envOr("ASSET_LEDGER_BRIDGE_URL", "http://localhost:8006"),
			Timeout:   envDuration("ASSET_LEDGER_TIMEOUT", 30*time.Second),
		},
		AccountLink: gateway.AccountLinkConfig{
			BaseURL:   envOr("ACCOUNT_LINK_BASE_URL", "https://api.withmono.com"),
			SecretKey: os.Getenv("ACCOUNT_LINK_SECRET_KEY"),
			Timeout:   envDuration("ACCOUNT_LINK_TIMEOUT", 30*time.Second),
		},
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToUpper(p))
		}
	}
	return out
}
