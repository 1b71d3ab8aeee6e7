package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultHTTPAddr     = ":8080"
	defaultDatabaseURL  = "courtbook.db"
	defaultJWTSecret    = "change-me-jwt-secret"
	defaultJWTAccessTTL = "24h"
	defaultCurrency     = "LKR"
)

type PayHereConfig struct {
	MerchantID     string
	MerchantSecret string
	Currency       string
}

func (p PayHereConfig) Configured() bool {
	return p.MerchantID != "" && p.MerchantSecret != ""
}

// Config is built once at startup and passed explicitly to everything that
// needs it. Nothing outside this package reads environment variables.
type Config struct {
	AppEnv       string
	HTTPAddr     string
	DatabaseURL  string
	JWTSecret    string
	JWTAccessTTL time.Duration
	PayHere      PayHereConfig
	AdminEmails  []string
	CORSOrigins  []string
}

// IsAdminEmail reports whether email is on the startup admin allowlist.
// Comparison is case-insensitive.
func (c *Config) IsAdminEmail(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, a := range c.AdminEmails {
		if a == email {
			return true
		}
	}
	return false
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.HTTPAddr = getEnv("HTTP_ADDR", defaultHTTPAddr)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTAccessTTL, err = parseDurationEnv("JWT_ACCESS_TTL", defaultJWTAccessTTL)
	if err != nil {
		return nil, err
	}

	cfg.PayHere = PayHereConfig{
		MerchantID:     strings.TrimSpace(os.Getenv("PAYHERE_MERCHANT_ID")),
		MerchantSecret: strings.TrimSpace(os.Getenv("PAYHERE_MERCHANT_SECRET")),
		Currency:       strings.TrimSpace(getEnv("PAYHERE_CURRENCY", defaultCurrency)),
	}

	cfg.AdminEmails = splitCSVLower(os.Getenv("ADMIN_EMAILS"))
	cfg.CORSOrigins = splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.JWTAccessTTL <= 0 {
		return fmt.Errorf("JWT_ACCESS_TTL must be > 0")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if !cfg.PayHere.Configured() {
			return fmt.Errorf("in prod/release PAYHERE_MERCHANT_ID and PAYHERE_MERCHANT_SECRET must be set")
		}
	}
	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func splitCSVLower(s string) []string {
	parts := splitCSV(s)
	for i := range parts {
		parts[i] = strings.ToLower(parts[i])
	}
	return parts
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
