package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PAYHERE_MERCHANT_ID", "")
	t.Setenv("PAYHERE_MERCHANT_SECRET", "")
	t.Setenv("ADMIN_EMAILS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppEnv != "dev" {
		t.Errorf("AppEnv = %q, want dev", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.PayHere.Currency != "LKR" {
		t.Errorf("Currency = %q, want LKR", cfg.PayHere.Currency)
	}
	if cfg.PayHere.Configured() {
		t.Error("PayHere should be unconfigured by default")
	}
}

func TestLoad_ProdRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("PAYHERE_MERCHANT_ID", "")
	t.Setenv("PAYHERE_MERCHANT_SECRET", "")

	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "JWT_SECRET") {
		t.Fatalf("expected JWT_SECRET error, got %v", err)
	}

	t.Setenv("JWT_SECRET", "real-secret")
	if _, err := Load(); err == nil || !strings.Contains(err.Error(), "PAYHERE") {
		t.Fatalf("expected PayHere credential error, got %v", err)
	}

	t.Setenv("PAYHERE_MERCHANT_ID", "1211149")
	t.Setenv("PAYHERE_MERCHANT_SECRET", "s3cret")
	if _, err := Load(); err != nil {
		t.Fatalf("expected prod config to load, got %v", err)
	}
}

func TestIsAdminEmail(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "Admin@Example.com, ops@example.com")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.IsAdminEmail("admin@example.com") {
		t.Error("expected admin@example.com to be admin")
	}
	if !cfg.IsAdminEmail(" OPS@example.com ") {
		t.Error("expected case/space-insensitive match")
	}
	if cfg.IsAdminEmail("user@example.com") {
		t.Error("unexpected admin match")
	}
}
