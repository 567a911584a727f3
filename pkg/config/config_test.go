package config

import (
	"testing"

	"github.com/shopspring/decimal"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("FRESHMART_APP_ENV", "dev")
	t.Setenv("FRESHMART_APP_PORT", "8080")
	t.Setenv("FRESHMART_REDIS_URL", "redis://localhost:6379/0")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !cfg.App.IsDev() {
		t.Fatal("expected dev environment")
	}
	if cfg.Storefront.OfferLimit != 6 {
		t.Fatalf("unexpected offer limit %d", cfg.Storefront.OfferLimit)
	}
	if cfg.Storefront.SuggestionLimit != 6 {
		t.Fatalf("unexpected suggestion limit %d", cfg.Storefront.SuggestionLimit)
	}
	if !cfg.Storefront.DeliveryFeeAmount().Equal(decimal.RequireFromString("30.00")) {
		t.Fatalf("unexpected delivery fee %s", cfg.Storefront.DeliveryFeeAmount())
	}
	if cfg.Demo.Email == "" || cfg.Demo.Password == "" {
		t.Fatal("demo account defaults missing")
	}
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("FRESHMART_APP_ENV", "")
	t.Setenv("FRESHMART_APP_PORT", "")
	t.Setenv("FRESHMART_REDIS_URL", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing required vars")
	}
}

func TestLoadRejectsBadFee(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FRESHMART_DELIVERY_FEE", "not-a-number")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed fee")
	}
}

func TestLoadRejectsNegativeFee(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FRESHMART_DELIVERY_FEE", "-1")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for negative fee")
	}
}
