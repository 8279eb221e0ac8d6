package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "DB_DRIVER", "STRICT_CATEGORIES", "DEFAULT_TRAILING_MONTHS", "MAX_TRAILING_MONTHS", "JWT_EXPIRES_IN"} {
			t.Setenv(k, "")
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != "8080" {
			t.Errorf("expected port 8080, got %s", cfg.Port)
		}
		if cfg.DBDriver != DriverPostgres {
			t.Errorf("expected postgres driver, got %s", cfg.DBDriver)
		}
		if cfg.StrictCategories {
			t.Error("expected permissive categories by default")
		}
		if cfg.DefaultTrailingMonths != 6 {
			t.Errorf("expected default window 6, got %d", cfg.DefaultTrailingMonths)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h expiry, got %v", cfg.JWTExpirationDur)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("STRICT_CATEGORIES", "true")
		t.Setenv("DEFAULT_TRAILING_MONTHS", "12")
		t.Setenv("JWT_EXPIRES_IN", "1h")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBDriver != DriverSQLite {
			t.Errorf("expected sqlite driver, got %s", cfg.DBDriver)
		}
		if !cfg.StrictCategories {
			t.Error("expected strict categories")
		}
		if cfg.DefaultTrailingMonths != 12 {
			t.Errorf("expected window 12, got %d", cfg.DefaultTrailingMonths)
		}
		if cfg.JWTExpirationDur != time.Hour {
			t.Errorf("expected 1h expiry, got %v", cfg.JWTExpirationDur)
		}
	})

	t.Run("invalid_values_fall_back", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "mysql")
		t.Setenv("STRICT_CATEGORIES", "maybe")
		t.Setenv("DEFAULT_TRAILING_MONTHS", "0")
		t.Setenv("JWT_EXPIRES_IN", "soon")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.DBDriver != DriverPostgres {
			t.Errorf("expected postgres fallback, got %s", cfg.DBDriver)
		}
		if cfg.StrictCategories {
			t.Error("expected permissive fallback")
		}
		if cfg.DefaultTrailingMonths != 6 {
			t.Errorf("expected window fallback 6, got %d", cfg.DefaultTrailingMonths)
		}
		if cfg.JWTExpirationDur != 24*time.Hour {
			t.Errorf("expected 24h fallback, got %v", cfg.JWTExpirationDur)
		}
	})

	t.Run("default_window_clamped_to_max", func(t *testing.T) {
		t.Setenv("DEFAULT_TRAILING_MONTHS", "")
		t.Setenv("MAX_TRAILING_MONTHS", "3")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.MaxTrailingMonths != 3 {
			t.Errorf("expected max window 3, got %d", cfg.MaxTrailingMonths)
		}
		if cfg.DefaultTrailingMonths != 3 {
			t.Errorf("expected default window clamped to 3, got %d", cfg.DefaultTrailingMonths)
		}
	})
}
