package config

import (
	"errors"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "USERS_COUNT", "MONTHS_OF_HISTORY", "GOLD_RATE_PER_GRAM", "TOKEN_TTL_MINUTES"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.StoreDriver != DriverPostgres || cfg.UsersCount != 10 || cfg.MonthsOfHistory != 6 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.GoldRatePerGram.String() != "13070" || cfg.TokenTTL != time.Hour {
		t.Fatalf("unexpected defaults: gold=%s ttl=%s", cfg.GoldRatePerGram, cfg.TokenTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")
	t.Setenv("USERS_COUNT", "3")
	t.Setenv("GENERATOR_SEED", "42")
	t.Setenv("SILVER_RATE_PER_GRAM", "180.5")
	t.Setenv("MONTHS_OF_HISTORY", "not-a-number")
	cfg := Load()
	if cfg.StoreDriver != DriverMemory || cfg.UsersCount != 3 || cfg.GeneratorSeed != 42 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.SilverRatePerGram.String() != "180.5" {
		t.Fatalf("unexpected silver rate %s", cfg.SilverRatePerGram)
	}
	if cfg.MonthsOfHistory != 6 {
		t.Fatalf("invalid int should fall back, got %d", cfg.MonthsOfHistory)
	}
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.StoreDriver = "mongo"
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	cfg.StoreDriver = DriverMemory
	cfg.UsersCount = -1
	if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestPerMonth(t *testing.T) {
	cases := []struct {
		total, months, want int
	}{
		{0, 6, 0},
		{300, 6, 50},
		{5, 6, 1},
		{120, 0, 0},
	}
	for _, tc := range cases {
		cfg := Config{TransactionsPerAccount: tc.total, MonthsOfHistory: tc.months}
		if got := cfg.PerMonth(); got != tc.want {
			t.Errorf("PerMonth(%d, %d) = %d, want %d", tc.total, tc.months, got, tc.want)
		}
	}
}
