package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{"PORT", "SNAPSHOT_STORE", "PRICE_ROUNDING_GRANULARITY", "DEFAULT_MARGIN_RATE", "CATALOG_CACHE_TTL", "SESSION_CACHE_SIZE", "CATALOG_TABLE"} {
			t.Setenv(k, "")
		}
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8080 || cfg.SnapshotStore != SnapshotStoreSQLite || cfg.CatalogTable != "catalog_items" {
			t.Fatalf("unexpected defaults: %+v", cfg)
		}
		if !cfg.RoundingGranularity.Equal(decimal.NewFromInt(1000)) || !cfg.DefaultMarginRate.Equal(decimal.NewFromInt(10)) {
			t.Fatalf("unexpected pricing defaults: %+v", cfg)
		}
		if cfg.CatalogCacheTTL != 0 || cfg.SessionCacheSize != 256 {
			t.Fatalf("unexpected cache defaults: %+v", cfg)
		}
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("SNAPSHOT_STORE", "MEMORY")
		t.Setenv("CATALOG_CACHE_TTL", "5m")
		t.Setenv("PRICE_ROUNDING_GRANULARITY", "500")
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9090 || cfg.SnapshotStore != SnapshotStoreMemory || cfg.CatalogCacheTTL != 5*time.Minute {
			t.Fatalf("unexpected config: %+v", cfg)
		}
		if !cfg.RoundingGranularity.Equal(decimal.NewFromInt(500)) {
			t.Fatalf("unexpected granularity: %s", cfg.RoundingGranularity)
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		cases := map[string]string{
			"PORT":                "abc",
			"SNAPSHOT_STORE":      "redis",
			"DEFAULT_MARGIN_RATE": "100",
			"SESSION_CACHE_SIZE":  "0",
			"CATALOG_CACHE_TTL":   "soon",
		}
		for k, v := range cases {
			t.Run(k, func(t *testing.T) {
				t.Setenv(k, v)
				if _, err := Load(); err == nil {
					t.Fatalf("expected error for %s=%s", k, v)
				}
			})
		}
	})
}
