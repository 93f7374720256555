package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config is read from the environment. A .env file in the working directory
// is loaded first by cmd/api (godotenv autoload).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - LOG_LEVEL (default: info)
//   - AWS_REGION, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY, DYNAMODB_ENDPOINT
//   - CATALOG_TABLE (default: catalog_items), QUOTES_TABLE (default: quotes)
//   - SNAPSHOT_STORE: sqlite | memory (default: sqlite)
//   - SNAPSHOT_SQLITE_PATH (default: data/snapshots.db)
//   - PRICE_ROUNDING_GRANULARITY (default: 1000)
//   - DEFAULT_MARGIN_RATE (default: 10)
//   - CATALOG_CACHE_TTL, a Go duration; 0 keeps the catalog for the process lifetime
//   - SESSION_CACHE_SIZE (default: 256)
type Config struct {
	Port     int
	LogLevel string

	AWSRegion       string
	AWSAccessKeyID  string
	AWSSecretKey    string
	DynamoEndpoint  string
	CatalogTable    string
	QuotesTable     string
	SnapshotStore   string
	SnapshotDBPath  string
	CatalogCacheTTL time.Duration

	RoundingGranularity decimal.Decimal
	DefaultMarginRate   decimal.Decimal
	SessionCacheSize    int
}

const (
	SnapshotStoreSQLite = "sqlite"
	SnapshotStoreMemory = "memory"
)

func Load() (Config, error) {
	cfg := Config{
		LogLevel:       getenvDefault("LOG_LEVEL", "info"),
		AWSRegion:      getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID: getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretKey:   getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoEndpoint: os.Getenv("DYNAMODB_ENDPOINT"),
		CatalogTable:   getenvDefault("CATALOG_TABLE", "catalog_items"),
		QuotesTable:    getenvDefault("QUOTES_TABLE", "quotes"),
		SnapshotStore:  strings.ToLower(getenvDefault("SNAPSHOT_STORE", SnapshotStoreSQLite)),
		SnapshotDBPath: getenvDefault("SNAPSHOT_SQLITE_PATH", "data/snapshots.db"),
	}

	var err error
	if cfg.Port, err = strconv.Atoi(getenvDefault("PORT", "8080")); err != nil {
		return Config{}, fmt.Errorf("PORT: %w", err)
	}
	if cfg.SessionCacheSize, err = strconv.Atoi(getenvDefault("SESSION_CACHE_SIZE", "256")); err != nil {
		return Config{}, fmt.Errorf("SESSION_CACHE_SIZE: %w", err)
	}
	if cfg.SessionCacheSize <= 0 {
		return Config{}, fmt.Errorf("SESSION_CACHE_SIZE must be positive")
	}
	if cfg.CatalogCacheTTL, err = time.ParseDuration(getenvDefault("CATALOG_CACHE_TTL", "0s")); err != nil {
		return Config{}, fmt.Errorf("CATALOG_CACHE_TTL: %w", err)
	}
	if cfg.RoundingGranularity, err = decimal.NewFromString(getenvDefault("PRICE_ROUNDING_GRANULARITY", "1000")); err != nil {
		return Config{}, fmt.Errorf("PRICE_ROUNDING_GRANULARITY: %w", err)
	}
	if cfg.DefaultMarginRate, err = decimal.NewFromString(getenvDefault("DEFAULT_MARGIN_RATE", "10")); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_MARGIN_RATE: %w", err)
	}
	if cfg.DefaultMarginRate.IsNegative() || cfg.DefaultMarginRate.GreaterThanOrEqual(decimal.NewFromInt(100)) {
		return Config{}, fmt.Errorf("DEFAULT_MARGIN_RATE must be in [0, 100)")
	}
	switch cfg.SnapshotStore {
	case SnapshotStoreSQLite, SnapshotStoreMemory:
	default:
		return Config{}, fmt.Errorf("SNAPSHOT_STORE: unknown store %q", cfg.SnapshotStore)
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
