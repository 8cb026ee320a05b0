package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Store drivers accepted by STORE_DRIVER.
const (
	StoreDriverPostgres = "postgres"
	StoreDriverRedis    = "redis"
)

// Config holds application configuration.
type Config struct {
	Port          string
	IsProduction  bool
	LogLevel      string
	EnableDBCheck bool

	// Record store
	StoreDriver    string
	DatabaseURL    string
	MigrationsPath string
	RedisURL       string
	RedisKeyPrefix string

	// Department catalog: "static" or "store"
	CatalogSource     string
	CatalogRetryAfter time.Duration

	// HTTP surface
	RateLimit          string // ulule formatted rate, e.g. "300-M"
	CORSAllowedOrigins []string
	MaxUploadBytes     int64
	DraftTTL           time.Duration
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("REDIS_URL", "redis://localhost:6379/0")
	v.SetDefault("REDIS_KEY_PREFIX", "edir")
	v.SetDefault("CATALOG_SOURCE", "static")
	v.SetDefault("CATALOG_RETRY_AFTER", "30s")
	v.SetDefault("RATE_LIMIT", "300-M")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_UPLOAD_BYTES", 5<<20)
	v.SetDefault("DRAFT_TTL", "30m")

	// Environment variables override defaults; .env values were already exported by godotenv.
	v.AutomaticEnv()

	cfg := &Config{
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		LogLevel:       strings.ToLower(v.GetString("LOG_LEVEL")),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		StoreDriver:    strings.ToLower(v.GetString("STORE_DRIVER")),
		DatabaseURL:    v.GetString("PGSQL_URL"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
		RedisURL:       v.GetString("REDIS_URL"),
		RedisKeyPrefix: v.GetString("REDIS_KEY_PREFIX"),
		CatalogSource:  strings.ToLower(v.GetString("CATALOG_SOURCE")),
		RateLimit:      v.GetString("RATE_LIMIT"),
		MaxUploadBytes: v.GetInt64("MAX_UPLOAD_BYTES"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StoreDriver {
	case StoreDriverPostgres:
		if cfg.DatabaseURL == "" {
			log.Println("Warning: PGSQL_URL environment variable not set.")
		}
	case StoreDriverRedis:
	default:
		log.Printf("Warning: Unknown STORE_DRIVER ('%s'). Defaulting to %s.\n", cfg.StoreDriver, StoreDriverPostgres)
		cfg.StoreDriver = StoreDriverPostgres
	}

	draftTTLStr := v.GetString("DRAFT_TTL")
	draftTTL, err := time.ParseDuration(draftTTLStr)
	if err != nil || draftTTL <= 0 {
		draftTTL = 30 * time.Minute
		log.Printf("Warning: Invalid value for DRAFT_TTL ('%s'). Defaulting to %s.\n", draftTTLStr, draftTTL.String())
	}
	cfg.DraftTTL = draftTTL

	retryStr := v.GetString("CATALOG_RETRY_AFTER")
	retryAfter, err := time.ParseDuration(retryStr)
	if err != nil || retryAfter <= 0 {
		retryAfter = 30 * time.Second
		log.Printf("Warning: Invalid value for CATALOG_RETRY_AFTER ('%s'). Defaulting to %s.\n", retryStr, retryAfter.String())
	}
	cfg.CatalogRetryAfter = retryAfter

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 5 << 20
		log.Printf("Warning: Invalid MAX_UPLOAD_BYTES. Defaulting to %d.\n", cfg.MaxUploadBytes)
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
