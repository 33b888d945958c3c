package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultJWTSecret signs tokens when JWT_SECRET is unset. Only acceptable for local development.
const DefaultJWTSecret = "default-secret"

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds runtime configuration sourced from env vars.
type Config struct {
	Port        string
	DBDriver    string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	CORSOrigins []string
	CoinAPIKey  string
	CoinAPIURL  string
	UploadPath  string
	MaxUploadMB int64
}

// Load reads configuration from the environment and performs minimal validation.
func Load() (Config, error) {
	cfg := Config{
		Port:        fallback(os.Getenv("PORT"), "3000"),
		DBDriver:    strings.ToLower(fallback(os.Getenv("DB_DRIVER"), DriverPostgres)),
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   fallback(os.Getenv("JWT_SECRET"), DefaultJWTSecret),
		JWTIssuer:   fallback(os.Getenv("JWT_ISSUER"), "finance-backend"),
		CORSOrigins: parseCSV(fallback(os.Getenv("CORS_ALLOWED_ORIGINS"), "*")),
		CoinAPIKey:  strings.TrimSpace(os.Getenv("COIN_API_KEY")),
		CoinAPIURL:  strings.TrimRight(fallback(os.Getenv("COIN_API_URL"), "https://rest.coinapi.io"), "/"),
		UploadPath:  fallback(os.Getenv("UPLOAD_PATH"), "./uploads"),
	}

	cfg.JWTTTL = time.Duration(positiveInt(os.Getenv("JWT_TTL_MINUTES"), 30*24*60)) * time.Minute
	cfg.MaxUploadMB = int64(positiveInt(os.Getenv("MAX_UPLOAD_MB"), 10))

	switch cfg.DBDriver {
	case DriverPostgres:
		if cfg.DatabaseURL == "" {
			return Config{}, errors.New("DATABASE_URL is required")
		}
	case DriverSQLite:
		if cfg.DatabaseURL == "" {
			cfg.DatabaseURL = "finance.db"
		}
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to.
func (c Config) HTTPAddress() string {
	return fmt.Sprintf(":%s", c.Port)
}

// UsingDefaultSecret reports whether tokens are signed with the well-known fallback secret.
func (c Config) UsingDefaultSecret() bool {
	return c.JWTSecret == DefaultJWTSecret
}

// MaxUploadBytes is the multipart body limit for receipt uploads.
func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func positiveInt(value string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func parseCSV(input string) []string {
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}
