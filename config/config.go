// Package config loads application settings from the environment.
// File: config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret is only acceptable outside production.
const DefaultSessionSecret = "dev-session-secret-change-me"

// Store backends.
const (
	BackendMemory = "memory"
	BackendSQL    = "sql"
)

// Config holds every runtime setting of the service.
type Config struct {
	Port        string
	Environment string
	LogDir      string

	// Session cookie
	SessionSecret string
	SessionTTL    time.Duration

	// Admin identity and credential
	AdminID           string
	AdminName         string
	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string

	// Storage
	StoreBackend string
	DatabaseURL  string
	SeedData     bool

	// Alternate identity channel
	TrustedHeadersEnabled bool
	TrustedHeaderPrefix   string
	AdminDisplayNames     []string

	// Observability
	MetricsEnabled   bool
	MetricsNamespace string
	TracingEnabled   bool
	ServiceName      string

	PublicBaseURL string
}

// Load reads an optional .env file and then the process environment.
func Load() *Config {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("APP_ENV", "development"),
		LogDir:      getEnv("LOG_DIR", ""),

		SessionSecret: getEnv("SESSION_SECRET", DefaultSessionSecret),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 168)) * time.Hour,

		AdminID:           getEnv("ADMIN_ID", "admin-1"),
		AdminName:         getEnv("ADMIN_NAME", "Admin Tarek"),
		AdminEmail:        getEnv("ADMIN_EMAIL", "tarek@admin.com"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "tarek123"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		StoreBackend: strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		SeedData:     getEnvBool("SEED_SAMPLE_DATA", false),

		TrustedHeadersEnabled: getEnvBool("TRUSTED_HEADERS_ENABLED", false),
		TrustedHeaderPrefix:   getEnv("TRUSTED_HEADER_PREFIX", "X-Replit-User-"),
		AdminDisplayNames:     splitList(getEnv("ADMIN_DISPLAY_NAMES", "")),

		MetricsEnabled:   getEnvBool("METRICS_ENABLED", false),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "ClanAdmin"),
		TracingEnabled:   getEnvBool("TRACING_ENABLED", false),
		ServiceName:      getEnv("SERVICE_NAME", "clan-admin"),

		PublicBaseURL: strings.TrimRight(getEnv("PUBLIC_BASE_URL", "http://localhost:8080"), "/"),
	}
}

// IsProduction reports whether the service runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Validate rejects configurations the service must not start with.
func (c *Config) Validate() error {
	var errs []error
	if c.IsProduction() && (c.SessionSecret == "" || c.SessionSecret == DefaultSessionSecret) {
		errs = append(errs, errors.New("SESSION_SECRET must be set in production"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("SESSION_TTL_HOURS must be positive, got %v", c.SessionTTL))
	}
	switch c.StoreBackend {
	case BackendMemory:
	case BackendSQL:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_BACKEND=sql"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_BACKEND %q", c.StoreBackend))
	}
	if c.AdminEmail == "" {
		errs = append(errs, errors.New("ADMIN_EMAIL must not be empty"))
	}
	if c.AdminPassword == "" && c.AdminPasswordHash == "" {
		errs = append(errs, errors.New("one of ADMIN_PASSWORD or ADMIN_PASSWORD_HASH is required"))
	}
	return errors.Join(errs...)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// splitList turns "a, b,,c" into [a b c].
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
