// Package config handles application configuration and environment loading.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// SessionConfig holds the settings for the two cookie session guards.
type SessionConfig struct {
	// JWTSecret signs both the member and admin session tokens.
	JWTSecret string
	// MemberCookieName is the cookie carrying the member session token.
	MemberCookieName string
	// AdminCookieName is the cookie carrying the admin session token.
	AdminCookieName string
	// TTL is the session token lifetime (default: 24h).
	TTL time.Duration
	// SecureCookies marks session cookies Secure (forced on in production).
	SecureCookies bool
}

// Validate checks that the session configuration is internally consistent.
func (s *SessionConfig) Validate() error {
	if s.JWTSecret == "" {
		return fmt.Errorf("SESSION_JWT_SECRET must be set")
	}
	if s.MemberCookieName == s.AdminCookieName {
		return fmt.Errorf("member and admin session cookie names must differ")
	}
	return nil
}

// BillingConfig holds the external billing provider settings. When BaseURL
// is empty the server runs with the in-process fake provider.
type BillingConfig struct {
	BaseURL string        // billing API base URL (empty: fake provider)
	APIKey  string        // bearer token for the billing API
	Timeout time.Duration // per-request timeout (default: 5s)
}

// Enabled reports whether an external billing provider is configured.
func (b *BillingConfig) Enabled() bool {
	return b.BaseURL != ""
}

// Config holds the configuration for the web server and SQLite storage.
type Config struct {
	DBPath     string // path to the SQLite database file
	ListenAddr string // HTTP listen address (default ":8080")
	BaseURL    string // external base URL used in absolute redirects (optional)
	LogLevel   string // log level: debug, info, warn, error (default "info")
	Env        string // environment: "development" (default) or "production"

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 50)
	RateLimitBurst int     // burst capacity (default 100)

	// CORS
	CORSAllowedOrigins []string // allowed origins for CORS (default: ["*"])

	// Session holds the cookie guard configuration.
	Session SessionConfig

	// Billing holds the external entitlement provider configuration.
	Billing BillingConfig

	// SeedOnStartup loads the bundled categories/holidays/company/terms
	// seed data after migrations when true (default: true).
	SeedOnStartup bool

	// Warnings collects non-fatal warnings generated during config loading.
	// These are logged by the caller after the logger is initialised.
	Warnings []string
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsProduction returns true when the server is running in production mode.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		DBPath:        os.Getenv("DB_PATH"),
		ListenAddr:    os.Getenv("LISTEN_ADDR"),
		BaseURL:       os.Getenv("BASE_URL"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		Env:           os.Getenv("ENV"),
		SeedOnStartup: parseBoolEnvDefault("SEED_ON_STARTUP", true),
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	// Session config
	cfg.Session = SessionConfig{
		JWTSecret:        os.Getenv("SESSION_JWT_SECRET"),
		MemberCookieName: os.Getenv("SESSION_MEMBER_COOKIE"),
		AdminCookieName:  os.Getenv("SESSION_ADMIN_COOKIE"),
		SecureCookies:    strings.EqualFold(os.Getenv("SESSION_SECURE_COOKIES"), "true"),
	}
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Session.TTL = d
		}
	}

	// Billing config
	cfg.Billing = BillingConfig{
		BaseURL: os.Getenv("BILLING_BASE_URL"),
		APIKey:  os.Getenv("BILLING_API_KEY"),
	}
	if v := os.Getenv("BILLING_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Billing.Timeout = d
		}
	}

	// Session defaults
	if cfg.Session.MemberCookieName == "" {
		cfg.Session.MemberCookieName = "member_session"
	}
	if cfg.Session.AdminCookieName == "" {
		cfg.Session.AdminCookieName = "admin_session"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.Session.JWTSecret == "" {
		cfg.Session.JWTSecret = "dev-session-secret"
		cfg.Warnings = append(cfg.Warnings, "SESSION_JWT_SECRET not set — using insecure default. Set SESSION_JWT_SECRET in production!")
	}

	// Billing defaults
	if cfg.Billing.Timeout == 0 {
		cfg.Billing.Timeout = 5 * time.Second
	}
	if !cfg.Billing.Enabled() {
		cfg.Warnings = append(cfg.Warnings, "BILLING_BASE_URL not set — using the in-process fake billing provider")
	}

	// Defaults
	if cfg.DBPath == "" {
		cfg.DBPath = "tablenavi.sqlite"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 50
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 100
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	if err := cfg.Session.Validate(); err != nil {
		return nil, err
	}

	// Production mode: insecure defaults are fatal errors.
	if cfg.IsProduction() {
		if cfg.Session.JWTSecret == "dev-session-secret" {
			return nil, fmt.Errorf("SESSION_JWT_SECRET must be set in production (ENV=production)")
		}
		if !cfg.Billing.Enabled() {
			return nil, fmt.Errorf("BILLING_BASE_URL must be set in production (ENV=production)")
		}
		if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
			return nil, fmt.Errorf("CORS wildcard (*) is not allowed in production (ENV=production)")
		}
		cfg.Session.SecureCookies = true
	}

	return cfg, nil
}

func parseBoolEnvDefault(key string, defaultVal bool) bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv(key)))
	if v == "" {
		return defaultVal
	}
	if v == "0" || v == "false" || v == "no" || v == "off" {
		return false
	}
	if v == "1" || v == "true" || v == "yes" || v == "on" {
		return true
	}
	return defaultVal
}

// LoadDotEnv reads a .env file and sets any variables not already in the environment.
// Lines must be in KEY=VALUE format. Comments (#) and blank lines are skipped.
func LoadDotEnv(path string) error {
	f, err := os.Open(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		if os.IsNotExist(err) {
			return nil // .env not found is not an error
		}
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		value = stripQuotes(value)
		// Only set if not already in the environment (env vars take precedence)
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("setenv %s: %w", key, err)
			}
		}
	}
	return scanner.Err()
}

// stripQuotes removes surrounding double or single quotes from a value.
// Only strips if both the first and last characters are matching quotes.
func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
