package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_AllVarsSet(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/test.sqlite")
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("SESSION_JWT_SECRET", "testsecret")
	t.Setenv("BILLING_BASE_URL", "https://billing.example.com")
	t.Setenv("BILLING_TIMEOUT", "2s")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/test.sqlite", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "testsecret", cfg.Session.JWTSecret)
	assert.True(t, cfg.Billing.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Billing.Timeout)
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("DB_PATH", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("SESSION_JWT_SECRET", "")
	t.Setenv("BILLING_BASE_URL", "")
	t.Setenv("ENV", "")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "tablenavi.sqlite", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "dev-session-secret", cfg.Session.JWTSecret)
	assert.Equal(t, "member_session", cfg.Session.MemberCookieName)
	assert.Equal(t, "admin_session", cfg.Session.AdminCookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 5*time.Second, cfg.Billing.Timeout)
	assert.False(t, cfg.Billing.Enabled())
	assert.NotEmpty(t, cfg.Warnings)
}

func TestLoadFromEnv_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_JWT_SECRET", "")
	t.Setenv("BILLING_BASE_URL", "https://billing.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_JWT_SECRET")
}

func TestLoadFromEnv_ProductionRequiresBilling(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_JWT_SECRET", "real-secret")
	t.Setenv("BILLING_BASE_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BILLING_BASE_URL")
}

func TestLoadFromEnv_ProductionForcesSecureCookies(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SESSION_JWT_SECRET", "real-secret")
	t.Setenv("BILLING_BASE_URL", "https://billing.example.com")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.True(t, cfg.Session.SecureCookies)
}

func TestSessionConfig_Validate_SameCookieNames(t *testing.T) {
	s := SessionConfig{
		JWTSecret:        "s",
		MemberCookieName: "session",
		AdminCookieName:  "session",
	}
	require.Error(t, s.Validate())
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  string
	}{
		{"debug", "DEBUG"},
		{"info", "INFO"},
		{"warn", "WARN"},
		{"error", "ERROR"},
		{"", "INFO"},
		{"bogus", "INFO"},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel().String(), "level %q", tt.level)
	}
}

func TestLoadDotEnv_FileNotFound(t *testing.T) {
	err := LoadDotEnv("/nonexistent/.env")
	if err != nil {
		t.Errorf("expected no error for missing .env, got: %v", err)
	}
}

func TestLoadDotEnv_ParsesKeyValue(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(envFile, []byte("TEST_KEY=test_value\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("TEST_KEY"); val != "test_value" {
		t.Errorf("TEST_KEY = %q, want %q", val, "test_value")
	}
	_ = os.Unsetenv("TEST_KEY")
}

func TestLoadDotEnv_SkipsComments(t *testing.T) {
	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(envFile, []byte("# comment\nTEST_COMMENT_KEY=value\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("TEST_COMMENT_KEY"); val != "value" {
		t.Errorf("TEST_COMMENT_KEY = %q, want %q", val, "value")
	}
	_ = os.Unsetenv("TEST_COMMENT_KEY")
}

func TestLoadDotEnv_EnvVarPrecedence(t *testing.T) {
	t.Setenv("TEST_PRECEDENCE_KEY", "from_env")

	tmpDir := t.TempDir()
	envFile := filepath.Join(tmpDir, ".env")

	err := os.WriteFile(envFile, []byte("TEST_PRECEDENCE_KEY=from_file\n"), 0644)
	if err != nil {
		t.Fatalf("write .env: %v", err)
	}

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}

	if val := os.Getenv("TEST_PRECEDENCE_KEY"); val != "from_env" {
		t.Errorf("TEST_PRECEDENCE_KEY = %q, want %q (env precedence)", val, "from_env")
	}
}
