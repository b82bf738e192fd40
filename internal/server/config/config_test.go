package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	os.Args = append([]string{"testbin"}, args...)
	t.Cleanup(func() { os.Args = orig })
}

func TestLoadDefaults(t *testing.T) {
	c := defaults()

	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, ":50051", c.GRPCAddr)
	assert.Equal(t, "memory://", c.DatabaseDSN)
	assert.Equal(t, "admin@gmail.com", c.AdminEmail)
	assert.Equal(t, "admin123", c.AdminPassword)
	assert.Equal(t, "Administrator", c.AdminName)
	assert.Equal(t, 4, c.ReminderConcurrency)
	assert.Equal(t, 15*time.Minute, c.S3PresignTTL)
	assert.Equal(t, "slog", c.LogDriver)
}

func TestLoadConfig_DefaultsOnly(t *testing.T) {
	withArgs(t)
	t.Setenv("WATERBILL_CONFIG", "")

	c, err := LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaults(), c))
}

func TestParseJson(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"http_addr":             "127.0.0.1:9000",
		"database_dsn":          "mongodb://localhost:27017",
		"access_token_validity": "1h",
		"smtp_port":             465,
		"smtp_tls":              false,
		"reminder_concurrency":  8,
		"s3_presign_ttl":        "5m",
	})

	t.Run("loads from -config", func(t *testing.T) {
		withArgs(t, "-config", path)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))

		want := defaults()
		want.HTTPAddr = "127.0.0.1:9000"
		want.DatabaseDSN = "mongodb://localhost:27017"
		want.AccessTokenValidity = time.Hour
		want.SMTPPort = 465
		want.SMTPTLS = false
		want.ReminderConcurrency = 8
		want.S3PresignTTL = 5 * time.Minute
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("loads from env var", func(t *testing.T) {
		withArgs(t)
		t.Setenv("WATERBILL_CONFIG", path)

		cfg := defaults()
		require.NoError(t, parseJson(cfg))
		assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	})

	t.Run("no file → no changes", func(t *testing.T) {
		withArgs(t)
		t.Setenv("WATERBILL_CONFIG", "")

		cfg := defaults()
		require.NoError(t, parseJson(cfg))
		assert.Empty(t, cmp.Diff(defaults(), cfg))
	})

	t.Run("invalid JSON → error", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		withArgs(t, "-c", bad)

		require.Error(t, parseJson(defaults()))
	})

	t.Run("missing file → error", func(t *testing.T) {
		withArgs(t, "-c", filepath.Join(t.TempDir(), "nope.json"))
		require.Error(t, parseJson(defaults()))
	})
}

func TestParseEnv(t *testing.T) {
	t.Setenv("WATERBILL_GRPC_ADDR", ":6000")
	t.Setenv("WATERBILL_SMTP_HOST", "smtp.example.com")
	t.Setenv("WATERBILL_ACCESS_TOKEN_VALIDITY", "2h")
	t.Setenv("WATERBILL_REMINDER_CONCURRENCY", "2")

	cfg := defaults()
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, ":6000", cfg.GRPCAddr)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, 2*time.Hour, cfg.AccessTokenValidity)
	assert.Equal(t, 2, cfg.ReminderConcurrency)
	assert.Equal(t, ":8080", cfg.HTTPAddr, "unset variables keep their value")
}

func TestParseEnv_BadValue(t *testing.T) {
	t.Setenv("WATERBILL_SMTP_PORT", "not-a-port")
	require.Error(t, parseEnv(defaults()))
}

func TestParseFlags(t *testing.T) {
	withArgs(t,
		"-a", "127.0.0.1:8081", "-g", ":7000", "-d", "postgres://db", "-n", "bills",
		"-s", "secret", "-t", "30", "-r", "2", "-b", "archive", "-l", "debug",
		"-c", "ignored.json",
	)

	cfg := defaults()
	require.NoError(t, parseFlags(cfg))

	want := defaults()
	want.HTTPAddr = "127.0.0.1:8081"
	want.GRPCAddr = ":7000"
	want.DatabaseDSN = "postgres://db"
	want.DatabaseName = "bills"
	want.JWTSecret = "secret"
	want.AccessTokenValidity = 30 * time.Minute
	want.ReminderConcurrency = 2
	want.S3Bucket = "archive"
	want.LogLevel = "debug"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseFlags_ValidityUntouchedWhenAbsent(t *testing.T) {
	withArgs(t, "-a", ":1")

	cfg := defaults()
	cfg.AccessTokenValidity = 90 * time.Second
	require.NoError(t, parseFlags(cfg))
	assert.Equal(t, 90*time.Second, cfg.AccessTokenValidity)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := writeTempJSON(t, map[string]any{
		"http_addr": ":1111",
		"grpc_addr": ":2222",
		"log_level": "warn",
	})
	withArgs(t, "-c", path, "-a", ":3333")
	t.Setenv("WATERBILL_GRPC_ADDR", ":4444")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":3333", cfg.HTTPAddr)
	assert.Equal(t, ":4444", cfg.GRPCAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
}
