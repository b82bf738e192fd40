// Package config handles configuration for the server component: defaults,
// a JSON file overlay, WATERBILL_* environment variables and command-line
// flags, applied in that order.
package config

import (
	"time"
)

// Config holds runtime settings for the waterbill server.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR"`
	GRPCAddr        string        `env:"GRPC_ADDR"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// DatabaseDSN selects the backend by scheme: mongodb://, postgres://, sqlite:// or memory://.
	DatabaseDSN  string `env:"DATABASE_DSN"`
	DatabaseName string `env:"DATABASE_NAME"`

	JWTSecret           string        `env:"JWT_SECRET"`
	JWTIssuer           string        `env:"JWT_ISSUER"`
	JWTAudience         string        `env:"JWT_AUDIENCE"`
	AccessTokenValidity time.Duration `env:"ACCESS_TOKEN_VALIDITY"`

	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	AdminName     string `env:"ADMIN_NAME"`

	// SMTPHost empty means reminders are logged instead of mailed.
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`
	SMTPFromName string `env:"SMTP_FROM_NAME"`
	SMTPTLS      bool   `env:"SMTP_TLS"`

	ReminderConcurrency int `env:"REMINDER_CONCURRENCY"`

	// S3Bucket empty disables the annual report archive.
	S3Bucket       string        `env:"S3_BUCKET"`
	S3Region       string        `env:"S3_REGION"`
	S3BaseEndpoint string        `env:"S3_BASE_ENDPOINT"`
	S3AccessKey    string        `env:"S3_ACCESS_KEY"`
	S3SecretKey    string        `env:"S3_SECRET_KEY"`
	S3PresignTTL   time.Duration `env:"S3_PRESIGN_TTL"`

	LogDriver string `env:"LOG_DRIVER"`
	LogFormat string `env:"LOG_FORMAT"`
	LogLevel  string `env:"LOG_LEVEL"`
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret and admin password must be overridden in production.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":8080"
	c.GRPCAddr = ":50051"
	c.ShutdownTimeout = 10 * time.Second
	c.DatabaseDSN = "memory://"
	c.DatabaseName = "waterbill"
	c.JWTSecret = "secretKey"
	c.JWTIssuer = "waterbill"
	c.JWTAudience = "waterbill-clients"
	c.AccessTokenValidity = 24 * time.Hour
	c.AdminEmail = "admin@gmail.com"
	c.AdminPassword = "admin123"
	c.AdminName = "Administrator"
	c.SMTPPort = 587
	c.SMTPFromName = "Water Billing"
	c.SMTPTLS = true
	c.ReminderConcurrency = 4
	c.S3Region = "us-east-1"
	c.S3PresignTTL = 15 * time.Minute
	c.LogDriver = "slog"
	c.LogFormat = "json"
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then the JSON file, then
// the environment and finally command-line flags.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
