package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/waterbill/internal/flagx"
	"github.com/dmitrijs2005/waterbill/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Durations accept both
// "15m" strings and integer nanoseconds. Pointer fields distinguish "absent"
// from an explicit zero value.
type JsonConfig struct {
	HTTPAddr        string          `json:"http_addr"`
	GRPCAddr        string          `json:"grpc_addr"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`

	DatabaseDSN  string `json:"database_dsn"`
	DatabaseName string `json:"database_name"`

	JWTSecret           string          `json:"jwt_secret"`
	JWTIssuer           string          `json:"jwt_issuer"`
	JWTAudience         string          `json:"jwt_audience"`
	AccessTokenValidity *timex.Duration `json:"access_token_validity"`

	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password"`
	AdminName     string `json:"admin_name"`

	SMTPHost     string `json:"smtp_host"`
	SMTPPort     *int   `json:"smtp_port"`
	SMTPUsername string `json:"smtp_username"`
	SMTPPassword string `json:"smtp_password"`
	SMTPFrom     string `json:"smtp_from"`
	SMTPFromName string `json:"smtp_from_name"`
	SMTPTLS      *bool  `json:"smtp_tls"`

	ReminderConcurrency *int `json:"reminder_concurrency"`

	S3Bucket       string          `json:"s3_bucket"`
	S3Region       string          `json:"s3_region"`
	S3BaseEndpoint string          `json:"s3_base_endpoint"`
	S3AccessKey    string          `json:"s3_access_key"`
	S3SecretKey    string          `json:"s3_secret_key"`
	S3PresignTTL   *timex.Duration `json:"s3_presign_ttl"`

	LogDriver string `json:"log_driver"`
	LogFormat string `json:"log_format"`
	LogLevel  string `json:"log_level"`
}

// parseJson loads the file named by -c/-config (or $WATERBILL_CONFIG) and
// copies every field present in it onto config. No file, no changes.
func parseJson(config *Config) error {
	path := flagx.ConfigFile()
	if path == "" {
		return nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	str := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	str(&config.HTTPAddr, c.HTTPAddr)
	str(&config.GRPCAddr, c.GRPCAddr)
	str(&config.DatabaseDSN, c.DatabaseDSN)
	str(&config.DatabaseName, c.DatabaseName)
	str(&config.JWTSecret, c.JWTSecret)
	str(&config.JWTIssuer, c.JWTIssuer)
	str(&config.JWTAudience, c.JWTAudience)
	str(&config.AdminEmail, c.AdminEmail)
	str(&config.AdminPassword, c.AdminPassword)
	str(&config.AdminName, c.AdminName)
	str(&config.SMTPHost, c.SMTPHost)
	str(&config.SMTPUsername, c.SMTPUsername)
	str(&config.SMTPPassword, c.SMTPPassword)
	str(&config.SMTPFrom, c.SMTPFrom)
	str(&config.SMTPFromName, c.SMTPFromName)
	str(&config.S3Bucket, c.S3Bucket)
	str(&config.S3Region, c.S3Region)
	str(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	str(&config.S3AccessKey, c.S3AccessKey)
	str(&config.S3SecretKey, c.S3SecretKey)
	str(&config.LogDriver, c.LogDriver)
	str(&config.LogFormat, c.LogFormat)
	str(&config.LogLevel, c.LogLevel)

	if c.ShutdownTimeout != nil {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
	if c.AccessTokenValidity != nil {
		config.AccessTokenValidity = c.AccessTokenValidity.Duration
	}
	if c.S3PresignTTL != nil {
		config.S3PresignTTL = c.S3PresignTTL.Duration
	}
	if c.SMTPPort != nil {
		config.SMTPPort = *c.SMTPPort
	}
	if c.SMTPTLS != nil {
		config.SMTPTLS = *c.SMTPTLS
	}
	if c.ReminderConcurrency != nil {
		config.ReminderConcurrency = *c.ReminderConcurrency
	}
	return nil
}
