// Package config holds settings for the waterbill CLI: defaults overlaid by
// a JSON file and then by WATERBILL_CLI_* environment variables. Command
// flags are applied later by the cobra root command.
package config

import (
	"time"
)

// Config holds runtime settings for the CLI.
type Config struct {
	ServerEndpointAddr string        `env:"SERVER"`
	TokenDir           string        `env:"TOKEN_DIR"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.TokenDir = ".waterbill"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config from defaults, the JSON file (if any) and
// the environment, later sources taking precedence.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
