package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every variable read by parseEnv.
const EnvPrefix = "WATERBILL_"

// parseEnv overlays fields whose WATERBILL_* variable is set. Unset
// variables leave the current value in place.
func parseEnv(cfg *Config) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse environment: %w", err)
	}
	return nil
}
