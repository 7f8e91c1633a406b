package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix prefixes every environment variable the CLI reads,
// e.g. AUTHBOOT_BASE_URL.
const EnvPrefix = "AUTHBOOT_"

// parseEnv overlays Config with AUTHBOOT_* environment variables. Unset
// variables leave the current value alone. Panics on parse errors.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
