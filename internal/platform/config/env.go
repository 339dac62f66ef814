// Package config loads process configuration shared by Sol-Calc commands.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix namespaces every Sol-Calc environment variable.
const EnvPrefix = "SOLCALC_"

// ParseEnv loads configuration from SOLCALC_-prefixed environment variables.
//
// Struct tags name the variable without the prefix, so `env:"WEB_HTTP_ADDR"`
// reads SOLCALC_WEB_HTTP_ADDR.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
