// Package config loads command configuration from the process environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Prefix namespaces every environment variable read by guessgame commands.
const Prefix = "GUESSGAME_"

// ParseEnv loads configuration from environment variables.
//
// Struct tags name variables without the shared prefix; ParseEnv applies
// Prefix so a field tagged `env:"LOCALE"` reads GUESSGAME_LOCALE.
func ParseEnv(target any) error {
	if err := env.ParseWithOptions(target, env.Options{Prefix: Prefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
