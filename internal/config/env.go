package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env is the process environment the generator reads.
type Env struct {
	LogLevel  string `env:"PATHGEN_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"PATHGEN_LOG_FORMAT" envDefault:"text"`
}

// ParseEnv loads Env from environment variables.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
