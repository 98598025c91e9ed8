package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that can come from the environment (or a .env file).
// Command-line flags take precedence; these only provide their defaults.
type Env struct {
	DBPath   string `env:"MEMORY_DB"`
	Saves    string `env:"MEMORY_SAVES" envDefault:"sqlite"`
	RedisURL string `env:"MEMORY_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	SSHAddr  string `env:"MEMORY_SSH_ADDR" envDefault:"0.0.0.0:2222"`
	HostKey  string `env:"MEMORY_HOST_KEY" envDefault:".ssh/memory_host_key"`
	LogLevel string `env:"MEMORY_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadEnv parses an Env from the current process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := ParseEnv(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
