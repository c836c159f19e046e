package config

import (
	"fmt"
	"os"
	"strconv"
)

type Config struct {
	Host               string
	Port               int
	DefaultEnvironment string // reported by /api/info when ENVIRONMENT is unset
}

func Load() *Config {
	return &Config{
		Host:               getEnv("HOST", ""),
		Port:               getEnvInt("PORT", 5000),
		DefaultEnvironment: getEnv("ENVIRONMENT_DEFAULT", "production"),
	}
}

// Addr returns the listen address in host:port form. An empty host binds
// all interfaces.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
