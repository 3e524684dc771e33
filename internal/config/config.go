package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultPort     = 8080
	DefaultLogLevel = "info"
	DefaultVersion  = "dev"
)

type Config struct {
	Port       int
	LogLevel   string
	AppVersion string
}

// LoadFromEnv never fails: unset or unparsable values fall back to defaults.
func LoadFromEnv() Config {
	return Config{
		Port:       envPort("PORT", DefaultPort),
		LogLevel:   strings.ToLower(env("LOG_LEVEL", DefaultLogLevel)),
		AppVersion: env("APP_VERSION", DefaultVersion),
	}
}

// ListenAddr binds on all interfaces.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

func env(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func envInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func envPort(key string, def int) int {
	p := envInt(key, def)
	if !ValidPort(p) {
		return def
	}
	return p
}

func ValidPort(p int) bool {
	return p > 0 && p <= 65535
}
