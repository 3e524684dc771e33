package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnvPort(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"unset", "", 8080},
		{"valid", "9090", 9090},
		{"whitespace", "  3000 ", 3000},
		{"garbage", "eighty", 8080},
		{"negative", "-1", 8080},
		{"zero", "0", 8080},
		{"too large", "70000", 8080},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.in)
			cfg := LoadFromEnv()
			assert.Equal(t, tc.want, cfg.Port)
		})
	}
}

func TestLoadFromEnvDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("APP_VERSION", "")

	cfg := LoadFromEnv()
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "dev", cfg.AppVersion)
	assert.Equal(t, "0.0.0.0:8080", cfg.ListenAddr())
}

func TestLoadFromEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("APP_VERSION", "1.4.2")

	cfg := LoadFromEnv()
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "1.4.2", cfg.AppVersion)
}
