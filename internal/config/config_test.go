package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetenv removes key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"DB_PATH", "DB_BUSY_TIMEOUT", "LOG_LEVEL", "LOG_FORMAT"} {
		unsetenv(t, key)
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "campaigen.db", cfg.DBPath)
	assert.Equal(t, 5*time.Second, cfg.DBBusyTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("DB_PATH", "/tmp/isolated.db")
	t.Setenv("DB_BUSY_TIMEOUT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/isolated.db", cfg.DBPath)
	assert.Equal(t, 250*time.Millisecond, cfg.DBBusyTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_InvalidDuration(t *testing.T) {
	unsetenv(t, "LOG_FORMAT")
	t.Setenv("DB_BUSY_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{DBPath: "a.db", LogFormat: "text"}, ""},
		{"blank path", Config{DBPath: "  ", LogFormat: "text"}, "DB_PATH"},
		{"negative timeout", Config{DBPath: "a.db", DBBusyTimeout: -time.Second, LogFormat: "json"}, "DB_BUSY_TIMEOUT"},
		{"unknown format", Config{DBPath: "a.db", LogFormat: "xml"}, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
