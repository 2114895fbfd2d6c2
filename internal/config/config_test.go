package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "data/assessments.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "memory", cfg.Cache.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 1000, cfg.Cache.MaxEntries)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.True(t, cfg.RateLimit.Enabled)

	require.NoError(t, m.Validate())
}

func TestNewManager_EnvOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("CLAUS_SERVER_PORT", "9090")
	t.Setenv("CLAUS_CACHE_BACKEND", "none")
	t.Setenv("CLAUS_LOGGING_LEVEL", "debug")

	m, err := NewManager()
	require.NoError(t, err)

	cfg := m.GetConfig()
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, "debug", cfg.Logging.Level)

	require.NoError(t, m.Validate())
}

func TestManager_Validate(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "Invalid port",
			env:     map[string]string{"CLAUS_SERVER_PORT": "70000"},
			wantErr: "invalid server port",
		},
		{
			name:    "Invalid cache backend",
			env:     map[string]string{"CLAUS_CACHE_BACKEND": "memcached"},
			wantErr: "invalid cache backend",
		},
		{
			name:    "Invalid log level",
			env:     map[string]string{"CLAUS_LOGGING_LEVEL": "verbose"},
			wantErr: "invalid log level",
		},
		{
			name:    "Invalid rate limit",
			env:     map[string]string{"CLAUS_RATELIMIT_REQUESTS_PER_SECOND": "0"},
			wantErr: "invalid rate limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			m, err := NewManager()
			require.NoError(t, err)

			err = m.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
