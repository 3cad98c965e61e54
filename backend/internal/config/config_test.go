package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigJWTSecret = "a-very-long-secret-key-that-is-at-least-32-chars"

func TestLoad(t *testing.T) {
	originalEnv := make(map[string]string)
	envVars := []string{
		"PORT", "ENV",
		"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
		"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_MAX_LIFETIME",
		"REDIS_HOST", "REDIS_PORT", "REDIS_PASSWORD", "REDIS_DB",
		"JWT_SECRET", "ACCESS_TOKEN_DURATION", "REFRESH_TOKEN_DURATION",
		"SIM_WORLD_HISTORY_TAIL", "SIM_NPC_MEMORY_CAP", "SIM_TICK_SOFT_MS",
		"SIM_SNAPSHOT_RETENTION_DAYS", "SIM_AUTO_EXPORT",
	}
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		require.NoError(t, os.Unsetenv(key))
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				require.NoError(t, os.Setenv(key, value))
			} else {
				require.NoError(t, os.Unsetenv(key))
			}
		}
	}()

	t.Run("loads default configuration", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "development", cfg.Server.Environment)

		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "dndgame", cfg.Database.User)
		assert.Equal(t, "dndgame", cfg.Database.DatabaseName)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 25, cfg.Database.MaxIdleConns)
		assert.Equal(t, 5*time.Minute, cfg.Database.MaxLifetime)

		assert.Equal(t, "localhost", cfg.Redis.Host)
		assert.Equal(t, 6379, cfg.Redis.Port)
		assert.Equal(t, "", cfg.Redis.Password)
		assert.Equal(t, 0, cfg.Redis.DB)

		assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
		assert.Equal(t, 7*24*time.Hour, cfg.Auth.RefreshTokenDuration)

		assert.Equal(t, 200, cfg.Sim.WorldHistoryTail)
		assert.Equal(t, 30, cfg.Sim.NPCMemoryCap)
		assert.False(t, cfg.Sim.AutoExportEnabled)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		require.NoError(t, os.Setenv("PORT", "3000"))
		require.NoError(t, os.Setenv("ENV", "production"))
		require.NoError(t, os.Setenv("DB_HOST", "test-host"))
		require.NoError(t, os.Setenv("DB_PORT", "5433"))
		require.NoError(t, os.Setenv("REDIS_DB", "1"))
		require.NoError(t, os.Setenv("JWT_SECRET", "test-secret-key-that-is-long-enough"))
		require.NoError(t, os.Setenv("ACCESS_TOKEN_DURATION", "30m"))
		require.NoError(t, os.Setenv("SIM_WORLD_HISTORY_TAIL", "500"))
		require.NoError(t, os.Setenv("SIM_AUTO_EXPORT", "true"))

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "3000", cfg.Server.Port)
		assert.Equal(t, "production", cfg.Server.Environment)
		assert.Equal(t, "test-host", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 1, cfg.Redis.DB)
		assert.Equal(t, "test-secret-key-that-is-long-enough", cfg.Auth.JWTSecret)
		assert.Equal(t, 30*time.Minute, cfg.Auth.AccessTokenDuration)
		assert.Equal(t, 500, cfg.Sim.WorldHistoryTail)
		assert.True(t, cfg.Sim.AutoExportEnabled)
	})

	t.Run("handles invalid port", func(t *testing.T) {
		require.NoError(t, os.Setenv("DB_PORT", "invalid"))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 5432, cfg.Database.Port)
	})

	t.Run("handles invalid duration", func(t *testing.T) {
		require.NoError(t, os.Setenv("ACCESS_TOKEN_DURATION", "invalid"))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 15*time.Minute, cfg.Auth.AccessTokenDuration)
	})
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Server: ServerConfig{Port: "8080", Environment: "development"},
			Database: DatabaseConfig{
				Host:         "localhost",
				Port:         5432,
				User:         "user",
				Password:     "pass",
				DatabaseName: "db",
			},
			Auth: AuthConfig{
				JWTSecret:            testConfigJWTSecret,
				AccessTokenDuration:  15 * time.Minute,
				RefreshTokenDuration: 7 * 24 * time.Hour,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid configuration", mutate: func(c *Config) {}, wantErr: false},
		{
			name:    "missing server port",
			mutate:  func(c *Config) { c.Server.Port = "" },
			wantErr: true,
			errMsg:  "server port is required",
		},
		{
			name:    "missing database host",
			mutate:  func(c *Config) { c.Database.Host = "" },
			wantErr: true,
			errMsg:  "database host is required",
		},
		{
			name:    "missing database user",
			mutate:  func(c *Config) { c.Database.User = "" },
			wantErr: true,
			errMsg:  "database user is required",
		},
		{
			name:    "missing database name",
			mutate:  func(c *Config) { c.Database.DatabaseName = "" },
			wantErr: true,
			errMsg:  "database name is required",
		},
		{
			name:    "missing JWT secret",
			mutate:  func(c *Config) { c.Auth.JWTSecret = "" },
			wantErr: true,
			errMsg:  "JWT secret",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
