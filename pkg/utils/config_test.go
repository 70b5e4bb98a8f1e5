package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("PORT", "9090")

	config, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, DriverSQLite, config.Database.Driver)
	assert.Equal(t, "app.db", config.Database.SQLitePath)
	assert.True(t, config.Database.AutoMigrate)
	assert.Equal(t, time.Hour, config.JWT.AccessTTL)
	assert.Equal(t, 30*24*time.Hour, config.JWT.RefreshTTL)
	assert.Equal(t, 10*time.Second, config.App.ShutdownTimeout)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "JWT_SECRET=file-secret\nDB_DRIVER=postgres\nDB_NAME=sendit\nDB_USER=sendit\nJWT_ACCESS_TTL=15m\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "file-secret", config.JWT.Secret)
	assert.Equal(t, DriverPostgres, config.Database.Driver)
	assert.Equal(t, 15*time.Minute, config.JWT.AccessTTL)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Driver: DriverSQLite, SQLitePath: "app.db"},
			JWT:      JWTConfig{Secret: "s", AccessTTL: time.Hour, RefreshTTL: 2 * time.Hour},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "access not shorter", mutate: func(c *Config) { c.JWT.AccessTTL = 2 * time.Hour }, wantErr: "shorter"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: "unsupported"},
		{name: "postgres without name", mutate: func(c *Config) { c.Database.Driver = DriverPostgres }, wantErr: "DB_NAME"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Database.SQLitePath = "" }, wantErr: "SQLITE_PATH"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
