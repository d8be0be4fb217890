package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "salesboard-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "memory", cfg.Report.CacheBackend)
	assert.Equal(t, 5*time.Minute, cfg.Report.CacheTTL)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SALES_DATABASE_DRIVER", "sqlite")
	t.Setenv("SALES_DATABASE_PATH", "/tmp/test.db")
	t.Setenv("SALES_LOG_LEVEL", "debug")
	t.Setenv("SALES_APP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "/tmp/test.db", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "9090", cfg.App.Port)
}

func TestLoadInvalidDriver(t *testing.T) {
	t.Setenv("SALES_DATABASE_DRIVER", "mysql")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database.driver")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, base().validate())
	})

	t.Run("idle conns cannot exceed open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = cfg.Database.MaxOpenConns + 1
		assert.Error(t, cfg.validate())
	})

	t.Run("invalid cache backend", func(t *testing.T) {
		cfg := base()
		cfg.Report.CacheBackend = "memcached"
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires password", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Database.SSLMode = "require"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})

	t.Run("production forbids sqlite", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Database.Driver = "sqlite"
		assert.Error(t, cfg.validate())
	})

	t.Run("production forbids wildcard CORS", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.Database.Password = "secret"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		assert.Error(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.example.com",
		Port:     5432,
		User:     "app",
		Password: "p@ss:word/1",
		DBName:   "salesboard",
		SSLMode:  "require",
	}

	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.example.com:5432")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss:word/1")
}
