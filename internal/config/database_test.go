package config_test

import (
	"context"
	"testing"
	"time"

	"github.com/eggypro/storefront-gateway/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDatabaseConfig() *config.DatabaseConfig {
	return &config.DatabaseConfig{
		Host:            "localhost",
		Port:            5432,
		User:            "store",
		Password:        "secret",
		Name:            "storefront",
		SSLMode:         "disable",
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: time.Hour,
		ConnMaxIdleTime: 30 * time.Minute,
	}
}

func TestPgxConfig(t *testing.T) {
	t.Run("maps pool settings", func(t *testing.T) {
		dbCfg := testDatabaseConfig()
		dbCfg.HealthCheckPeriod = 10 * time.Second

		cfg, err := dbCfg.PgxConfig(context.Background())
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.ConnConfig.Host)
		assert.Equal(t, "storefront", cfg.ConnConfig.Database)
		assert.Equal(t, int32(10), cfg.MaxConns)
		assert.Equal(t, int32(5), cfg.MinConns)
		assert.Equal(t, time.Hour, cfg.MaxConnLifetime)
		assert.Equal(t, 30*time.Minute, cfg.MaxConnIdleTime)
		assert.Equal(t, 10*time.Second, cfg.HealthCheckPeriod)
	})

	t.Run("defaults health check period when unset", func(t *testing.T) {
		cfg, err := testDatabaseConfig().PgxConfig(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 30*time.Second, cfg.HealthCheckPeriod)
	})
}
