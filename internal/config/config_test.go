// internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: "8080"},
		Database: DatabaseConfig{Host: "localhost", Name: "storefront", User: "postgres"},
		Redis:    RedisConfig{Host: "localhost"},
		Store:    StoreConfig{Name: "Boteco da Maminha"},
		Delivery: DeliveryConfig{BaseFee: 500, PerKmFee: 200, BaseRadiusKM: 1.0},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing db host", func(c *Config) { c.Database.Host = "" }},
		{"missing db name", func(c *Config) { c.Database.Name = "" }},
		{"missing db user", func(c *Config) { c.Database.User = "" }},
		{"missing redis host", func(c *Config) { c.Redis.Host = "" }},
		{"missing port", func(c *Config) { c.Server.Port = "" }},
		{"missing store name", func(c *Config) { c.Store.Name = "" }},
		{"negative base fee", func(c *Config) { c.Delivery.BaseFee = -1 }},
		{"negative per-km fee", func(c *Config) { c.Delivery.PerKmFee = -1 }},
		{"negative radius", func(c *Config) { c.Delivery.BaseRadiusKM = -0.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("REDIS_HOST", "localhost")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(500), cfg.Delivery.BaseFee)
	assert.Equal(t, int64(200), cfg.Delivery.PerKmFee)
	assert.Equal(t, 1.0, cfg.Delivery.BaseRadiusKM)
	assert.Equal(t, "storefront_session", cfg.Session.CookieName)
	assert.Equal(t, 24*time.Hour, cfg.Session.CartTTL)
	assert.InDelta(t, -23.5505, cfg.Store.OriginLat, 1e-9)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_NAME", "storefront")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("DELIVERY_BASE_FEE", "700")
	t.Setenv("DELIVERY_BASE_RADIUS_KM", "2.5")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, int64(700), cfg.Delivery.BaseFee)
	assert.Equal(t, 2.5, cfg.Delivery.BaseRadiusKM)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Port = "5432"
	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "disable"

	dsn := cfg.GetDatabaseDSN()

	assert.Contains(t, dsn, "host=localhost")
	assert.Contains(t, dsn, "dbname=storefront")
	assert.Contains(t, dsn, "sslmode=disable")
}

func TestGetRedisAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Redis.Port = "6379"

	assert.Equal(t, "localhost:6379", cfg.GetRedisAddr())
}
