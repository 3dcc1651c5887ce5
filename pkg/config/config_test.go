package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-infantil/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverBolt, cfg.Storage.Driver)
	assert.Equal(t, "products", cfg.Storage.SlotKey)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.False(t, cfg.Catalog.StrictNotFound)
	assert.Equal(t, int64(10*1024*1024), cfg.Upload.MaxImageBytes)
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CATALOG_STRICT_NOT_FOUND", "true")
	t.Setenv("UPLOAD_MAX_PARALLEL", "8")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Catalog.StrictNotFound)
	assert.Equal(t, 8, cfg.Upload.MaxParallel)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
}

func TestLoad_DriverDesconocido(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaContrasena(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "tienda", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/tienda?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
