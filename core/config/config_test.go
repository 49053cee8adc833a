package config_test

import (
	"testing"

	"stock-sync/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "uploads", cfg.Storage.Bucket)
	assert.Equal(t, 250, cfg.Catalog.BatchLimit)
	assert.Equal(t, 250, cfg.Catalog.PageSize)
	assert.Equal(t, "sku", cfg.Catalog.DefaultIdentifier)
	assert.Equal(t, "config_stores.toml", cfg.Stores.File)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("CATALOG_BATCH_LIMIT", "100")
	t.Setenv("STORES_FILE", "shops.toml")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 100, cfg.Catalog.BatchLimit)
	assert.Equal(t, "shops.toml", cfg.Stores.File)
}
