package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/storage"
	"github.com/jhoicas/tienda-infantil/pkg/config"
)

func TestOpen_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}
	slot, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer slot.Close()

	_, err = slot.Get(context.Background(), "products")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOpen_Bolt(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{
		Driver:   config.DriverBolt,
		BoltPath: filepath.Join(t.TempDir(), "sub", "tienda.db"),
	}}
	slot, err := storage.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer slot.Close()

	require.NoError(t, slot.Set(context.Background(), "products", []byte(`[]`)))
	got, err := slot.Get(context.Background(), "products")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestOpen_DriverDesconocido(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
	_, err := storage.Open(context.Background(), cfg)
	assert.Error(t, err)
}
