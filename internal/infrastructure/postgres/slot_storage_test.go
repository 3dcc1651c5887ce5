package postgres_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-infantil/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base desechable.
func setup(t *testing.T) *postgres.SlotStorage {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	s := postgres.NewSlotStorage(pool)
	require.NoError(t, s.EnsureSchema(ctx))
	_, err = pool.Exec(ctx, "DELETE FROM catalog_slots WHERE key LIKE 'test:%'")
	require.NoError(t, err)
	return s
}

func TestSlotStorage_GetSinEscribir(t *testing.T) {
	s := setup(t)
	_, err := s.Get(context.Background(), "test:vacio")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSlotStorage_Upsert(t *testing.T) {
	s := setup(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "test:products", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Set(ctx, "test:products", []byte(`[{"id":2}]`)))

	got, err := s.Get(ctx, "test:products")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":2}]`, string(got))
}
