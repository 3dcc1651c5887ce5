package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/domain/repository"
)

var _ repository.SlotStorage = (*SlotStorage)(nil)

// Querier interfaz mínima común a *pgxpool.Pool, *pgx.Conn y pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS catalog_slots (
	key        TEXT PRIMARY KEY,
	value      JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// SlotStorage slot durable en la tabla catalog_slots (una fila por slot).
type SlotStorage struct {
	q Querier
}

// NewSlotStorage construye el adaptador. Pasar pool o tx (Querier).
func NewSlotStorage(q Querier) *SlotStorage {
	return &SlotStorage{q: q}
}

// EnsureSchema crea la tabla si no existe.
func (s *SlotStorage) EnsureSchema(ctx context.Context) error {
	if _, err := s.q.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla catalog_slots: %w", err)
	}
	return nil
}

// Get lee el slot key. Devuelve domain.ErrNotFound si no hay fila.
func (s *SlotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.q.QueryRow(ctx, `SELECT value FROM catalog_slots WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: slot %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return value, nil
}

// Set sobrescribe el slot key (upsert).
func (s *SlotStorage) Set(ctx context.Context, key string, value []byte) error {
	_, err := s.q.Exec(ctx, `
		INSERT INTO catalog_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, string(value),
	)
	if err != nil {
		return fmt.Errorf("upsert slot: %w", err)
	}
	return nil
}
