// Package storage elige el adaptador del slot durable según STORAGE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/jhoicas/tienda-infantil/internal/domain/repository"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/boltdb"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-infantil/internal/infrastructure/redisstore"
	"github.com/jhoicas/tienda-infantil/pkg/config"
)

// Slot almacenamiento abierto junto con su función de cierre.
type Slot struct {
	repository.SlotStorage
	close func() error
}

// Close libera la conexión o el archivo subyacente.
func (s *Slot) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Open abre el slot configurado.
func Open(ctx context.Context, cfg *config.Config) (*Slot, error) {
	switch cfg.Storage.Driver {
	case config.DriverBolt:
		db, err := boltdb.Open(cfg.Storage.BoltPath)
		if err != nil {
			return nil, err
		}
		return &Slot{SlotStorage: db, close: db.Close}, nil

	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		slots := postgres.NewSlotStorage(pool)
		if err := slots.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return &Slot{SlotStorage: slots, close: func() error { pool.Close(); return nil }}, nil

	case config.DriverRedis:
		rs, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:     cfg.Storage.RedisAddr,
			Password: cfg.Storage.RedisPassword,
			DB:       cfg.Storage.RedisDB,
			Prefix:   cfg.Storage.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		return &Slot{SlotStorage: rs, close: rs.Close}, nil

	case config.DriverMemory:
		return &Slot{SlotStorage: memory.NewSlotStorage()}, nil

	default:
		return nil, fmt.Errorf("driver de almacenamiento desconocido: %q", cfg.Storage.Driver)
	}
}
