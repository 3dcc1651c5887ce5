// Package redisstore implementa el slot del catálogo como una clave string de Redis.
package redisstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/domain/repository"
)

var _ repository.SlotStorage = (*SlotStorage)(nil)

// DefaultPrefix prefijo de las claves del catálogo.
const DefaultPrefix = "tienda:"

// Config conexión a Redis.
type Config struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

// SlotStorage slot durable en Redis, sin expiración.
type SlotStorage struct {
	client *redis.Client
	prefix string
}

// New construye el almacenamiento sobre un cliente existente.
func New(client *redis.Client, prefix string) *SlotStorage {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &SlotStorage{client: client, prefix: prefix}
}

// Connect crea el cliente y verifica la conexión.
func Connect(ctx context.Context, cfg Config) (*SlotStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.Addr, err)
	}
	return New(client, cfg.Prefix), nil
}

// Get lee el slot key. Devuelve domain.ErrNotFound si no existe.
func (s *SlotStorage) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("%w: slot %q", domain.ErrNotFound, key)
		}
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return data, nil
}

// Set sobrescribe el slot key.
func (s *SlotStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

// Close cierra el cliente.
func (s *SlotStorage) Close() error {
	return s.client.Close()
}
