// Package boltdb implementa el slot del catálogo sobre un archivo bbolt local:
// el equivalente en servidor del almacenamiento local del navegador.
package boltdb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/domain/repository"
)

var _ repository.SlotStorage = (*SlotStorage)(nil)

// DefaultBucket bucket donde se guardan los slots.
const DefaultBucket = "tienda"

// SlotStorage slot durable en un archivo bbolt.
type SlotStorage struct {
	db     *bolt.DB
	bucket []byte
}

// Open abre (o crea) el archivo en path y asegura el bucket.
func Open(path string) (*SlotStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("crear directorio %s: %w", dir, err)
		}
	}
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("abrir bbolt %s: %w", path, err)
	}
	s := &SlotStorage{db: db, bucket: []byte(DefaultBucket)}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(s.bucket)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crear bucket: %w", err)
	}
	return s, nil
}

// Get lee el slot key. Devuelve domain.ErrNotFound si no existe.
func (s *SlotStorage) Get(_ context.Context, key string) ([]byte, error) {
	var out []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v == nil {
			return fmt.Errorf("%w: slot %q", domain.ErrNotFound, key)
		}
		// v solo es válido dentro de la transacción.
		out = append([]byte(nil), v...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Set sobrescribe el slot key en una transacción.
func (s *SlotStorage) Set(_ context.Context, key string, value []byte) error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("guardar slot %q: %w", key, err)
	}
	return nil
}

// Close cierra el archivo.
func (s *SlotStorage) Close() error {
	return s.db.Close()
}
