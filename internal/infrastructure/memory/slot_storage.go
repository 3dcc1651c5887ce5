// Package memory implementa el slot del catálogo en memoria del proceso (pruebas y demos).
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/domain/repository"
)

var _ repository.SlotStorage = (*SlotStorage)(nil)

// SlotStorage guarda copias de los valores en un mapa protegido por mutex.
type SlotStorage struct {
	mu     sync.RWMutex
	values map[string][]byte
	writes int
}

// NewSlotStorage construye un almacenamiento vacío.
func NewSlotStorage() *SlotStorage {
	return &SlotStorage{values: make(map[string][]byte)}
}

// Get devuelve una copia del valor guardado en key.
func (s *SlotStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: slot %q", domain.ErrNotFound, key)
	}
	return append([]byte(nil), v...), nil
}

// Set sobrescribe el valor de key.
func (s *SlotStorage) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	s.writes++
	return nil
}

// Writes cantidad de escrituras realizadas.
func (s *SlotStorage) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}
