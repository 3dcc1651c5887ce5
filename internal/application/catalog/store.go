// Package catalog implementa el almacén autoritativo de productos: lista en memoria en orden de
// inserción, sincronizada con el slot durable después de cada cambio.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	domaincatalog "github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
	"github.com/jhoicas/tienda-infantil/internal/domain/repository"
)

// DefaultSlotKey nombre del slot donde se guarda el catálogo.
const DefaultSlotKey = "products"

// Origen de los datos cargados por Initialize.
const (
	SourceStorage = "storage"
	SourceSeed    = "seed"
)

// Options configuración del almacén.
type Options struct {
	SlotKey string
	// StrictNotFound hace que Update y Delete devuelvan domain.ErrNotFound cuando el id no existe.
	// Por defecto ambos son no-op silenciosos.
	StrictNotFound bool
}

// PersistenceStatus estado de la última escritura al slot durable.
type PersistenceStatus struct {
	OK          bool      `json:"ok"`
	LastError   string    `json:"last_error,omitempty"`
	LastErrorAt time.Time `json:"last_error_at,omitempty"`
	LastSavedAt time.Time `json:"last_saved_at,omitempty"`
}

// Store almacén del catálogo. Seguro para uso concurrente: cada mutación es un ciclo
// leer-modificar-persistir completo bajo el mutex.
type Store struct {
	mu          sync.RWMutex
	storage     repository.SlotStorage
	key         string
	strict      bool
	log         zerolog.Logger
	products    []entity.Product
	initialized bool
	source      string
	status      PersistenceStatus
}

// NewStore construye el almacén. Initialize debe llamarse antes de la primera lectura.
func NewStore(storage repository.SlotStorage, opts Options, log zerolog.Logger) *Store {
	key := opts.SlotKey
	if key == "" {
		key = DefaultSlotKey
	}
	return &Store{
		storage: storage,
		key:     key,
		strict:  opts.StrictNotFound,
		log:     log.With().Str("component", "catalog_store").Str("slot", key).Logger(),
		status:  PersistenceStatus{OK: true},
	}
}

// Initialize carga el catálogo del slot durable. Si el slot está vacío, no se puede leer o
// contiene datos inválidos, usa el catálogo semilla. Solo la primera llamada tiene efecto.
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		return
	}
	s.initialized = true

	products, err := s.load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.Info().Msg("slot vacío, se usa el catálogo semilla")
		} else {
			s.log.Warn().Err(err).Msg("no se pudo cargar el catálogo, se usa el catálogo semilla")
		}
		s.products = domaincatalog.SeedProducts()
		s.source = SourceSeed
		return
	}
	s.products = products
	s.source = SourceStorage
	s.log.Info().Int("products", len(products)).Msg("catálogo cargado")
}

func (s *Store) load(ctx context.Context) ([]entity.Product, error) {
	data, err := s.storage.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("%w: decodificar catálogo: %v", domain.ErrPersistence, err)
	}
	if products == nil {
		return nil, fmt.Errorf("%w: catálogo nulo", domain.ErrPersistence)
	}
	return products, nil
}

// Source indica de dónde salió el catálogo inicial (SourceStorage o SourceSeed).
func (s *Store) Source() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// List devuelve una copia de todos los productos en orden de inserción.
func (s *Store) List() []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]entity.Product, len(s.products))
	for i, p := range s.products {
		out[i] = p.Clone()
	}
	return out
}

// Get obtiene un producto por id.
func (s *Store) Get(id int) (entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.indexOf(id)
	if i < 0 {
		return entity.Product{}, fmt.Errorf("%w: producto %d", domain.ErrNotFound, id)
	}
	return s.products[i].Clone(), nil
}

// Create agrega un producto al final del catálogo. El id recibido se ignora: se asigna
// 1 si el catálogo está vacío o el máximo existente + 1.
func (s *Store) Create(ctx context.Context, p entity.Product) (entity.Product, error) {
	if err := ctx.Err(); err != nil {
		return entity.Product{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	created := p.Clone()
	created.ID = s.nextID()
	s.products = append(s.products, created)
	s.persist(ctx)
	s.log.Debug().Int("id", created.ID).Str("name", created.Name).Msg("producto creado")
	return created.Clone(), nil
}

// Update reemplaza el registro completo con el mismo id, conservando su posición.
func (s *Store) Update(ctx context.Context, p entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(p.ID)
	if i < 0 {
		return s.missing("actualizar", p.ID)
	}
	s.products[i] = p.Clone()
	s.persist(ctx)
	s.log.Debug().Int("id", p.ID).Msg("producto actualizado")
	return nil
}

// Delete elimina el producto con el id dado.
func (s *Store) Delete(ctx context.Context, id int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return s.missing("eliminar", id)
	}
	s.products = append(s.products[:i:i], s.products[i+1:]...)
	s.persist(ctx)
	s.log.Debug().Int("id", id).Msg("producto eliminado")
	return nil
}

// Replace sustituye el catálogo completo y lo persiste (usado por catalogctl seed).
func (s *Store) Replace(ctx context.Context, products []entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.initialized = true
	s.products = make([]entity.Product, len(products))
	for i, p := range products {
		s.products[i] = p.Clone()
	}
	s.persist(ctx)
	if !s.status.OK {
		return fmt.Errorf("%w: %s", domain.ErrPersistence, s.status.LastError)
	}
	return nil
}

// PersistenceStatus devuelve el resultado de la última escritura al slot.
func (s *Store) PersistenceStatus() PersistenceStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Store) missing(op string, id int) error {
	if s.strict {
		return fmt.Errorf("%w: %s producto %d", domain.ErrNotFound, op, id)
	}
	s.log.Debug().Int("id", id).Str("op", op).Msg("id inexistente, operación ignorada")
	return nil
}

func (s *Store) indexOf(id int) int {
	for i, p := range s.products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) nextID() int {
	if len(s.products) == 0 {
		return 1
	}
	maxID := s.products[0].ID
	for _, p := range s.products[1:] {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

// persist sobrescribe el slot con el catálogo completo. Un fallo no revierte la mutación:
// se registra en el log y queda visible en PersistenceStatus.
func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.products)
	if err == nil {
		err = s.storage.Set(ctx, s.key, data)
	}
	if err != nil {
		s.status.OK = false
		s.status.LastError = err.Error()
		s.status.LastErrorAt = time.Now()
		s.log.Error().Err(fmt.Errorf("%w: %v", domain.ErrPersistence, err)).
			Int("products", len(s.products)).
			Msg("no se pudo guardar el catálogo")
		return
	}
	s.status.OK = true
	s.status.LastSavedAt = time.Now()
}
