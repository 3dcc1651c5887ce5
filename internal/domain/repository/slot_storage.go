package repository

import "context"

// SlotStorage define el puerto de almacenamiento durable del catálogo: un valor con nombre
// que se lee completo al iniciar y se sobrescribe completo en cada cambio.
// Get devuelve domain.ErrNotFound si el slot nunca fue escrito.
type SlotStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
