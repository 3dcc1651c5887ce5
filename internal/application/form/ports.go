package form

import (
	"context"

	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// CatalogWriter operaciones del almacén que usa el formulario.
type CatalogWriter interface {
	Create(ctx context.Context, p entity.Product) (entity.Product, error)
	Update(ctx context.Context, p entity.Product) error
}

// ImageEncoder convierte un lote de imágenes en data URIs, en el mismo orden de entrada.
// Si una conversión falla, el lote completo falla y no devuelve resultados parciales.
type ImageEncoder interface {
	EncodeAll(ctx context.Context, sources []entity.ImageSource) ([]string, error)
}
