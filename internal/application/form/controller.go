// Package form implementa el formulario de administración: un único borrador editable
// (nuevo o existente), la carga de imágenes como data URIs y el envío al catálogo.
package form

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// Mode estado del formulario.
type Mode string

const (
	ModeCreating Mode = "creating"
	ModeEditing  Mode = "editing"
)

// Campos editables del borrador.
const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldBrand       = "brand"
	FieldColor       = "color"
	FieldSize        = "size"
	FieldQuantity    = "quantity"
	FieldCategory    = "category"
	FieldSubcategory = "subcategory"
	FieldImages      = "imageUrls"
)

// Mensajes de confirmación mostrados tras un envío exitoso.
const (
	MsgCreated = "¡Producto agregado con éxito!"
	MsgUpdated = "¡Producto actualizado con éxito!"
)

// Draft copia de trabajo de un producto. Precio y cantidad se guardan como texto,
// tal como llegan del formulario, y se validan al enviar.
type Draft struct {
	Name        string              `json:"name"`
	Price       string              `json:"price"`
	Description string              `json:"description"`
	Brand       string              `json:"brand"`
	Color       string              `json:"color"`
	Size        string              `json:"size"`
	Quantity    string              `json:"quantity"`
	Category    entity.MainCategory `json:"category"`
	Subcategory string              `json:"subcategory"`
	ImageURLs   []string            `json:"imageUrls"`
}

func emptyDraft() Draft {
	main := catalog.DefaultCategory()
	return Draft{
		Size:        catalog.DefaultSize(),
		Category:    main,
		Subcategory: catalog.FirstSubcategory(main),
		ImageURLs:   []string{},
	}
}

func (d Draft) clone() Draft {
	c := d
	c.ImageURLs = append([]string{}, d.ImageURLs...)
	return c
}

// SubmitResult resultado de un envío exitoso.
type SubmitResult struct {
	Product entity.Product
	Created bool
	Message string
}

// Controller mantiene el borrador del formulario. Seguro para uso concurrente.
type Controller struct {
	mu        sync.Mutex
	store     CatalogWriter
	encoder   ImageEncoder
	log       zerolog.Logger
	draft     Draft
	mode      Mode
	editingID int
}

// NewController construye el formulario en modo creación con el borrador por defecto.
func NewController(store CatalogWriter, encoder ImageEncoder, log zerolog.Logger) *Controller {
	return &Controller{
		store:   store,
		encoder: encoder,
		log:     log.With().Str("component", "product_form").Logger(),
		draft:   emptyDraft(),
		mode:    ModeCreating,
	}
}

// Draft devuelve una copia del borrador actual.
func (c *Controller) Draft() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.clone()
}

// Mode devuelve el estado actual del formulario.
func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// EditingID id del producto en edición, 0 en modo creación.
func (c *Controller) EditingID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// LoadForEdit copia un producto existente al borrador y pasa a modo edición.
func (c *Controller) LoadForEdit(p entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = Draft{
		Name:        p.Name,
		Price:       p.Price.String(),
		Description: p.Description,
		Brand:       p.Brand,
		Color:       p.Color,
		Size:        p.Size,
		Quantity:    strconv.Itoa(p.Quantity),
		Category:    p.Category,
		Subcategory: p.Subcategory,
		ImageURLs:   append([]string{}, p.ImageURLs...),
	}
	c.mode = ModeEditing
	c.editingID = p.ID
}

// Reset limpia el borrador a sus valores por defecto y sale del modo edición.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resetLocked()
}

// CancelEdit descarta el borrador sin enviar.
func (c *Controller) CancelEdit() {
	c.Reset()
}

func (c *Controller) resetLocked() {
	c.draft = emptyDraft()
	c.mode = ModeCreating
	c.editingID = 0
}

// SetField actualiza un campo del borrador. Cambiar la categoría reinicia la subcategoría
// a la primera registrada bajo la nueva categoría.
func (c *Controller) SetField(name, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch name {
	case FieldName:
		c.draft.Name = value
	case FieldPrice:
		c.draft.Price = value
	case FieldDescription:
		c.draft.Description = value
	case FieldBrand:
		c.draft.Brand = value
	case FieldColor:
		c.draft.Color = value
	case FieldSize:
		c.draft.Size = catalog.Normalize(value)
	case FieldQuantity:
		c.draft.Quantity = value
	case FieldCategory:
		main := entity.MainCategory(catalog.Normalize(value))
		c.draft.Category = main
		c.draft.Subcategory = catalog.FirstSubcategory(main)
	case FieldSubcategory:
		c.draft.Subcategory = catalog.Normalize(value)
	default:
		return fmt.Errorf("%w: campo desconocido %q", domain.ErrInvalidInput, name)
	}
	return nil
}

// AddImages convierte las imágenes a data URIs y las agrega al final del borrador, en orden.
// Si alguna conversión falla no se agrega ninguna; las imágenes previas se conservan.
func (c *Controller) AddImages(ctx context.Context, sources []entity.ImageSource) (int, error) {
	if len(sources) == 0 {
		return 0, nil
	}
	batchID := uuid.New().String()
	log := c.log.With().Str("batch_id", batchID).Int("files", len(sources)).Logger()

	urls, err := c.encoder.EncodeAll(ctx, sources)
	if err != nil {
		log.Warn().Err(err).Msg("lote de imágenes rechazado")
		return 0, fmt.Errorf("%w: %v", domain.ErrConversion, err)
	}

	c.mu.Lock()
	c.draft.ImageURLs = append(c.draft.ImageURLs, urls...)
	total := len(c.draft.ImageURLs)
	c.mu.Unlock()

	log.Debug().Int("total", total).Msg("imágenes agregadas al borrador")
	return total, nil
}

// RemoveImage elimina la imagen en la posición index.
func (c *Controller) RemoveImage(index int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.draft.ImageURLs) {
		return fmt.Errorf("%w: índice de imagen %d fuera de rango", domain.ErrInvalidInput, index)
	}
	c.draft.ImageURLs = append(c.draft.ImageURLs[:index:index], c.draft.ImageURLs[index+1:]...)
	return nil
}

// Submit valida el borrador y lo envía al catálogo: Update en modo edición (con el id
// original) o Create en modo creación. Tras un envío exitoso el borrador vuelve a los valores
// por defecto. Si la validación o el almacén fallan, el borrador se conserva.
func (c *Controller) Submit(ctx context.Context) (SubmitResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, err := c.draft.toProduct()
	if err != nil {
		return SubmitResult{}, err
	}

	var res SubmitResult
	if c.mode == ModeEditing {
		p.ID = c.editingID
		if err := c.store.Update(ctx, p); err != nil {
			return SubmitResult{}, err
		}
		res = SubmitResult{Product: p, Message: MsgUpdated}
	} else {
		created, err := c.store.Create(ctx, p)
		if err != nil {
			return SubmitResult{}, err
		}
		res = SubmitResult{Product: created, Created: true, Message: MsgCreated}
	}

	c.log.Info().Int("id", res.Product.ID).Bool("created", res.Created).Msg("producto guardado desde el formulario")
	c.resetLocked()
	return res, nil
}

// toProduct valida el borrador y lo transforma en un producto sin id.
func (d Draft) toProduct() (entity.Product, error) {
	if len(d.ImageURLs) == 0 {
		return entity.Product{}, invalid(FieldImages, "se requiere al menos una imagen")
	}
	if strings.TrimSpace(d.Name) == "" {
		return entity.Product{}, invalid(FieldName, "el nombre es obligatorio")
	}
	price, err := decimal.NewFromString(strings.TrimSpace(d.Price))
	if err != nil {
		return entity.Product{}, invalid(FieldPrice, fmt.Sprintf("precio inválido %q", d.Price))
	}
	if price.IsNegative() {
		return entity.Product{}, invalid(FieldPrice, "el precio no puede ser negativo")
	}
	qty, err := strconv.Atoi(strings.TrimSpace(d.Quantity))
	if err != nil {
		return entity.Product{}, invalid(FieldQuantity, fmt.Sprintf("cantidad inválida %q", d.Quantity))
	}
	if qty < 0 {
		return entity.Product{}, invalid(FieldQuantity, "la cantidad no puede ser negativa")
	}
	if !catalog.IsMainCategory(string(d.Category)) {
		return entity.Product{}, invalid(FieldCategory, fmt.Sprintf("categoría desconocida %q", d.Category))
	}
	if !catalog.HasSubcategory(d.Category, d.Subcategory) {
		return entity.Product{}, invalid(FieldSubcategory,
			fmt.Sprintf("%q no pertenece a %q", d.Subcategory, d.Category))
	}
	if !catalog.IsSize(d.Size) {
		return entity.Product{}, invalid(FieldSize, fmt.Sprintf("talla desconocida %q", d.Size))
	}
	return entity.Product{
		Name:        d.Name,
		Price:       price,
		Description: d.Description,
		ImageURLs:   append([]string{}, d.ImageURLs...),
		Category:    d.Category,
		Subcategory: d.Subcategory,
		Brand:       d.Brand,
		Color:       d.Color,
		Size:        d.Size,
		Quantity:    qty,
	}, nil
}
