package http

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-infantil/internal/application/catalog"
	"github.com/jhoicas/tienda-infantil/internal/application/dto"
	domaincatalog "github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// CatalogPrinter genera el catálogo imprimible.
type CatalogPrinter interface {
	GenerateCatalogPDF(ctx context.Context, selection string, products []entity.Product) ([]byte, error)
}

// CatalogHandler vista pública del catálogo.
type CatalogHandler struct {
	store   *catalog.Store
	printer CatalogPrinter
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(store *catalog.Store, printer CatalogPrinter) *CatalogHandler {
	return &CatalogHandler{store: store, printer: printer}
}

// Categories godoc
// @Summary      Listar categorías y subcategorías
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CategoriesResponse
// @Router       /api/categories [get]
func (h *CatalogHandler) Categories(c *fiber.Ctx) error {
	cats := domaincatalog.Categories()
	out := dto.CategoriesResponse{ShowAll: domaincatalog.ShowAll, Categories: make([]dto.CategoryResponse, 0, len(cats))}
	for _, cat := range cats {
		out.Categories = append(out.Categories, dto.CategoryResponse{Name: string(cat.Name), Subcategories: cat.Subcategories})
	}
	return c.JSON(out)
}

// Sizes godoc
// @Summary      Listar tallas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.SizesResponse
// @Router       /api/sizes [get]
func (h *CatalogHandler) Sizes(c *fiber.Ctx) error {
	return c.JSON(dto.SizesResponse{Sizes: domaincatalog.Sizes()})
}

// List godoc
// @Summary      Listar productos filtrados
// @Description  category: "Todos", una categoría principal o una subcategoría. main limita la subcategoría a una categoría principal.
// @Tags         catalog
// @Produce      json
// @Param        category  query  string  false  "Selección"  default(Todos)
// @Param        main      query  string  false  "Categoría principal"
// @Success      200       {object}  dto.ProductListResponse
// @Router       /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	selection, products := h.filtered(c)
	return c.JSON(dto.ToProductList(selection, products))
}

// GetByID godoc
// @Summary      Detalle de producto
// @Tags         catalog
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *CatalogHandler) GetByID(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	p, err := h.store.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ToProductResponse(p))
}

// PDF godoc
// @Summary      Catálogo imprimible
// @Tags         catalog
// @Produce      application/pdf
// @Param        category  query  string  false  "Selección"  default(Todos)
// @Success      200
// @Router       /api/catalog/pdf [get]
func (h *CatalogHandler) PDF(c *fiber.Ctx) error {
	selection, products := h.filtered(c)
	doc, err := h.printer.GenerateCatalogPDF(c.UserContext(), selection, products)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`inline; filename="catalogo-%s.pdf"`, slug(selection)))
	return c.Send(doc)
}

func (h *CatalogHandler) filtered(c *fiber.Ctx) (string, []entity.Product) {
	selection := domaincatalog.Normalize(c.Query("category", domaincatalog.ShowAll))
	if selection == "" {
		selection = domaincatalog.ShowAll
	}
	products := h.store.List()
	if main := c.Query("main"); main != "" && !domaincatalog.IsMainCategory(selection) && selection != domaincatalog.ShowAll {
		return selection, domaincatalog.FilterScoped(products, entity.MainCategory(main), selection)
	}
	return selection, domaincatalog.Filter(products, selection)
}

// slug nombre de archivo ASCII a partir de la selección ("Niñas" -> "ninas").
func slug(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	ascii, _, err := transform.String(t, s)
	if err != nil {
		ascii = s
	}
	out := make([]byte, 0, len(ascii))
	for _, r := range strings.ToLower(ascii) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, byte(r))
		case len(out) > 0 && out[len(out)-1] != '-':
			out = append(out, '-')
		}
	}
	if len(out) == 0 {
		return "todos"
	}
	return strings.TrimSuffix(string(out), "-")
}
