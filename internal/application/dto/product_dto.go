package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// ProductResponse salida de un producto para la vista pública y la de administración.
type ProductResponse struct {
	ID           int             `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	PriceLabel   string          `json:"priceLabel"`
	Description  string          `json:"description"`
	ImageURLs    []string        `json:"imageUrls"`
	PrimaryImage string          `json:"primaryImage"`
	Category     string          `json:"category"`
	Subcategory  string          `json:"subcategory"`
	Brand        string          `json:"brand"`
	Color        string          `json:"color"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	SoldOut      bool            `json:"soldOut"`
	StockLabel   string          `json:"stockLabel"`
}

// ProductListResponse vista filtrada del catálogo.
type ProductListResponse struct {
	Selection string            `json:"selection"`
	Items     []ProductResponse `json:"items"`
	Total     int               `json:"total"`
}

// ToProductResponse convierte la entidad en su representación HTTP.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		PriceLabel:   p.PriceLabel(),
		Description:  p.Description,
		ImageURLs:    p.ImageURLs,
		PrimaryImage: p.PrimaryImage(),
		Category:     string(p.Category),
		Subcategory:  p.Subcategory,
		Brand:        p.Brand,
		Color:        p.Color,
		Size:         p.Size,
		Quantity:     p.Quantity,
		SoldOut:      p.SoldOut(),
		StockLabel:   stockLabel(p),
	}
}

func stockLabel(p entity.Product) string {
	if p.SoldOut() {
		return "Agotado"
	}
	return fmt.Sprintf("En Stock: %d", p.Quantity)
}

// ToProductList arma la lista de respuesta, nunca nil.
func ToProductList(selection string, products []entity.Product) ProductListResponse {
	items := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, ToProductResponse(p))
	}
	return ProductListResponse{Selection: selection, Items: items, Total: len(items)}
}
