package entity

import "github.com/shopspring/decimal"

// Product representa una prenda del catálogo de la tienda.
// ImageURLs conserva el orden de carga; la primera es la imagen principal.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	ImageURLs   []string        `json:"imageUrls"`
	Category    MainCategory    `json:"category"`
	Subcategory string          `json:"subcategory"`
	Brand       string          `json:"brand"`
	Color       string          `json:"color"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
}

// SoldOut indica si el producto está agotado (cantidad cero).
func (p Product) SoldOut() bool {
	return p.Quantity == 0
}

// PrimaryImage devuelve la primera imagen o "" si no tiene.
func (p Product) PrimaryImage() string {
	if len(p.ImageURLs) == 0 {
		return ""
	}
	return p.ImageURLs[0]
}

// PriceLabel precio con dos decimales y símbolo, ej. "$15.99".
func (p Product) PriceLabel() string {
	return "$" + p.Price.StringFixed(2)
}

// Clone devuelve una copia que no comparte el slice de imágenes.
func (p Product) Clone() Product {
	c := p
	if p.ImageURLs != nil {
		c.ImageURLs = append([]string(nil), p.ImageURLs...)
	}
	return c
}
