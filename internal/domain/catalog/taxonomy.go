// Package catalog contiene la taxonomía fija de la tienda (categorías, subcategorías y tallas),
// el conjunto de productos semilla y el filtro de vista del catálogo. Todo es dato estático o
// función pura: no hay estado mutable en este paquete.
package catalog

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// Categorías principales.
const (
	Bebe  entity.MainCategory = "Bebé"
	Ninas entity.MainCategory = "Niñas"
	Ninos entity.MainCategory = "Niños"
)

var categories = []entity.Category{
	{Name: Bebe, Subcategories: []string{"Playera", "Body", "Pijama", "Conjuntos", "Pantalones", "Accesorios"}},
	{Name: Ninas, Subcategories: []string{"Vestidos", "Blusas", "Pantalones", "Faldas", "Suéter", "Chamarras", "Accesorios"}},
	{Name: Ninos, Subcategories: []string{"Camisetas", "Pantalones", "Playeras", "Suéter", "Chamarras", "Accesorios"}},
}

var sizes = []string{
	"0-3 Meses", "3-6 Meses", "6-9 Meses", "9-12 Meses",
	"12-18 Meses", "18-24 Meses", "2 Años", "3 Años",
	"4 Años", "5 Años", "Chica", "Mediana", "Grande",
}

// Normalize recorta espacios y lleva el texto a forma NFC, de modo que "Niñas" escrito con
// la tilde descompuesta (n + U+0303) compare igual que la forma compuesta.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// Categories devuelve las categorías principales con sus subcategorías, en orden.
func Categories() []entity.Category {
	out := make([]entity.Category, len(categories))
	for i, c := range categories {
		out[i] = entity.Category{Name: c.Name, Subcategories: append([]string(nil), c.Subcategories...)}
	}
	return out
}

// SubcategoriesFor devuelve las subcategorías de main, o una lista vacía si no existe.
func SubcategoriesFor(main entity.MainCategory) []string {
	main = entity.MainCategory(Normalize(string(main)))
	for _, c := range categories {
		if c.Name == main {
			return append([]string(nil), c.Subcategories...)
		}
	}
	return []string{}
}

// FirstSubcategory devuelve la primera subcategoría registrada para main o "".
func FirstSubcategory(main entity.MainCategory) string {
	subs := SubcategoriesFor(main)
	if len(subs) == 0 {
		return ""
	}
	return subs[0]
}

// Sizes devuelve las tallas válidas en orden.
func Sizes() []string {
	return append([]string(nil), sizes...)
}

// DefaultCategory es la primera categoría configurada.
func DefaultCategory() entity.MainCategory {
	return categories[0].Name
}

// DefaultSize es la primera talla configurada.
func DefaultSize() string {
	return sizes[0]
}

// IsMainCategory indica si name es una categoría principal.
func IsMainCategory(name string) bool {
	name = Normalize(name)
	for _, c := range categories {
		if string(c.Name) == name {
			return true
		}
	}
	return false
}

// HasSubcategory indica si sub está registrada bajo main.
func HasSubcategory(main entity.MainCategory, sub string) bool {
	sub = Normalize(sub)
	for _, s := range SubcategoriesFor(main) {
		if s == sub {
			return true
		}
	}
	return false
}

// IsSize indica si size pertenece a la lista de tallas.
func IsSize(size string) bool {
	size = Normalize(size)
	for _, s := range sizes {
		if s == size {
			return true
		}
	}
	return false
}
