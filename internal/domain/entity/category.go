package entity

// MainCategory categoría principal del catálogo (Bebé, Niñas, Niños).
type MainCategory string

// Category categoría principal con sus subcategorías en orden de presentación.
type Category struct {
	Name          MainCategory `json:"name"`
	Subcategories []string     `json:"subcategories"`
}
