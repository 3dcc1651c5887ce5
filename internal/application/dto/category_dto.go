package dto

// CategoryResponse categoría principal con sus subcategorías.
type CategoryResponse struct {
	Name          string   `json:"name"`
	Subcategories []string `json:"subcategories"`
}

// CategoriesResponse taxonomía completa, con la selección "Todos" como primera opción.
type CategoriesResponse struct {
	ShowAll    string             `json:"showAll"`
	Categories []CategoryResponse `json:"categories"`
}

// SizesResponse tallas disponibles.
type SizesResponse struct {
	Sizes []string `json:"sizes"`
}
