package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

const placeholder = "https://via.placeholder.com/600x600.png?text="

// SeedProducts devuelve el catálogo inicial usado cuando no hay datos persistidos.
// Cada llamada devuelve una copia nueva.
func SeedProducts() []entity.Product {
	return []entity.Product{
		{
			ID:          1,
			Name:        "Body Estampado de Nube",
			Price:       decimal.RequireFromString("15.99"),
			Description: "Suave body de algodón con un adorable estampado de nubes. Perfecto para el día a día de tu bebé.",
			ImageURLs:   []string{placeholder + "Body+Nube+1"},
			Category:    Bebe,
			Subcategory: "Body",
			Brand:       "BabyJoy",
			Color:       "Blanco",
			Size:        "3-6 Meses",
			Quantity:    15,
		},
		{
			ID:          2,
			Name:        "Pijama de Dinosaurio",
			Price:       decimal.RequireFromString("22.5"),
			Description: "Pijama de dos piezas con divertido estampado de dinosaurios. Hecho de algodón orgánico.",
			ImageURLs:   []string{placeholder + "Pijama+Dino+1"},
			Category:    Bebe,
			Subcategory: "Pijama",
			Brand:       "MiniPaws",
			Color:       "Verde",
			Size:        "12-18 Meses",
			Quantity:    8,
		},
		{
			ID:          3,
			Name:        "Vestido Floral de Verano",
			Price:       decimal.RequireFromString("29.99"),
			Description: "Precioso vestido de verano con estampado floral. Ligero y cómodo para los días de calor.",
			ImageURLs:   []string{placeholder + "Vestido+Floral+1", placeholder + "Vestido+Floral+2"},
			Category:    Ninas,
			Subcategory: "Vestidos",
			Brand:       "ChicKids",
			Color:       "Rosa",
			Size:        "4 Años",
			Quantity:    12,
		},
		{
			ID:          4,
			Name:        "Camiseta de Superhéroe",
			Price:       decimal.RequireFromString("18"),
			Description: "Camiseta de algodón con el logo de su superhéroe favorito. Ideal para jugar sin parar.",
			ImageURLs:   []string{placeholder + "Camiseta+Super+1"},
			Category:    Ninos,
			Subcategory: "Camisetas",
			Brand:       "HeroWear",
			Color:       "Azul",
			Size:        "5 Años",
			Quantity:    20,
		},
		{
			ID:          5,
			Name:        "Conjunto de Algodón",
			Price:       decimal.RequireFromString("25"),
			Description: "Cómodo conjunto de dos piezas de algodón para bebé. Incluye pantalón y buzo.",
			ImageURLs:   []string{placeholder + "Conjunto+Bebe+1"},
			Category:    Bebe,
			Subcategory: "Conjuntos",
			Brand:       "BabyJoy",
			Color:       "Gris",
			Size:        "6-9 Meses",
			Quantity:    0,
		},
		{
			ID:          6,
			Name:        "Falda de Tul Brillante",
			Price:       decimal.RequireFromString("20"),
			Description: "Falda de tul con brillos para niñas. Perfecta para ocasiones especiales.",
			ImageURLs:   []string{placeholder + "Falda+Tul+1"},
			Category:    Ninas,
			Subcategory: "Faldas",
			Brand:       "ChicKids",
			Color:       "Dorado",
			Size:        "3 Años",
			Quantity:    7,
		},
		{
			ID:          7,
			Name:        "Pantalón de Jean",
			Price:       decimal.RequireFromString("24.5"),
			Description: "Pantalón de jean resistente y moderno para niños. Ideal para el verano.",
			ImageURLs:   []string{placeholder + "Bermuda+Jean+1", placeholder + "Bermuda+Jean+2", placeholder + "Bermuda+Jean+3"},
			Category:    Ninos,
			Subcategory: "Pantalones",
			Brand:       "UrbanKid",
			Color:       "Denim",
			Size:        "Grande",
			Quantity:    18,
		},
	}
}
