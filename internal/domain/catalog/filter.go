package catalog

import "github.com/jhoicas/tienda-infantil/internal/domain/entity"

// ShowAll es la selección que muestra el catálogo completo.
const ShowAll = "Todos"

// Filter devuelve la vista del catálogo para una selección:
//   - ShowAll (o vacío): todos los productos en su orden original.
//   - nombre de categoría principal: productos con esa categoría.
//   - cualquier otro valor: productos con esa subcategoría, sin importar la categoría principal.
//
// El resultado nunca comparte el arreglo de entrada.
func Filter(products []entity.Product, selection string) []entity.Product {
	selection = Normalize(selection)
	if selection == "" || selection == ShowAll {
		return append([]entity.Product{}, products...)
	}
	if IsMainCategory(selection) {
		return filterBy(products, func(p entity.Product) bool {
			return string(p.Category) == selection
		})
	}
	return filterBy(products, func(p entity.Product) bool {
		return p.Subcategory == selection
	})
}

// FilterScoped limita una subcategoría a una categoría principal. Resuelve nombres compartidos
// como "Pantalones", que existen en las tres categorías. Con sub vacío equivale a Filter(products, main).
func FilterScoped(products []entity.Product, main entity.MainCategory, sub string) []entity.Product {
	main = entity.MainCategory(Normalize(string(main)))
	sub = Normalize(sub)
	if sub == "" {
		return Filter(products, string(main))
	}
	return filterBy(products, func(p entity.Product) bool {
		return p.Category == main && p.Subcategory == sub
	})
}

func filterBy(products []entity.Product, keep func(entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
