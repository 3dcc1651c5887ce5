package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

func ids(products []entity.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

// "Todos" devuelve la misma secuencia, en el mismo orden.
func TestFilter_TodosDevuelveTodo(t *testing.T) {
	seeds := catalog.SeedProducts()
	got := catalog.Filter(seeds, catalog.ShowAll)
	assert.Equal(t, seeds, got)

	got = catalog.Filter(seeds, "")
	assert.Equal(t, seeds, got, "selección vacía equivale a Todos")
}

func TestFilter_NoCompartePorcionDeEntrada(t *testing.T) {
	seeds := catalog.SeedProducts()
	got := catalog.Filter(seeds, catalog.ShowAll)
	got[0].Name = "otro"
	assert.Equal(t, "Body Estampado de Nube", seeds[0].Name)
}

// Niñas sobre la semilla: exactamente los productos 3 y 6, en orden.
func TestFilter_CategoriaPrincipal(t *testing.T) {
	got := catalog.Filter(catalog.SeedProducts(), "Niñas")
	assert.Equal(t, []int{3, 6}, ids(got))
	for _, p := range got {
		assert.Equal(t, catalog.Ninas, p.Category)
	}
}

func TestFilter_CategoriaEnFormaDescompuesta(t *testing.T) {
	// "Ni" + n + tilde combinante + "as"
	decomposed := "Nin\u0303as"
	got := catalog.Filter(catalog.SeedProducts(), decomposed)
	assert.Equal(t, []int{3, 6}, ids(got))
}

func TestFilter_Subcategoria(t *testing.T) {
	got := catalog.Filter(catalog.SeedProducts(), "Pijama")
	assert.Equal(t, []int{2}, ids(got))
}

func TestFilter_SubcategoriaCompartidaCruzaCategorias(t *testing.T) {
	products := catalog.SeedProducts()
	products = append(products, entity.Product{ID: 8, Category: catalog.Bebe, Subcategory: "Pantalones"})

	got := catalog.Filter(products, "Pantalones")
	assert.Equal(t, []int{7, 8}, ids(got))

	scoped := catalog.FilterScoped(products, catalog.Bebe, "Pantalones")
	assert.Equal(t, []int{8}, ids(scoped))
}

func TestFilterScoped_SinSubcategoriaEsCategoria(t *testing.T) {
	got := catalog.FilterScoped(catalog.SeedProducts(), catalog.Ninos, "")
	assert.Equal(t, []int{4, 7}, ids(got))
}

func TestFilter_SeleccionDesconocida(t *testing.T) {
	got := catalog.Filter(catalog.SeedProducts(), "Zapatos")
	require.NotNil(t, got)
	assert.Empty(t, got)
}
