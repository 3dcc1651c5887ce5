package form_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-infantil/internal/application/form"
	"github.com/jhoicas/tienda-infantil/internal/domain"
	"github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	created   []entity.Product
	updated   []entity.Product
	updateErr error
}

func (s *fakeStore) Create(_ context.Context, p entity.Product) (entity.Product, error) {
	p.ID = 100 + len(s.created)
	s.created = append(s.created, p)
	return p, nil
}

func (s *fakeStore) Update(_ context.Context, p entity.Product) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, p)
	return nil
}

// fakeEncoder devuelve "data:<nombre>" por imagen, o err si está definido.
type fakeEncoder struct {
	err error
}

func (e fakeEncoder) EncodeAll(_ context.Context, sources []entity.ImageSource) ([]string, error) {
	if e.err != nil {
		return nil, e.err
	}
	out := make([]string, len(sources))
	for i, s := range sources {
		out[i] = "data:" + s.Name
	}
	return out, nil
}

func images(names ...string) []entity.ImageSource {
	out := make([]entity.ImageSource, len(names))
	for i, n := range names {
		out[i] = entity.ImageSource{Name: n}
	}
	return out
}

func newController(store *fakeStore, enc fakeEncoder) *form.Controller {
	return form.NewController(store, enc, zerolog.Nop())
}

// fillValid completa un borrador válido sin imágenes.
func fillValid(t *testing.T, c *form.Controller) {
	t.Helper()
	require.NoError(t, c.SetField(form.FieldName, "Body"))
	require.NoError(t, c.SetField(form.FieldPrice, "15.99"))
	require.NoError(t, c.SetField(form.FieldQuantity, "15"))
	require.NoError(t, c.SetField(form.FieldBrand, "BabyJoy"))
	require.NoError(t, c.SetField(form.FieldColor, "Blanco"))
	require.NoError(t, c.SetField(form.FieldCategory, "Bebé"))
	require.NoError(t, c.SetField(form.FieldSubcategory, "Body"))
	require.NoError(t, c.SetField(form.FieldSize, "3-6 Meses"))
}

// ──────────────────────────────────────────────────────────────────────────────
// Estado inicial, Reset y SetField
// ──────────────────────────────────────────────────────────────────────────────

func TestNewController_BorradorPorDefecto(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	d := c.Draft()
	assert.Equal(t, form.ModeCreating, c.Mode())
	assert.Equal(t, 0, c.EditingID())
	assert.Equal(t, catalog.Bebe, d.Category)
	assert.Equal(t, "Playera", d.Subcategory)
	assert.Equal(t, "0-3 Meses", d.Size)
	assert.Empty(t, d.ImageURLs)
	assert.Empty(t, d.Name)
}

func TestSetField_CategoriaReiniciaSubcategoria(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	require.NoError(t, c.SetField(form.FieldSubcategory, "Body"))
	require.NoError(t, c.SetField(form.FieldCategory, "Niñas"))

	d := c.Draft()
	assert.Equal(t, catalog.Ninas, d.Category)
	assert.Equal(t, "Vestidos", d.Subcategory)

	require.NoError(t, c.SetField(form.FieldCategory, "Mascotas"))
	assert.Equal(t, "", c.Draft().Subcategory, "categoría sin subcategorías deja la subcategoría vacía")
}

func TestSetField_CampoDesconocido(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	err := c.SetField("id", "7")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDraft_DevuelveCopia(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	_, err := c.AddImages(context.Background(), images("a"))
	require.NoError(t, err)

	d := c.Draft()
	d.ImageURLs[0] = "otra"
	assert.Equal(t, []string{"data:a"}, c.Draft().ImageURLs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Imágenes
// ──────────────────────────────────────────────────────────────────────────────

func TestAddImages_AgregaEnOrden(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	total, err := c.AddImages(context.Background(), images("a", "b"))
	require.NoError(t, err)
	assert.Equal(t, 2, total)

	total, err = c.AddImages(context.Background(), images("c"))
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	assert.Equal(t, []string{"data:a", "data:b", "data:c"}, c.Draft().ImageURLs)
}

// Un lote fallido no agrega nada y conserva las imágenes anteriores.
func TestAddImages_LoteFallidoConservaPrevias(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, fakeEncoder{})
	_, err := c.AddImages(context.Background(), images("a"))
	require.NoError(t, err)

	failing := form.NewController(store, fakeEncoder{err: errors.New("archivo corrupto")}, zerolog.Nop())
	_, err = failing.AddImages(context.Background(), images("x", "y"))
	assert.ErrorIs(t, err, domain.ErrConversion)
	assert.Empty(t, failing.Draft().ImageURLs)

	assert.Equal(t, []string{"data:a"}, c.Draft().ImageURLs)
}

func TestRemoveImage(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	_, err := c.AddImages(context.Background(), images("a", "b", "c"))
	require.NoError(t, err)

	require.NoError(t, c.RemoveImage(1))
	assert.Equal(t, []string{"data:a", "data:c"}, c.Draft().ImageURLs)

	assert.ErrorIs(t, c.RemoveImage(5), domain.ErrInvalidInput)
	assert.ErrorIs(t, c.RemoveImage(-1), domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Submit
// ──────────────────────────────────────────────────────────────────────────────

// Sin imágenes: ErrValidation y el almacén nunca se invoca.
func TestSubmit_SinImagenesFallaSinTocarAlmacen(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, fakeEncoder{})
	fillValid(t, c)

	_, err := c.Submit(context.Background())
	require.ErrorIs(t, err, domain.ErrValidation)

	var fe *form.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, form.FieldImages, fe.Field)

	assert.Empty(t, store.created)
	assert.Empty(t, store.updated)
	assert.Equal(t, "Body", c.Draft().Name, "el borrador se conserva para corregirlo")
}

func TestSubmit_CreaYReinicia(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, fakeEncoder{})
	fillValid(t, c)
	_, err := c.AddImages(context.Background(), images("a"))
	require.NoError(t, err)

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Created)
	assert.Equal(t, form.MsgCreated, res.Message)
	assert.Equal(t, 100, res.Product.ID)
	assert.Equal(t, "15.99", res.Product.Price.StringFixed(2))
	assert.Equal(t, 15, res.Product.Quantity)

	require.Len(t, store.created, 1)
	assert.Equal(t, []string{"data:a"}, store.created[0].ImageURLs)
	assert.Equal(t, "Body", store.created[0].Subcategory)

	assert.Equal(t, form.ModeCreating, c.Mode())
	assert.Empty(t, c.Draft().Name)
	assert.Empty(t, c.Draft().ImageURLs)
}

func TestSubmit_ValidaNumerosYTaxonomia(t *testing.T) {
	cases := []struct {
		field, value, wantField string
	}{
		{form.FieldPrice, "abc", form.FieldPrice},
		{form.FieldPrice, "-1", form.FieldPrice},
		{form.FieldQuantity, "", form.FieldQuantity},
		{form.FieldQuantity, "2.5", form.FieldQuantity},
		{form.FieldQuantity, "-3", form.FieldQuantity},
		{form.FieldSubcategory, "Vestidos", form.FieldSubcategory},
		{form.FieldSize, "XL", form.FieldSize},
		{form.FieldName, "   ", form.FieldName},
	}
	for _, tc := range cases {
		t.Run(tc.field+"="+tc.value, func(t *testing.T) {
			store := &fakeStore{}
			c := newController(store, fakeEncoder{})
			fillValid(t, c)
			_, err := c.AddImages(context.Background(), images("a"))
			require.NoError(t, err)
			require.NoError(t, c.SetField(tc.field, tc.value))

			_, err = c.Submit(context.Background())
			var fe *form.FieldError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, tc.wantField, fe.Field)
			assert.Empty(t, store.created)
		})
	}
}

func TestSubmit_CantidadCeroEsAgotado(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, fakeEncoder{})
	fillValid(t, c)
	require.NoError(t, c.SetField(form.FieldQuantity, "0"))
	_, err := c.AddImages(context.Background(), images("a"))
	require.NoError(t, err)

	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.True(t, res.Product.SoldOut())
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

func TestLoadForEdit_SubmitActualizaConIDOriginal(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, fakeEncoder{})
	seed := catalog.SeedProducts()[2]

	c.LoadForEdit(seed)
	assert.Equal(t, form.ModeEditing, c.Mode())
	assert.Equal(t, 3, c.EditingID())
	d := c.Draft()
	assert.Equal(t, "29.99", d.Price)
	assert.Equal(t, "12", d.Quantity)
	assert.Equal(t, seed.ImageURLs, d.ImageURLs)

	require.NoError(t, c.SetField(form.FieldQuantity, "4"))
	res, err := c.Submit(context.Background())
	require.NoError(t, err)
	assert.False(t, res.Created)
	assert.Equal(t, form.MsgUpdated, res.Message)

	require.Len(t, store.updated, 1)
	assert.Equal(t, 3, store.updated[0].ID)
	assert.Equal(t, 4, store.updated[0].Quantity)
	assert.Empty(t, store.created)

	assert.Equal(t, form.ModeCreating, c.Mode())
	assert.Equal(t, 0, c.EditingID())
}

func TestSubmit_ErrorDelAlmacenConservaEdicion(t *testing.T) {
	store := &fakeStore{updateErr: domain.ErrNotFound}
	c := newController(store, fakeEncoder{})
	c.LoadForEdit(catalog.SeedProducts()[0])

	_, err := c.Submit(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, form.ModeEditing, c.Mode())
	assert.Equal(t, 1, c.EditingID())
}

func TestCancelEdit_VuelveACreacion(t *testing.T) {
	store := &fakeStore{}
	c := newController(store, fakeEncoder{})
	c.LoadForEdit(catalog.SeedProducts()[0])

	c.CancelEdit()
	assert.Equal(t, form.ModeCreating, c.Mode())
	assert.Empty(t, c.Draft().Name)
	assert.Empty(t, c.Draft().ImageURLs)
	assert.Empty(t, store.updated)
}

func TestLoadForEdit_DesdeEdicion(t *testing.T) {
	c := newController(&fakeStore{}, fakeEncoder{})
	c.LoadForEdit(catalog.SeedProducts()[0])
	c.LoadForEdit(catalog.SeedProducts()[6])
	assert.Equal(t, form.ModeEditing, c.Mode())
	assert.Equal(t, 7, c.EditingID())
	assert.Len(t, c.Draft().ImageURLs, 3)
}
