package http

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-infantil/internal/application/catalog"
	"github.com/jhoicas/tienda-infantil/internal/application/dto"
	"github.com/jhoicas/tienda-infantil/internal/application/form"
	domaincatalog "github.com/jhoicas/tienda-infantil/internal/domain/catalog"
	"github.com/jhoicas/tienda-infantil/internal/domain/entity"
)

// AdminHandler panel de administración: listado, borrado y formulario de producto.
type AdminHandler struct {
	store *catalog.Store
	form  *form.Controller
}

// NewAdminHandler construye el handler.
func NewAdminHandler(store *catalog.Store, formController *form.Controller) *AdminHandler {
	return &AdminHandler{store: store, form: formController}
}

// ListProducts godoc
// @Summary      Listar todos los productos (administración)
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.ProductListResponse
// @Router       /api/admin/products [get]
func (h *AdminHandler) ListProducts(c *fiber.Ctx) error {
	return c.JSON(dto.ToProductList(domaincatalog.ShowAll, h.store.List()))
}

// Delete godoc
// @Summary      Eliminar producto
// @Tags         admin
// @Param        id   path  int  true  "ID del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/products/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	if err := h.store.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// FormState godoc
// @Summary      Estado del formulario
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.FormStateResponse
// @Router       /api/admin/form [get]
func (h *AdminHandler) FormState(c *fiber.Ctx) error {
	return c.JSON(h.state())
}

// Edit godoc
// @Summary      Cargar un producto en el formulario para editarlo
// @Tags         admin
// @Produce      json
// @Param        id   path  int  true  "ID del producto"
// @Success      200  {object}  dto.FormStateResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/admin/form/edit/{id} [post]
func (h *AdminHandler) Edit(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return invalidID(c)
	}
	p, err := h.store.Get(id)
	if err != nil {
		return writeError(c, err)
	}
	h.form.LoadForEdit(p)
	return c.JSON(h.state())
}

// SetField godoc
// @Summary      Actualizar un campo del borrador
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SetFieldRequest  true  "Campo y valor"
// @Success      200   {object}  dto.FormStateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/form [patch]
func (h *AdminHandler) SetField(c *fiber.Ctx) error {
	var in dto.SetFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.form.SetField(in.Field, in.Value); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.state())
}

// AddImages godoc
// @Summary      Agregar imágenes al borrador
// @Tags         admin
// @Accept       multipart/form-data
// @Produce      json
// @Param        files  formData  file  true  "Imágenes (PNG, JPG, GIF)"
// @Success      200    {object}  dto.ImagesAddedResponse
// @Failure      422    {object}  dto.ErrorResponse
// @Router       /api/admin/form/images [post]
func (h *AdminHandler) AddImages(c *fiber.Ctx) error {
	mf, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "se esperaba multipart/form-data"})
	}
	headers := mf.File["files"]
	if len(headers) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_FILES", Message: "no se recibieron archivos"})
	}
	total, err := h.form.AddImages(c.UserContext(), imageSources(headers))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ImagesAddedResponse{Added: len(headers), Total: total})
}

// RemoveImage godoc
// @Summary      Quitar una imagen del borrador
// @Tags         admin
// @Produce      json
// @Param        index  path  int  true  "Posición de la imagen"
// @Success      200    {object}  dto.FormStateResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/form/images/{index} [delete]
func (h *AdminHandler) RemoveImage(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INDEX", Message: "índice inválido"})
	}
	if err := h.form.RemoveImage(index); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.state())
}

// Submit godoc
// @Summary      Enviar el formulario (crear o actualizar)
// @Tags         admin
// @Produce      json
// @Success      201  {object}  dto.SubmitResponse
// @Success      200  {object}  dto.SubmitResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/admin/form/submit [post]
func (h *AdminHandler) Submit(c *fiber.Ctx) error {
	res, err := h.form.Submit(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(dto.SubmitResponse{
		Message: res.Message,
		Created: res.Created,
		Product: dto.ToProductResponse(res.Product),
	})
}

// Cancel godoc
// @Summary      Cancelar la edición
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.FormStateResponse
// @Router       /api/admin/form/cancel [post]
func (h *AdminHandler) Cancel(c *fiber.Ctx) error {
	h.form.CancelEdit()
	return c.JSON(h.state())
}

// Reset godoc
// @Summary      Limpiar el borrador
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.FormStateResponse
// @Router       /api/admin/form/reset [post]
func (h *AdminHandler) Reset(c *fiber.Ctx) error {
	h.form.Reset()
	return c.JSON(h.state())
}

func (h *AdminHandler) state() dto.FormStateResponse {
	d := h.form.Draft()
	return dto.FormStateResponse{
		Mode:          string(h.form.Mode()),
		EditingID:     h.form.EditingID(),
		Draft:         d,
		Subcategories: domaincatalog.SubcategoriesFor(d.Category),
	}
}

func imageSources(headers []*multipart.FileHeader) []entity.ImageSource {
	out := make([]entity.ImageSource, len(headers))
	for i, fh := range headers {
		out[i] = entity.ImageSource{
			Name: fh.Filename,
			Open: func() (io.ReadCloser, error) { return fh.Open() },
		}
	}
	return out
}
