package dto

import "github.com/jhoicas/tienda-infantil/internal/application/form"

// SetFieldRequest entrada para actualizar un campo del borrador.
type SetFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// FormStateResponse estado del formulario de administración.
type FormStateResponse struct {
	Mode          string     `json:"mode"`
	EditingID     int        `json:"editingId,omitempty"`
	Draft         form.Draft `json:"draft"`
	Subcategories []string   `json:"subcategories"`
}

// ImagesAddedResponse resultado de agregar un lote de imágenes.
type ImagesAddedResponse struct {
	Added int `json:"added"`
	Total int `json:"total"`
}

// SubmitResponse resultado de enviar el formulario.
type SubmitResponse struct {
	Message string          `json:"message"`
	Created bool            `json:"created"`
	Product ProductResponse `json:"product"`
}
