package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse confirmación simple para la interfaz.
type MessageResponse struct {
	Message string `json:"message"`
}
