package form

import (
	"fmt"

	"github.com/jhoicas/tienda-infantil/internal/domain"
)

// FieldError error de validación asociado a un campo del borrador.
// errors.Is(err, domain.ErrValidation) es verdadero.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *FieldError) Unwrap() error { return domain.ErrValidation }

func invalid(field, msg string) error {
	return &FieldError{Field: field, Message: msg}
}
