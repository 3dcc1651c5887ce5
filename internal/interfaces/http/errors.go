package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tienda-infantil/internal/application/dto"
	"github.com/jhoicas/tienda-infantil/internal/application/form"
	"github.com/jhoicas/tienda-infantil/internal/domain"
)

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	var fe *form.FieldError
	switch {
	case errors.As(err, &fe):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: fe.Message, Field: fe.Field})
	case errors.Is(err, domain.ErrValidation):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrConversion):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "CONVERSION", Message: "Hubo un error al cargar las imágenes."})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

func paramID(c *fiber.Ctx) (int, bool) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func invalidID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_ID", Message: "id debe ser un entero positivo"})
}
