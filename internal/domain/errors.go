package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrValidation   = errors.New("validación fallida")
	ErrConversion   = errors.New("error al convertir imágenes")
	ErrPersistence  = errors.New("error de almacenamiento")
)
