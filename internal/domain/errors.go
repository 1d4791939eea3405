package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("producto no encontrado")
	ErrValidation        = errors.New("datos de producto inválidos")
	ErrInvalidArgument   = errors.New("argumento inválido")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrUnsupportedFormat = errors.New("formato no soportado")
)
