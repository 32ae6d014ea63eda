package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrDraftCommitted    = errors.New("la venta ya fue registrada")
	ErrDraftInvalid      = errors.New("venta inválida")
	ErrEmptyDraft        = errors.New("la venta no tiene productos")
)
