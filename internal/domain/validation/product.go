// Package validation reúne las reglas de validación de campos del dominio de ventas.
// Las fallas se devuelven como valores (lista de errores por campo o mensajes), nunca como
// error fatal: el formulario sigue editable tras un intento rechazado.
package validation

import (
	"strings"

	"github.com/jhoicas/controle-vendas/internal/domain/entity"
)

// Campos de producto reportados en ValidationError.Field.
const (
	FieldName        = "name"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
	FieldDescription = "description"
)

// Mensajes de validación de producto (mostrados al usuario).
const (
	MsgNameRequired        = "Nome do produto é obrigatório"
	MsgPriceNotPositive    = "Preço deve ser maior que zero"
	MsgQuantityNegative    = "Quantidade não pode ser negativa"
	MsgDescriptionRequired = "Descrição é obrigatória"
)

// ValidateProduct valida nombre, precio, cantidad y descripción de forma independiente
// (sin cortocircuito) y devuelve una falla por regla violada. ID y CreatedAt se ignoran.
// Lista vacía significa producto válido.
func ValidateProduct(p entity.Product) []entity.ValidationError {
	errs := []entity.ValidationError{}

	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, entity.ValidationError{Field: FieldName, Message: MsgNameRequired})
	}
	if !p.Price.IsPositive() {
		errs = append(errs, entity.ValidationError{Field: FieldPrice, Message: MsgPriceNotPositive})
	}
	if p.Quantity < 0 {
		errs = append(errs, entity.ValidationError{Field: FieldQuantity, Message: MsgQuantityNegative})
	}
	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, entity.ValidationError{Field: FieldDescription, Message: MsgDescriptionRequired})
	}
	return errs
}
