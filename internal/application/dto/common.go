package dto

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/pkg/format"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// FieldErrorDTO falla de validación asociada a un campo del formulario.
type FieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ProductErrorResponse error 400 de alta/edición de producto con una falla por campo.
type ProductErrorResponse struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Fields  []FieldErrorDTO `json:"fields"`
}

// Amount monto que acepta número JSON (12.5) o texto con máscara ("R$ 12,50").
// El texto se interpreta con format.ParseCurrency: punto = miles, coma = decimales.
type Amount struct {
	decimal.Decimal
}

// UnmarshalJSON implementa json.Unmarshaler.
func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var text string
		if err := json.Unmarshal(b, &text); err != nil {
			return err
		}
		a.Decimal = format.ParseCurrency(text)
		return nil
	}
	if bytes.Equal(b, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}
	return a.Decimal.UnmarshalJSON(b)
}
