package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpenDraftRequest apertura de una venta en edición. Date vacío = hoy.
type OpenDraftRequest struct {
	Date string `json:"date"`
}

// AddItemRequest agrega una unidad de un producto al borrador.
type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// ChangeQuantityRequest suma delta (positivo o negativo) a la línea.
type ChangeQuantityRequest struct {
	Delta int `json:"delta" validate:"ne=0"`
}

// SetCustomerRequest encabezado de la venta tal como lo digita el usuario.
type SetCustomerRequest struct {
	Date  string `json:"date" validate:"max=10"`
	CPF   string `json:"cpf" validate:"max=14"`
	Phone string `json:"phone" validate:"max=15"`
}

// CustomerDTO datos del cliente de una venta, con máscara aplicada.
type CustomerDTO struct {
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
}

// SaleItemDTO línea de venta.
type SaleItemDTO struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// DraftResponse estado de una venta en edición.
type DraftResponse struct {
	ID         string          `json:"id"`
	State      string          `json:"state"`
	Date       string          `json:"date"`
	Customer   CustomerDTO     `json:"customer"`
	Items      []SaleItemDTO   `json:"items"`
	Total      decimal.Decimal `json:"total"`
	TotalLabel string          `json:"total_label"`
}

// ValidateDraftResponse resultado de validar un borrador sin confirmarlo.
type ValidateDraftResponse struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// SaleResponse venta confirmada.
type SaleResponse struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Customer    CustomerDTO     `json:"customer"`
	Items       []SaleItemDTO   `json:"items"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	TotalLabel  string          `json:"total_label"`
	CreatedAt   time.Time       `json:"created_at"`
}

// SaleListResponse historial de ventas, la más reciente primero.
type SaleListResponse struct {
	Items []SaleResponse `json:"items"`
	Total int            `json:"total"`
}
