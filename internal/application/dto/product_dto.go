package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
// Las reglas de negocio (nombre, precio > 0, etc.) las aplica el caso de uso; aquí solo límites de forma.
type CreateProductRequest struct {
	Name        string `json:"name" validate:"max=200"`
	Price       Amount `json:"price"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description" validate:"max=1000"`
}

// UpdateProductRequest entrada para editar un producto; los campos nil se conservan.
type UpdateProductRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=200"`
	Price       *Amount `json:"price"`
	Quantity    *int    `json:"quantity"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// ProductFilter filtros de listado: búsqueda por nombre/descripción y estado de stock.
type ProductFilter struct {
	Query  string `query:"q"`
	Status string `query:"status" validate:"omitempty,oneof=all ok low out"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	PriceLabel  string          `json:"price_label"` // "R$ 12,50"
	Quantity    int             `json:"quantity"`
	Status      string          `json:"status"` // ok, low, out
	CreatedAt   time.Time       `json:"created_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
