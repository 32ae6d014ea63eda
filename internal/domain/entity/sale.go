package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Customer datos del cliente embebidos en cada venta (no existe registro de clientes).
type Customer struct {
	CPF   string `json:"cpf"`   // 11 dígitos con dígitos verificadores
	Phone string `json:"phone"` // 10 u 11 dígitos con DDD
}

// SaleItem línea de una venta. ProductName y UnitPrice se congelan al momento de la venta.
type SaleItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	TotalPrice  decimal.Decimal `json:"totalPrice"` // Quantity × UnitPrice
}

// Sale venta registrada; inmutable una vez creada.
type Sale struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"` // DD/MM/AAAA informada por el usuario
	Customer    Customer        `json:"customer"`
	Items       []SaleItem      `json:"items"`
	TotalAmount decimal.Decimal `json:"totalAmount"` // suma de TotalPrice de las líneas
	CreatedAt   time.Time       `json:"createdAt"`
}

// ItemsTotal recalcula la suma de TotalPrice de las líneas.
func (s *Sale) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range s.Items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

// SalesRevenue suma TotalAmount de las ventas.
func SalesRevenue(list []Sale) decimal.Decimal {
	total := decimal.Zero
	for i := range list {
		total = total.Add(list[i].TotalAmount)
	}
	return total
}

// StockDecrement instrucción de descuento de stock emitida al confirmar una venta.
type StockDecrement struct {
	ProductID   string `json:"productId"`
	Sold        int    `json:"sold"`
	NewQuantity int    `json:"newQuantity"` // cantidad anterior - vendida
}
