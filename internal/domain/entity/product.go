package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de stock de un producto en el inventario.
const (
	StockStatusOK  = "ok"  // disponible
	StockStatusLow = "low" // 0 < cantidad <= umbral
	StockStatusOut = "out" // cantidad = 0
)

// Product representa un producto del catálogo con su stock disponible.
// Las etiquetas JSON conservan el formato de los registros guardados por la versión web.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`    // precio de venta, > 0
	Quantity    int             `json:"quantity"` // stock disponible, nunca negativo
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"` // inmutable
}

// Available indica si el producto puede agregarse como nueva línea de venta.
func (p *Product) Available() bool {
	return p.Quantity > 0
}

// StockStatus clasifica el stock según el umbral de bajo stock.
func (p *Product) StockStatus(lowThreshold int) string {
	switch {
	case p.Quantity <= 0:
		return StockStatusOut
	case p.Quantity <= lowThreshold:
		return StockStatusLow
	default:
		return StockStatusOK
	}
}

// StockValue valor del stock a precio de venta (precio × cantidad).
func (p *Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// TotalStockValue suma precio × cantidad de todos los productos.
func TotalStockValue(list []Product) decimal.Decimal {
	total := decimal.Zero
	for i := range list {
		total = total.Add(list[i].StockValue())
	}
	return total
}
