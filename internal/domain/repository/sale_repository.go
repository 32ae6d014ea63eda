package repository

import (
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
)

// SaleRepository lectura del historial de ventas confirmadas.
type SaleRepository interface {
	// ListSales devuelve las ventas en orden de confirmación (la más antigua primero).
	ListSales() []entity.Sale
	GetSale(id string) (entity.Sale, error)
}

// SaleCommitter aplica una venta confirmada y sus descuentos de stock como una unidad.
type SaleCommitter interface {
	CommitSale(sale entity.Sale, decrements []entity.StockDecrement) error
}
