package dto

import "github.com/shopspring/decimal"

// InventorySummaryDTO respuesta de GET /api/inventory/summary.
// Los contadores se calculan sobre todo el catálogo; Items respeta el filtro pedido.
type InventorySummaryDTO struct {
	TotalProducts   int               `json:"total_products"`
	OutOfStock      int               `json:"out_of_stock"`
	LowStock        int               `json:"low_stock"` // 0 < cantidad <= umbral
	StockValue      decimal.Decimal   `json:"stock_value"`
	StockValueLabel string            `json:"stock_value_label"`
	Items           []ProductResponse `json:"items"`
}
