package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
type DashboardSummaryDTO struct {
	TotalProducts     int             `json:"total_products"`
	TotalSales        int             `json:"total_sales"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalRevenueLabel string          `json:"total_revenue_label"`
	LowStockCount     int             `json:"low_stock_count"` // cantidad <= umbral, incluye agotados

	// Top 5 productos por unidades vendidas (mayor a menor)
	TopProducts []TopProductDTO `json:"top_products"`
	// Primeros 5 productos en bajo stock
	LowStockProducts []ProductResponse `json:"low_stock_products"`
}

// TopProductDTO acumulado de ventas de un producto.
type TopProductDTO struct {
	ProductID    string          `json:"product_id"`
	ProductName  string          `json:"product_name"`
	QuantitySold int             `json:"quantity_sold"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}
