// Package analytics contiene los casos de uso de lectura: dashboard, resumen de inventario
// y reportes de ventas por período.
package analytics

import (
	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/pkg/format"
)

const (
	dashboardTopProducts = 5 // productos en el widget de más vendidos
	dashboardLowStock    = 5 // productos listados en el widget de bajo stock
)

// DashboardUseCase genera el resumen general del negocio sobre todo el historial.
type DashboardUseCase struct {
	productRepo  repository.ProductRepository
	saleRepo     repository.SaleRepository
	lowThreshold int
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository, saleRepo repository.SaleRepository, lowThreshold int) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo, saleRepo: saleRepo, lowThreshold: lowThreshold}
}

// GetSummary totales de productos, ventas e ingreso, conteo de bajo stock (agotados incluidos),
// top 5 por unidades vendidas y los primeros 5 productos en bajo stock.
func (uc *DashboardUseCase) GetSummary() *dto.DashboardSummaryDTO {
	products := uc.productRepo.List()
	sales := uc.saleRepo.ListSales()

	var low []entity.Product
	for _, p := range products {
		if p.Quantity <= uc.lowThreshold {
			low = append(low, p)
		}
	}
	lowList := low
	if len(lowList) > dashboardLowStock {
		lowList = lowList[:dashboardLowStock]
	}

	total := entity.SalesRevenue(sales)
	return &dto.DashboardSummaryDTO{
		TotalProducts:     len(products),
		TotalSales:        len(sales),
		TotalRevenue:      total,
		TotalRevenueLabel: format.FormatCurrency(total),
		LowStockCount:     len(low),
		TopProducts:       topProducts(sales, dashboardTopProducts),
		LowStockProducts:  dto.NewProductList(lowList, uc.lowThreshold),
	}
}
