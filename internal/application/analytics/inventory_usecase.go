package analytics

import (
	"fmt"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/application/usecase"
	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/pkg/format"
)

// InventoryUseCase estadísticas de stock y listado filtrado.
type InventoryUseCase struct {
	productRepo  repository.ProductRepository
	lowThreshold int
}

// NewInventoryUseCase construye el caso de uso.
func NewInventoryUseCase(productRepo repository.ProductRepository, lowThreshold int) *InventoryUseCase {
	return &InventoryUseCase{productRepo: productRepo, lowThreshold: lowThreshold}
}

// GetSummary cuenta agotados (= 0) y bajo stock (0 < q <= umbral), suma el valor del stock
// a precio de venta y lista los productos que cumplen búsqueda y estado.
func (uc *InventoryUseCase) GetSummary(filter dto.ProductFilter) (*dto.InventorySummaryDTO, error) {
	switch filter.Status {
	case "", "all", entity.StockStatusOK, entity.StockStatusLow, entity.StockStatusOut:
	default:
		return nil, fmt.Errorf("estado %q: %w", filter.Status, domain.ErrInvalidInput)
	}

	products := uc.productRepo.List()
	out := &dto.InventorySummaryDTO{
		TotalProducts: len(products),
		StockValue:    entity.TotalStockValue(products),
	}
	for _, p := range products {
		switch p.StockStatus(uc.lowThreshold) {
		case entity.StockStatusOut:
			out.OutOfStock++
		case entity.StockStatusLow:
			out.LowStock++
		}
	}
	out.StockValueLabel = format.FormatCurrency(out.StockValue)
	out.Items = dto.NewProductList(
		usecase.FilterProducts(products, filter.Query, filter.Status, uc.lowThreshold),
		uc.lowThreshold,
	)
	return out, nil
}
