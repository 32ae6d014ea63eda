package analytics

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
)

// topProducts acumula unidades e ingreso por producto y devuelve los limit con más unidades.
// Empates conservan el orden en que el producto apareció por primera vez.
func topProducts(list []entity.Sale, limit int) []dto.TopProductDTO {
	var order []string
	acc := make(map[string]*dto.TopProductDTO)
	for _, s := range list {
		for _, it := range s.Items {
			row, ok := acc[it.ProductID]
			if !ok {
				row = &dto.TopProductDTO{
					ProductID:    it.ProductID,
					ProductName:  it.ProductName,
					TotalRevenue: decimal.Zero,
				}
				acc[it.ProductID] = row
				order = append(order, it.ProductID)
			}
			row.QuantitySold += it.Quantity
			row.TotalRevenue = row.TotalRevenue.Add(it.TotalPrice)
		}
	}

	out := make([]dto.TopProductDTO, 0, len(order))
	for _, id := range order {
		out = append(out, *acc[id])
	}
	slices.SortStableFunc(out, func(a, b dto.TopProductDTO) int {
		return b.QuantitySold - a.QuantitySold
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
