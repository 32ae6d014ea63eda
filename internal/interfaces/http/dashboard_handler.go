package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/controle-vendas/internal/application/analytics"
)

// DashboardHandler maneja el endpoint del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los totales generales del negocio.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_products, total_sales, total_revenue,
// low_stock_count, top_products[5], low_stock_products[5]).
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	return c.JSON(h.uc.GetSummary())
}
