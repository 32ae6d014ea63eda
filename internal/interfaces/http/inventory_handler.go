package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/controle-vendas/internal/application/analytics"
	"github.com/jhoicas/controle-vendas/internal/application/dto"
)

// InventoryHandler resumen y listado filtrado del inventario.
type InventoryHandler struct {
	uc *appanalytics.InventoryUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *appanalytics.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen de inventario
// @Tags         inventory
// @Produce      json
// @Param        q       query  string  false  "Busca en nombre y descripción"
// @Param        status  query  string  false  "all, ok, low, out"
// @Success      200     {object}  dto.InventorySummaryDTO
// @Router       /api/inventory/summary [get]
func (h *InventoryHandler) GetSummary(c *fiber.Ctx) error {
	var filter dto.ProductFilter
	if ok, err := parseQuery(c, &filter); !ok {
		return err
	}
	out, err := h.uc.GetSummary(filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
