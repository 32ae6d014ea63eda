package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/application/sales"
)

// SalesHandler ventas en edición (borradores) y consulta del historial.
type SalesHandler struct {
	uc *sales.SalesUseCase
}

// NewSalesHandler construye el handler.
func NewSalesHandler(uc *sales.SalesUseCase) *SalesHandler {
	return &SalesHandler{uc: uc}
}

// OpenDraft godoc
// @Summary      Abrir una venta
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OpenDraftRequest  false  "Fecha sugerida (DD/MM/AAAA)"
// @Success      201   {object}  dto.DraftResponse
// @Router       /api/sales/drafts [post]
func (h *SalesHandler) OpenDraft(c *fiber.Ctx) error {
	var in dto.OpenDraftRequest
	if len(c.Body()) > 0 {
		if ok, err := parseBody(c, &in); !ok {
			return err
		}
	}
	return c.Status(fiber.StatusCreated).JSON(h.uc.OpenDraft(in))
}

// GetDraft godoc
// @Summary      Estado de una venta en edición
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.DraftResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id} [get]
func (h *SalesHandler) GetDraft(c *fiber.Ctx) error {
	out, err := h.uc.GetDraft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DiscardDraft godoc
// @Summary      Descartar una venta en edición
// @Tags         sales
// @Param        id   path  string  true  "ID del borrador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id} [delete]
func (h *SalesHandler) DiscardDraft(c *fiber.Ctx) error {
	if err := h.uc.DiscardDraft(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// AddItem godoc
// @Summary      Agregar una unidad de un producto
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string              true  "ID del borrador"
// @Param        body  body  dto.AddItemRequest  true  "Producto"
// @Success      200   {object}  dto.DraftResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id}/items [post]
func (h *SalesHandler) AddItem(c *fiber.Ctx) error {
	var in dto.AddItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AddItem(c.Params("id"), in.ProductID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ChangeQuantity godoc
// @Summary      Cambiar la cantidad de una línea
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id         path  string                     true  "ID del borrador"
// @Param        productId  path  string                     true  "ID del producto"
// @Param        body       body  dto.ChangeQuantityRequest  true  "Delta"
// @Success      200        {object}  dto.DraftResponse
// @Router       /api/sales/drafts/{id}/items/{productId} [patch]
func (h *SalesHandler) ChangeQuantity(c *fiber.Ctx) error {
	var in dto.ChangeQuantityRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.ChangeQuantity(c.Params("id"), c.Params("productId"), in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveItem godoc
// @Summary      Quitar una línea
// @Tags         sales
// @Produce      json
// @Param        id         path  string  true  "ID del borrador"
// @Param        productId  path  string  true  "ID del producto"
// @Success      200        {object}  dto.DraftResponse
// @Router       /api/sales/drafts/{id}/items/{productId} [delete]
func (h *SalesHandler) RemoveItem(c *fiber.Ctx) error {
	out, err := h.uc.RemoveItem(c.Params("id"), c.Params("productId"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetCustomer godoc
// @Summary      Fecha y datos del cliente
// @Tags         sales
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del borrador"
// @Param        body  body  dto.SetCustomerRequest  true  "Fecha, CPF y teléfono"
// @Success      200   {object}  dto.DraftResponse
// @Router       /api/sales/drafts/{id}/customer [put]
func (h *SalesHandler) SetCustomer(c *fiber.Ctx) error {
	var in dto.SetCustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.SetCustomer(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Validate godoc
// @Summary      Validar sin confirmar
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      200  {object}  dto.ValidateDraftResponse
// @Router       /api/sales/drafts/{id}/validate [post]
func (h *SalesHandler) Validate(c *fiber.Ctx) error {
	out, err := h.uc.ValidateDraft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Commit godoc
// @Summary      Confirmar la venta
// @Description  Revalida contra el stock vigente; si pasa registra la venta y descuenta el stock.
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID del borrador"
// @Success      201  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/sales/drafts/{id}/commit [post]
func (h *SalesHandler) Commit(c *fiber.Ctx) error {
	out, err := h.uc.CommitDraft(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Historial de ventas (más reciente primero)
// @Tags         sales
// @Produce      json
// @Success      200  {object}  dto.SaleListResponse
// @Router       /api/sales [get]
func (h *SalesHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListSales())
}

// GetByID godoc
// @Summary      Obtener venta
// @Tags         sales
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/sales/{id} [get]
func (h *SalesHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetSale(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
