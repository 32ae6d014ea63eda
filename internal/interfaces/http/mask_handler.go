package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/pkg/mask"
)

// MaskHandler aplica las máscaras de digitación (cpf, phone, date, currency).
type MaskHandler struct{}

// NewMaskHandler construye el handler.
func NewMaskHandler() *MaskHandler { return &MaskHandler{} }

// Apply godoc
// @Summary      Aplicar máscara
// @Tags         masks
// @Accept       json
// @Produce      json
// @Param        kind  path  string           true  "cpf, phone, date, currency"
// @Param        body  body  dto.MaskRequest  true  "Valor tecleado"
// @Success      200   {object}  dto.MaskResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/masks/{kind} [post]
func (h *MaskHandler) Apply(c *fiber.Ctx) error {
	var in dto.MaskRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	kind := c.Params("kind")
	masked, ok := mask.Apply(mask.Kind(kind), in.Value)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "máscara desconocida: " + kind})
	}
	return c.JSON(dto.MaskResponse{Kind: kind, Masked: masked})
}
