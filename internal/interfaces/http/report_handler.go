package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/controle-vendas/internal/application/analytics"
	"github.com/jhoicas/controle-vendas/internal/application/dto"
)

// ReportHandler reportes de ventas por período (JSON y PDF).
type ReportHandler struct {
	reports *appanalytics.ReportUseCase
	pdf     *appanalytics.ReportPDFUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(reports *appanalytics.ReportUseCase, pdf *appanalytics.ReportPDFUseCase) *ReportHandler {
	return &ReportHandler{reports: reports, pdf: pdf}
}

// Get godoc
// @Summary      Reporte de ventas
// @Tags         reports
// @Produce      json
// @Param        period  query  string  false  "all, today, week, month, custom"
// @Param        start   query  string  false  "AAAA-MM-DD (custom)"
// @Param        end     query  string  false  "AAAA-MM-DD (custom)"
// @Success      200     {object}  dto.ReportDTO
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	out, err := h.reports.Build(req)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Reporte de ventas en PDF
// @Tags         reports
// @Produce      application/pdf
// @Param        period  query  string  false  "all, today, week, month, custom"
// @Param        start   query  string  false  "AAAA-MM-DD (custom)"
// @Param        end     query  string  false  "AAAA-MM-DD (custom)"
// @Success      200     {file}  binary
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/reports/pdf [get]
func (h *ReportHandler) PDF(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if ok, err := parseQuery(c, &req); !ok {
		return err
	}
	pdfBytes, err := h.pdf.Generate(c.UserContext(), req)
	if err != nil {
		return respondError(c, err)
	}
	period := req.Period
	if period == "" {
		period = dto.PeriodAll
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="relatorio-`+period+`.pdf"`)
	return c.Send(pdfBytes)
}
