package analytics

import (
	"context"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
)

// ReportPDFGenerator puerto para renderizar un reporte en PDF.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, businessName string, report *dto.ReportDTO) ([]byte, error)
}

// ReportPDFUseCase construye el reporte del período y lo entrega como PDF.
type ReportPDFUseCase struct {
	reports      *ReportUseCase
	generator    ReportPDFGenerator
	businessName string
}

// NewReportPDFUseCase construye el caso de uso.
func NewReportPDFUseCase(reports *ReportUseCase, generator ReportPDFGenerator, businessName string) *ReportPDFUseCase {
	return &ReportPDFUseCase{reports: reports, generator: generator, businessName: businessName}
}

// Generate devuelve los bytes del PDF del período pedido.
func (uc *ReportPDFUseCase) Generate(ctx context.Context, req dto.ReportRequest) ([]byte, error) {
	report, err := uc.reports.Build(req)
	if err != nil {
		return nil, err
	}
	return uc.generator.GenerateReportPDF(ctx, uc.businessName, report)
}
