package pdf

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
)

func TestGenerateReportPDF_DevuelveDocumento(t *testing.T) {
	report := &dto.ReportDTO{
		Period:             dto.PeriodToday,
		Revenue:            decimal.NewFromInt(30),
		RevenueLabel:       "R$ 30,00",
		SalesCount:         1,
		AverageTicket:      decimal.NewFromInt(30),
		AverageTicketLabel: "R$ 30,00",
		TopProducts: []dto.TopProductDTO{
			{ProductID: "p1", ProductName: "Caneta", QuantitySold: 3, TotalRevenue: decimal.NewFromInt(30)},
		},
		DailySales: []dto.DailySalesDTO{{Day: "sex", Date: "15/03/2024", Count: 1, Revenue: decimal.NewFromInt(30)}},
		Sales: []dto.SaleResponse{{
			ID: "s1", Date: "15/03/2024", Customer: dto.CustomerDTO{CPF: "529.982.247-25"}, TotalLabel: "R$ 30,00",
		}},
	}

	out, err := NewMarotoReportGenerator().GenerateReportPDF(context.Background(), "Loja Teste", report)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateReportPDF_SinVentas(t *testing.T) {
	out, err := NewMarotoReportGenerator().GenerateReportPDF(context.Background(), "Loja", &dto.ReportDTO{Period: dto.PeriodAll})

	require.NoError(t, err)
	assert.NotEmpty(t, out)
}
