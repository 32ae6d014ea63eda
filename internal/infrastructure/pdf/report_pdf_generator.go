// Package pdf genera el reporte de ventas de un período en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre del negocio   │  Período + fecha de emisión  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Faturamento | Vendas | Ticket médio                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: top productos (Produto | Qtd | Receita)              │
//	│  TABLA: vendas por dia (últimos 7 dias)                      │
//	│  TABLA: vendas do período (Data | CPF | Itens | Total)       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 22, Green: 101, Blue: 52}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// periodLabels títulos del período mostrados en el encabezado.
var periodLabels = map[string]string{
	dto.PeriodAll:    "Todo o período",
	dto.PeriodToday:  "Hoje",
	dto.PeriodWeek:   "Últimos 7 dias",
	dto.PeriodMonth:  "Último mês",
	dto.PeriodCustom: "Período personalizado",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct {
	now func() time.Time
}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator {
	return &MarotoReportGenerator{now: time.Now}
}

// GenerateReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(_ context.Context, businessName string, report *dto.ReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de vendas", true).
		WithAuthor(businessName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(businessName, report, g.now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(kpiRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("Produtos mais vendidos"))
	m.AddRows(tableHeader([]string{"Produto", "Qtd.", "Receita"}, []int{8, 2, 2}))
	if len(report.TopProducts) == 0 {
		m.AddRows(emptyRow("Nenhuma venda no período"))
	}
	for _, p := range report.TopProducts {
		m.AddRows(tableRow([]string{
			p.ProductName,
			strconv.Itoa(p.QuantitySold),
			format.FormatCurrency(p.TotalRevenue),
		}, []int{8, 2, 2}))
	}

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("Vendas por dia (últimos 7 dias)"))
	m.AddRows(tableHeader([]string{"Dia", "Data", "Vendas", "Receita"}, []int{2, 4, 2, 4}))
	for _, d := range report.DailySales {
		m.AddRows(tableRow([]string{
			d.Day, d.Date, strconv.Itoa(d.Count), format.FormatCurrency(d.Revenue),
		}, []int{2, 4, 2, 4}))
	}

	m.AddRows(row.New(4))
	m.AddRows(sectionTitle("Vendas do período"))
	m.AddRows(tableHeader([]string{"Data", "CPF", "Itens", "Total"}, []int{3, 4, 2, 3}))
	for _, s := range report.Sales {
		m.AddRows(tableRow([]string{
			s.Date, s.Customer.CPF, strconv.Itoa(len(s.Items)), s.TotalLabel,
		}, []int{3, 4, 2, 3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del negocio (izq) y período + fecha de emisión (der).
func headerRow(businessName string, report *dto.ReportDTO, now time.Time) core.Row {
	label, ok := periodLabels[report.Period]
	if !ok {
		label = report.Period
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(businessName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Relatório de vendas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(label, props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right, Top: 1,
			}),
			text.New("Emitido em "+format.FormatDate(now), props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// kpiRow: faturamento, cantidad de ventas y ticket promedio.
func kpiRow(report *dto.ReportDTO) core.Row {
	kpi := func(title, value string) core.Col {
		return col.New(4).Add(
			text.New(title, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(value, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Color: colorPrimary, Top: 6,
			}),
		)
	}
	return row.New(16).Add(
		kpi("Faturamento", report.RevenueLabel),
		kpi("Vendas", strconv.Itoa(report.SalesCount)),
		kpi("Ticket médio", report.AverageTicketLabel),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(text.New(title, props.Text{
		Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1,
	})))
}

func tableHeader(labels []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(labels))
	for i, l := range labels {
		cols = append(cols, col.New(sizes[i]).Add(text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: cellAlign(i), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(values []string, sizes []int) core.Row {
	cols := make([]core.Col, 0, len(values))
	for i, v := range values {
		cols = append(cols, col.New(sizes[i]).Add(text.New(v, props.Text{
			Size: 8, Align: cellAlign(i), Top: 1, Left: 1, Right: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func emptyRow(msg string) core.Row {
	return row.New(6).Add(col.New(12).Add(text.New(msg, props.Text{
		Size: 8, Color: colorGray, Top: 1, Align: align.Center,
	})))
}

// cellAlign primera columna a la izquierda, el resto a la derecha.
func cellAlign(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}
