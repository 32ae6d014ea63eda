package dto

import "github.com/shopspring/decimal"

// Períodos de reporte.
const (
	PeriodAll    = "all"
	PeriodToday  = "today"
	PeriodWeek   = "week"
	PeriodMonth  = "month"
	PeriodCustom = "custom"
)

// ReportRequest query de GET /api/reports. Start y End en AAAA-MM-DD (solo período custom).
type ReportRequest struct {
	Period string `query:"period" validate:"omitempty,oneof=all today week month custom"`
	Start  string `query:"start" validate:"omitempty,datetime=2006-01-02"`
	End    string `query:"end" validate:"omitempty,datetime=2006-01-02"`
}

// ReportDTO métricas de ventas del período.
type ReportDTO struct {
	Period             string          `json:"period"`
	Revenue            decimal.Decimal `json:"revenue"`
	RevenueLabel       string          `json:"revenue_label"`
	SalesCount         int             `json:"sales_count"`
	AverageTicket      decimal.Decimal `json:"average_ticket"`
	AverageTicketLabel string          `json:"average_ticket_label"`
	TopProducts        []TopProductDTO `json:"top_products"` // top 10 por unidades
	DailySales         []DailySalesDTO `json:"daily_sales"`  // últimos 7 días, el más antiguo primero
	Sales              []SaleResponse  `json:"sales"`        // ventas del período, la más reciente primero
}

// DailySalesDTO ventas de un día.
type DailySalesDTO struct {
	Day     string          `json:"day"`  // "seg", "ter", ...
	Date    string          `json:"date"` // DD/MM/AAAA
	Count   int             `json:"count"`
	Revenue decimal.Decimal `json:"revenue"`
}
