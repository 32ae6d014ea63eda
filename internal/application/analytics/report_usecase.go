package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/application/sales"
	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/pkg/format"
)

const (
	reportTopProducts = 10
	reportDays        = 7
	isoDate           = "2006-01-02"
)

// weekdays abreviaturas pt-BR indexadas por time.Weekday.
var weekdays = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

// ReportUseCase reportes de ventas por período.
type ReportUseCase struct {
	saleRepo repository.SaleRepository
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(saleRepo repository.SaleRepository) *ReportUseCase {
	return &ReportUseCase{saleRepo: saleRepo, now: time.Now}
}

// Build filtra las ventas por CreatedAt según el período y calcula ingreso, cantidad,
// ticket promedio y top 10 productos. DailySales cubre siempre los últimos 7 días del
// historial completo, sin importar el período.
//
// Períodos: all; today (mismo día calendario); week (últimas 7×24 h); month (desde el mismo
// día del mes anterior); custom (Start..End inclusive, AAAA-MM-DD; sin ambos extremos = all).
func (uc *ReportUseCase) Build(req dto.ReportRequest) (*dto.ReportDTO, error) {
	period := req.Period
	if period == "" {
		period = dto.PeriodAll
	}
	now := uc.now()
	match, err := periodFilter(period, req.Start, req.End, now)
	if err != nil {
		return nil, err
	}

	all := uc.saleRepo.ListSales()
	var filtered []entity.Sale
	for _, s := range all {
		if match(s.CreatedAt) {
			filtered = append(filtered, s)
		}
	}

	total := entity.SalesRevenue(filtered)
	avg := decimal.Zero
	if len(filtered) > 0 {
		avg = total.Div(decimal.NewFromInt(int64(len(filtered)))).Round(2)
	}

	newest := sales.NewestFirst(filtered)
	list := make([]dto.SaleResponse, 0, len(newest))
	for _, s := range newest {
		list = append(list, dto.NewSaleResponse(s))
	}

	return &dto.ReportDTO{
		Period:             period,
		Revenue:            total,
		RevenueLabel:       format.FormatCurrency(total),
		SalesCount:         len(filtered),
		AverageTicket:      avg,
		AverageTicketLabel: format.FormatCurrency(avg),
		TopProducts:        topProducts(filtered, reportTopProducts),
		DailySales:         dailySales(all, now),
		Sales:              list,
	}, nil
}

func periodFilter(period, start, end string, now time.Time) (func(time.Time) bool, error) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	switch period {
	case dto.PeriodAll:
		return func(time.Time) bool { return true }, nil
	case dto.PeriodToday:
		return func(t time.Time) bool { return sameDay(t.In(loc), today) }, nil
	case dto.PeriodWeek:
		from := now.Add(-reportDays * 24 * time.Hour)
		return func(t time.Time) bool { return !t.Before(from) }, nil
	case dto.PeriodMonth:
		from := time.Date(now.Year(), now.Month()-1, now.Day(), 0, 0, 0, 0, loc)
		return func(t time.Time) bool { return !t.Before(from) }, nil
	case dto.PeriodCustom:
		if start == "" || end == "" {
			return func(time.Time) bool { return true }, nil
		}
		from, err := time.ParseInLocation(isoDate, start, loc)
		if err != nil {
			return nil, fmt.Errorf("inicio %q: %w", start, domain.ErrInvalidInput)
		}
		to, err := time.ParseInLocation(isoDate, end, loc)
		if err != nil {
			return nil, fmt.Errorf("fin %q: %w", end, domain.ErrInvalidInput)
		}
		until := to.AddDate(0, 0, 1)
		return func(t time.Time) bool { return !t.Before(from) && t.Before(until) }, nil
	}
	return nil, fmt.Errorf("período %q: %w", period, domain.ErrInvalidInput)
}

// dailySales conteo e ingreso por día calendario de los últimos 7 días, el más antiguo primero.
func dailySales(all []entity.Sale, now time.Time) []dto.DailySalesDTO {
	loc := now.Location()
	out := make([]dto.DailySalesDTO, 0, reportDays)
	for i := reportDays - 1; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day()-i, 0, 0, 0, 0, loc)
		row := dto.DailySalesDTO{
			Day:     weekdays[day.Weekday()],
			Date:    format.FormatDate(day),
			Revenue: decimal.Zero,
		}
		for _, s := range all {
			if sameDay(s.CreatedAt.In(loc), day) {
				row.Count++
				row.Revenue = row.Revenue.Add(s.TotalAmount)
			}
		}
		out = append(out, row)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
