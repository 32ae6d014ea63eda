package brdoc

import (
	"regexp"
	"strconv"
	"time"
)

var dateRe = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)

// ValidateDate exige el formato exacto DD/MM/AAAA y que la fecha exista en el calendario.
// time.Date normaliza días fuera de rango (31/04 → 01/05); la comparación de ida y vuelta
// detecta esa normalización. Los años 0000–0099 se rechazan.
func ValidateDate(s string) bool {
	day, month, year, ok := SplitDate(s)
	if !ok {
		return false
	}
	if year < 100 {
		return false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return t.Day() == day && int(t.Month()) == month && t.Year() == year
}

// SplitDate separa una fecha DD/MM/AAAA en sus componentes numéricos sin validar el calendario.
func SplitDate(s string) (day, month, year int, ok bool) {
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])
	return day, month, year, true
}
