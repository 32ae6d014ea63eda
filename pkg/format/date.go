package format

import (
	"strconv"
	"strings"
	"time"
)

// DateLayout formato de fecha brasileño usado en formularios y reportes.
const DateLayout = "02/01/2006"

// FormatDate presenta t como DD/MM/AAAA en su propia zona horaria.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatDateString acepta un timestamp RFC 3339 (como CreatedAt persistido); cualquier otro
// texto, incluida una fecha DD/MM/AAAA ya formateada, se devuelve sin cambios.
func FormatDateString(s string) string {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return FormatDate(t)
	}
	return s
}

// ParseDate divide DD/MM/AAAA por "/" y construye la medianoche local de esa fecha.
// No valida los componentes: días o meses fuera de rango se normalizan (31/04 → 01/05).
// El llamador debe validar con brdoc.ValidateDate antes de confiar en el resultado.
// Con menos de tres partes o partes no numéricas devuelve el tiempo cero.
func ParseDate(s string) time.Time {
	parts := strings.Split(s, "/")
	if len(parts) < 3 {
		return time.Time{}
	}
	day, errD := strconv.Atoi(strings.TrimSpace(parts[0]))
	month, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
	year, errY := strconv.Atoi(strings.TrimSpace(parts[2]))
	if errD != nil || errM != nil || errY != nil {
		return time.Time{}
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
}

// ParseDateISO igual que ParseDate pero devuelve el instante en ISO 8601 UTC.
// Devuelve "" si la fecha no se pudo construir.
func ParseDateISO(s string) string {
	t := ParseDate(s)
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
