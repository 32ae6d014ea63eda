// Package mask reformatea la entrada parcial del usuario a medida que escribe.
// Cada máscara recalcula la salida completa a partir de los dígitos acumulados (no concatena
// sobre la máscara previa), de modo que ediciones en medio del texto y borrados no la corrompen.
// Si la entrada tiene más dígitos de los que admite el patrón, se devuelve sin cambios.
package mask

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/pkg/brdoc"
	"github.com/jhoicas/controle-vendas/pkg/format"
)

// Kind identifica una máscara por nombre (usado por la API HTTP).
type Kind string

const (
	KindCPF      Kind = "cpf"
	KindPhone    Kind = "phone"
	KindDate     Kind = "date"
	KindCurrency Kind = "currency"
)

// Apply aplica la máscara indicada; ok es false si kind no existe.
func Apply(kind Kind, value string) (masked string, ok bool) {
	switch kind {
	case KindCPF:
		return CPF(value), true
	case KindPhone:
		return Phone(value), true
	case KindDate:
		return Date(value), true
	case KindCurrency:
		return Currency(value), true
	}
	return value, false
}

// CPF agrupa como XXX.XXX.XXX-XX; grupos parciales permitidos.
func CPF(value string) string {
	groups, ok := split(brdoc.Digits(value), 3, 3, 3, 2)
	if !ok {
		return value
	}
	var b strings.Builder
	b.WriteString(groups[0])
	if groups[1] != "" {
		b.WriteString("." + groups[1])
	}
	if groups[2] != "" {
		b.WriteString("." + groups[2])
	}
	if groups[3] != "" {
		b.WriteString("-" + groups[3])
	}
	return b.String()
}

// Phone agrupa como (XX) XXXXX-XXXX. El paréntesis de cierre aparece exactamente cuando el
// DDD completa 2 dígitos, aunque todavía no se haya escrito nada más.
func Phone(value string) string {
	groups, ok := split(brdoc.Digits(value), 2, 5, 4)
	if !ok {
		return value
	}
	ddd, part1, part2 := groups[0], groups[1], groups[2]
	var b strings.Builder
	if ddd != "" {
		b.WriteString("(" + ddd)
	}
	if len(ddd) == 2 {
		b.WriteString(") ")
	}
	b.WriteString(part1)
	if part2 != "" {
		b.WriteString("-" + part2)
	}
	return b.String()
}

// Date agrupa como DD/MM/AAAA; grupos parciales permitidos.
func Date(value string) string {
	groups, ok := split(brdoc.Digits(value), 2, 2, 4)
	if !ok {
		return value
	}
	var b strings.Builder
	b.WriteString(groups[0])
	if groups[1] != "" {
		b.WriteString("/" + groups[1])
	}
	if groups[2] != "" {
		b.WriteString("/" + groups[2])
	}
	return b.String()
}

// Currency interpreta todos los dígitos como centavos (entrada tipo calculadora):
// "150" → "R$ 1,50". Sin dígitos devuelve "R$ 0,00".
func Currency(value string) string {
	digits := brdoc.Digits(value)
	if len(digits) == 0 {
		return format.FormatCurrency(decimal.Zero)
	}
	cents, err := decimal.NewFromString(string(digits))
	if err != nil {
		return format.FormatCurrency(decimal.Zero)
	}
	return format.FormatCurrency(cents.Shift(-2))
}

// split reparte los dígitos en grupos de tamaño máximo sizes, llenando cada grupo antes
// del siguiente. ok es false si sobran dígitos.
func split(digits []byte, sizes ...int) ([]string, bool) {
	groups := make([]string, len(sizes))
	rest := digits
	for i, size := range sizes {
		n := min(size, len(rest))
		groups[i] = string(rest[:n])
		rest = rest[n:]
	}
	return groups, len(rest) == 0
}
