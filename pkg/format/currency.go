// Package format convierte entre el texto que escribe el usuario (moneda R$, fechas DD/MM/AAAA)
// y los valores canónicos del dominio. Ninguna función falla: ante texto ilegible se degrada
// a un valor por defecto para no bloquear la digitación.
package format

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// CurrencySymbol símbolo del Real brasileño.
const CurrencySymbol = "R$"

var (
	brPrinter     = message.NewPrinter(language.BrazilianPortuguese)
	nonAmountRune = regexp.MustCompile(`[^\d,]`)
	leadingNumber = regexp.MustCompile(`^\d*\.?\d*`)
)

// FormatCurrency presenta un monto como moneda brasileña: "R$ 1.234,56", "-R$ 10,00".
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	fixed := rounded.StringFixed(2)
	dot := strings.IndexByte(fixed, '.')
	return sign + CurrencySymbol + " " + groupThousands(rounded.Truncate(0)) + "," + fixed[dot+1:]
}

// groupThousands agrupa la parte entera con separador de miles pt-BR sin pasar por float64.
func groupThousands(whole decimal.Decimal) string {
	if n := whole.BigInt(); n.IsInt64() {
		return brPrinter.Sprint(number.Decimal(n.Int64()))
	}
	digits := whole.String()
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ParseCurrency convierte texto de moneda en monto: descarta todo lo que no sea dígito o coma,
// toma la primera coma como separador decimal y lee el prefijo numérico válido.
// Contrato deliberado: nunca falla; texto sin número devuelve cero.
func ParseCurrency(text string) decimal.Decimal {
	clean := nonAmountRune.ReplaceAllString(text, "")
	clean = strings.Replace(clean, ",", ".", 1)
	prefix := leadingNumber.FindString(clean)
	if prefix == "" || prefix == "." {
		return decimal.Zero
	}
	if strings.HasPrefix(prefix, ".") {
		prefix = "0" + prefix
	}
	prefix = strings.TrimSuffix(prefix, ".")
	amount, err := decimal.NewFromString(prefix)
	if err != nil {
		return decimal.Zero
	}
	return amount
}
