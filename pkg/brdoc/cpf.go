// Package brdoc valida documentos y campos de formato brasileño capturados en el
// formulario de venta: CPF (dígitos verificadores módulo 11), teléfono y fecha DD/MM/AAAA.
package brdoc

import "unicode"

// cpfLength cantidad de dígitos de un CPF completo (9 base + 2 verificadores).
const cpfLength = 11

// ValidateCPF valida que el CPF (con o sin puntos/guion) tenga 11 dígitos, no sean
// todos iguales y que ambos dígitos verificadores coincidan con el algoritmo módulo 11.
// cpf puede ser "529.982.247-25" o "52998224725".
func ValidateCPF(cpf string) bool {
	digits := Digits(cpf)
	if len(digits) != cpfLength {
		return false
	}
	if allEqual(digits) {
		return false
	}
	if cpfCheckDigit(digits[:9]) != digits[9] {
		return false
	}
	return cpfCheckDigit(digits[:10]) == digits[10]
}

// ComputeCPFCheckDigits devuelve los dos dígitos verificadores para los 9 dígitos base.
// ok es false si no hay al menos 9 dígitos en base.
func ComputeCPFCheckDigits(base string) (first, second byte, ok bool) {
	digits := Digits(base)
	if len(digits) < 9 {
		return 0, 0, false
	}
	first = cpfCheckDigit(digits[:9])
	second = cpfCheckDigit(append(append([]byte{}, digits[:9]...), first))
	return first, second, true
}

// cpfCheckDigit pesos len+1..2 sobre los dígitos; resto = (suma*10) % 11, 10 → 0.
func cpfCheckDigit(digits []byte) byte {
	weight := len(digits) + 1
	var sum int
	for i, d := range digits {
		sum += int(d-'0') * (weight - i)
	}
	remainder := (sum * 10) % 11
	if remainder == 10 || remainder == 11 {
		remainder = 0
	}
	return byte('0' + remainder)
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

// Digits extrae solo los dígitos ASCII de s, en orden.
func Digits(s string) []byte {
	var out []byte
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
