package brdoc

// ValidatePhone acepta teléfonos con DDD de 10 dígitos (fijo) u 11 dígitos (celular),
// ignorando paréntesis, espacios y guiones.
func ValidatePhone(phone string) bool {
	n := len(Digits(phone))
	return n == 10 || n == 11
}
