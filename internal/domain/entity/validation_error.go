package entity

// ValidationError falla de validación de un campo; transitoria, nunca se persiste.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
