package dto

// ImportRowError fila de la planilla que no se pudo importar.
type ImportRowError struct {
	Line    int      `json:"line"`
	Name    string   `json:"name,omitempty"`
	Reasons []string `json:"reasons"`
}

// ImportResult resumen de una importación de productos.
type ImportResult struct {
	Created int              `json:"created"`
	Skipped int              `json:"skipped"`
	Errors  []ImportRowError `json:"errors"`
}
