package format

import "github.com/google/uuid"

// GenerateID devuelve un identificador UUIDv7: prefijo de 48 bits con el instante en
// milisegundos y sufijo aleatorio. Las colisiones no se previenen, solo son improbables.
func GenerateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
