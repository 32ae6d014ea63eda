// Package store implementa el almacén persistente de registros: cada colección (productos,
// ventas) se guarda completa bajo una clave como JSON, se lee una vez al iniciar y se
// reescribe de forma síncrona tras cada mutación.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

// Claves de las colecciones persistidas.
const (
	KeyProducts = "sales-products"
	KeySales    = "sales-records"
)

// ErrKeyNotFound la clave no tiene valor guardado.
var ErrKeyNotFound = errors.New("store: clave inexistente")

// Backend persiste blobs por clave.
type Backend interface {
	// Load devuelve el último valor escrito o ErrKeyNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// BatchBackend backend capaz de escribir varias claves como una unidad.
type BatchBackend interface {
	Backend
	SaveAll(ctx context.Context, values map[string][]byte) error
}

// AmountReader backend que además guarda un monto resumen por clave (ingreso total de las
// ventas, valor del stock de los productos) calculado al escribir.
type AmountReader interface {
	// Amount devuelve el monto guardado junto con la clave o ErrKeyNotFound.
	Amount(ctx context.Context, key string) (decimal.Decimal, error)
}

// saveAll usa SaveAll si el backend lo soporta; si no, escribe clave por clave.
func saveAll(ctx context.Context, b Backend, values map[string][]byte) error {
	if bb, ok := b.(BatchBackend); ok {
		return bb.SaveAll(ctx, values)
	}
	var errs []error
	for key, value := range values {
		if err := b.Save(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
