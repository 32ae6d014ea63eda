package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jhoicas/controle-vendas/pkg/logger"
)

// Record valor tipado guardado bajo una clave. Get nunca falla: ante clave ausente o valor
// corrupto se usa el valor por defecto. Set y Update actualizan el valor en memoria aunque la
// escritura al backend falle; la falla queda registrada en el log.
//
// Record no es seguro para uso concurrente; su dueño serializa el acceso.
type Record[T any] struct {
	backend Backend
	key     string
	log     *logger.Logger
	value   T
}

// Open lee la clave una sola vez y devuelve el registro listo para usar.
func Open[T any](ctx context.Context, backend Backend, key string, def T, log *logger.Logger) *Record[T] {
	r := &Record[T]{backend: backend, key: key, log: log, value: def}

	raw, err := backend.Load(ctx, key)
	switch {
	case errors.Is(err, ErrKeyNotFound):
		return r
	case err != nil:
		log.Error().Err(err).Str("key", key).Msg("leer registro; se usa el valor por defecto")
		return r
	}

	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Error().Err(err).Str("key", key).Msg("registro corrupto; se usa el valor por defecto")
		return r
	}
	r.value = v
	return r
}

// Key clave del registro.
func (r *Record[T]) Key() string { return r.key }

// Get devuelve el último valor escrito (o el valor por defecto).
func (r *Record[T]) Get() T { return r.value }

// Set reemplaza el valor completo.
func (r *Record[T]) Set(ctx context.Context, v T) {
	SetAll(ctx, r.backend, r.log, r.Stage(v))
}

// Update reemplaza el valor por fn(valor actual).
func (r *Record[T]) Update(ctx context.Context, fn func(T) T) {
	r.Set(ctx, fn(r.value))
}

// Stage prepara una escritura para aplicarla con SetAll junto a otras.
func (r *Record[T]) Stage(v T) Write {
	return &stagedWrite[T]{rec: r, value: v}
}

// Write escritura preparada sobre un registro.
type Write interface {
	key() string
	encode() ([]byte, error)
	apply()
}

type stagedWrite[T any] struct {
	rec   *Record[T]
	value T
}

func (w *stagedWrite[T]) key() string             { return w.rec.key }
func (w *stagedWrite[T]) encode() ([]byte, error) { return json.Marshal(w.value) }
func (w *stagedWrite[T]) apply()                  { w.rec.value = w.value }

// SetAll aplica varias escrituras como una unidad: si alguna no se puede serializar no se
// aplica ninguna; si se serializan todas, se aplican en memoria y se persisten en una sola
// llamada (atómica cuando el backend es BatchBackend). Errores de persistencia solo se registran.
func SetAll(ctx context.Context, backend Backend, log *logger.Logger, writes ...Write) {
	values := make(map[string][]byte, len(writes))
	for _, w := range writes {
		raw, err := w.encode()
		if err != nil {
			log.Error().Err(fmt.Errorf("serializar %s: %w", w.key(), err)).Msg("escritura descartada")
			return
		}
		values[w.key()] = raw
	}
	for _, w := range writes {
		w.apply()
	}
	if err := saveAll(ctx, backend, values); err != nil {
		for k := range values {
			log.Error().Err(err).Str("key", k).Msg("guardar registro")
		}
	}
}
