package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-vendas/pkg/logger"
)

type item struct {
	ID  string `json:"id"`
	Qty int    `json:"qty"`
}

// failingBackend backend simulado con testify/mock.
type failingBackend struct {
	mock.Mock
}

func (f *failingBackend) Load(ctx context.Context, key string) ([]byte, error) {
	args := f.Called(ctx, key)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

func (f *failingBackend) Save(ctx context.Context, key string, value []byte) error {
	args := f.Called(ctx, key, value)
	return args.Error(0)
}

func TestOpen_ClaveAusenteUsaDefault(t *testing.T) {
	rec := Open(context.Background(), NewMemoryBackend(), KeyProducts, []item{}, logger.Nop())

	assert.NotNil(t, rec.Get())
	assert.Empty(t, rec.Get())
	assert.Equal(t, KeyProducts, rec.Key())
}

func TestRecord_SetYReabrir(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	rec := Open(ctx, backend, KeyProducts, []item{}, logger.Nop())

	rec.Set(ctx, []item{{ID: "p1", Qty: 5}})
	assert.Equal(t, []item{{ID: "p1", Qty: 5}}, rec.Get())

	reopened := Open(ctx, backend, KeyProducts, []item{}, logger.Nop())
	assert.Equal(t, []item{{ID: "p1", Qty: 5}}, reopened.Get())
}

func TestRecord_UpdateRecibeValorActual(t *testing.T) {
	ctx := context.Background()
	rec := Open(ctx, NewMemoryBackend(), KeySales, []item{{ID: "a"}}, logger.Nop())

	rec.Update(ctx, func(cur []item) []item {
		return append(cur, item{ID: "b"})
	})
	rec.Update(ctx, func(cur []item) []item {
		return append(cur, item{ID: "c"})
	})

	require.Len(t, rec.Get(), 3)
	assert.Equal(t, "c", rec.Get()[2].ID)
}

func TestRecord_SetConValorDeFuncionNoLaInvoca(t *testing.T) {
	ctx := context.Background()
	rec := Open[func() int](ctx, NewMemoryBackend(), "fn", nil, logger.Nop())
	called := false

	// Un func no se puede serializar: la escritura se descarta pero nunca se invoca.
	rec.Set(ctx, func() int { called = true; return 1 })

	assert.False(t, called)
	assert.Nil(t, rec.Get())
}

func TestOpen_ErrorDeLecturaUsaDefault(t *testing.T) {
	backend := new(failingBackend)
	backend.On("Load", mock.Anything, KeyProducts).Return(nil, errors.New("disco"))

	rec := Open(context.Background(), backend, KeyProducts, []item{{ID: "def"}}, logger.Nop())

	assert.Equal(t, []item{{ID: "def"}}, rec.Get())
	backend.AssertExpectations(t)
}

func TestRecord_FallaAlGuardarConservaValorEnMemoria(t *testing.T) {
	ctx := context.Background()
	backend := new(failingBackend)
	backend.On("Load", mock.Anything, KeyProducts).Return(nil, ErrKeyNotFound)
	backend.On("Save", mock.Anything, KeyProducts, mock.Anything).Return(errors.New("cuota excedida"))

	rec := Open(ctx, backend, KeyProducts, []item{}, logger.Nop())
	assert.NotPanics(t, func() {
		rec.Set(ctx, []item{{ID: "p1", Qty: 1}})
	})

	assert.Equal(t, []item{{ID: "p1", Qty: 1}}, rec.Get())
	backend.AssertNumberOfCalls(t, "Save", 1)
}

func TestSetAll_EscribeAmbasClaves(t *testing.T) {
	ctx := context.Background()
	backend := NewMemoryBackend()
	products := Open(ctx, backend, KeyProducts, []item{}, logger.Nop())
	sales := Open(ctx, backend, KeySales, []item{}, logger.Nop())

	SetAll(ctx, backend, logger.Nop(),
		products.Stage([]item{{ID: "p1", Qty: 2}}),
		sales.Stage([]item{{ID: "s1", Qty: 3}}),
	)

	assert.Equal(t, 2, products.Get()[0].Qty)
	assert.Equal(t, 3, sales.Get()[0].Qty)

	raw, err := backend.Load(ctx, KeySales)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"s1","qty":3}]`, string(raw))
}

func TestFileBackend_RoundTripYClaveAusente(t *testing.T) {
	ctx := context.Background()
	fb, err := NewFileBackend(filepath.Join(t.TempDir(), "data"))
	require.NoError(t, err)

	_, err = fb.Load(ctx, KeyProducts)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, fb.Save(ctx, KeyProducts, []byte(`[1,2]`)))
	raw, err := fb.Load(ctx, KeyProducts)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(raw))
}

func TestFileBackend_SaveAllNoDejaTemporales(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fb, err := NewFileBackend(dir)
	require.NoError(t, err)

	require.NoError(t, fb.SaveAll(ctx, map[string][]byte{
		KeyProducts: []byte(`[]`),
		KeySales:    []byte(`[]`),
	}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{KeyProducts + ".json", KeySales + ".json"}, names)
}

func TestOpen_ArchivoCorruptoUsaDefault(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyProducts+".json"), []byte("{no es json"), 0o644))
	fb, err := NewFileBackend(dir)
	require.NoError(t, err)

	rec := Open(ctx, fb, KeyProducts, []item{}, logger.Nop())
	assert.Empty(t, rec.Get())

	// La siguiente escritura reemplaza el archivo corrupto.
	rec.Set(ctx, []item{{ID: "p1"}})
	reopened := Open(ctx, fb, KeyProducts, []item{}, logger.Nop())
	assert.Equal(t, []item{{ID: "p1"}}, reopened.Get())
}
