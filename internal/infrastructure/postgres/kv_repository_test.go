package postgres

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-vendas/internal/infrastructure/store"
)

func TestRecordAmount(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"ventas", store.KeySales, `[{"id":"a","totalAmount":"30.5"},{"id":"b","totalAmount":"12.25"}]`, "42.75"},
		{"productos", store.KeyProducts, `[{"id":"p1","price":"12.50","quantity":3},{"id":"p2","price":"2","quantity":0}]`, "37.5"},
		{"vacío", store.KeySales, `[]`, "0"},
		{"otra clave", "otra", `{"x":1}`, "0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := recordAmount(tc.key, []byte(tc.value))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), got.String())
		})
	}

	_, err := recordAmount(store.KeyProducts, []byte(`{roto`))
	assert.Error(t, err)
}
