package sales_test

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/sales"
	"github.com/jhoicas/controle-vendas/internal/domain/validation"
)

// fakeCatalog catálogo en memoria para el motor.
type fakeCatalog map[string]entity.Product

func (c fakeCatalog) FindProductByID(id string) (entity.Product, bool) {
	p, ok := c[id]
	return p, ok
}

func (c fakeCatalog) setStock(id string, qty int) {
	p := c[id]
	p.Quantity = qty
	c[id] = p
}

func newCatalog() fakeCatalog {
	return fakeCatalog{
		"p1": {ID: "p1", Name: "Caneta", Price: decimal.RequireFromString("10.00"), Quantity: 5, Description: "Azul"},
		"p2": {ID: "p2", Name: "Caderno", Price: decimal.RequireFromString("2.35"), Quantity: 2, Description: "Pautado"},
		"p0": {ID: "p0", Name: "Esgotado", Price: decimal.RequireFromString("1.00"), Quantity: 0, Description: "Sem estoque"},
	}
}

var validCustomer = entity.Customer{CPF: "529.982.247-25", Phone: "(11) 98765-4321"}

const validDate = "15/03/2024"

func sumLines(items []entity.SaleItem) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}

func TestAddProduct_MismoProductoDosVeces(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)

	require.NoError(t, d.AddProduct(cat, "p1"))
	require.NoError(t, d.AddProduct(cat, "p1"))

	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("20").Equal(items[0].TotalPrice))
	assert.True(t, decimal.RequireFromString("20").Equal(d.Total()))
	assert.Equal(t, sales.StateBuilding, d.State())
}

func TestAddProduct_SinStockNoTieneEfecto(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)

	require.NoError(t, d.AddProduct(cat, "p0"))
	require.NoError(t, d.AddProduct(cat, "inexistente"))

	assert.Empty(t, d.Items())
	assert.True(t, d.Total().IsZero())
	assert.Equal(t, sales.StateEmpty, d.State())
}

func TestAddProduct_NoSuperaElStock(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	for i := 0; i < 5; i++ {
		require.NoError(t, d.AddProduct(cat, "p2"))
	}
	assert.Equal(t, 2, d.Quantity("p2"))
	assert.True(t, decimal.RequireFromString("4.70").Equal(d.Total()))
}

func TestAddProduct_CongelaNombreYPrecio(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	require.NoError(t, d.AddProduct(cat, "p1"))

	p := cat["p1"]
	p.Name = "Caneta renomeada"
	p.Price = decimal.RequireFromString("99")
	cat["p1"] = p
	require.NoError(t, d.AddProduct(cat, "p1"))

	items := d.Items()
	assert.Equal(t, "Caneta", items[0].ProductName)
	assert.True(t, decimal.RequireFromString("10").Equal(items[0].UnitPrice))
	assert.True(t, decimal.RequireFromString("20").Equal(d.Total()))
}

func TestChangeQuantity_AcotaYElimina(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	require.NoError(t, d.AddProduct(cat, "p1"))

	require.NoError(t, d.ChangeQuantity(cat, "p1", 100))
	assert.Equal(t, 5, d.Quantity("p1"))

	require.NoError(t, d.ChangeQuantity(cat, "p1", -2))
	assert.Equal(t, 3, d.Quantity("p1"))

	require.NoError(t, d.ChangeQuantity(cat, "p1", -100))
	assert.Empty(t, d.Items())
	assert.True(t, d.Total().IsZero())
	assert.Equal(t, sales.StateEmpty, d.State())
}

func TestChangeQuantity_SecuenciasAleatorias(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for run := 0; run < 200; run++ {
		cat := newCatalog()
		d := sales.NewDraft("d", validDate)
		require.NoError(t, d.AddProduct(cat, "p1"))
		require.NoError(t, d.AddProduct(cat, "p2"))

		for step := 0; step < 30; step++ {
			id := []string{"p1", "p2"}[rng.Intn(2)]
			if rng.Intn(4) == 0 {
				require.NoError(t, d.AddProduct(cat, id))
			} else {
				require.NoError(t, d.ChangeQuantity(cat, id, rng.Intn(9)-4))
			}

			for _, it := range d.Items() {
				assert.Greater(t, it.Quantity, 0, "una línea en 0 no debe permanecer")
				assert.LessOrEqual(t, it.Quantity, cat[it.ProductID].Quantity)
				assert.True(t, it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))).Equal(it.TotalPrice))
			}
			assert.True(t, sumLines(d.Items()).Equal(d.Total()), "total desincronizado")
		}
	}
}

func TestChangeQuantity_ProductoFueraDelCatalogo(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	require.NoError(t, d.AddProduct(cat, "p1"))
	delete(cat, "p1")

	require.NoError(t, d.ChangeQuantity(cat, "p1", -1))
	assert.Equal(t, 1, d.Quantity("p1"), "sin producto en catálogo no se ajusta")

	require.NoError(t, d.RemoveLine("p1"))
	assert.Empty(t, d.Items())
}

func TestRemoveLine(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	require.NoError(t, d.AddProduct(cat, "p1"))
	require.NoError(t, d.AddProduct(cat, "p2"))

	require.NoError(t, d.RemoveLine("p1"))
	require.NoError(t, d.RemoveLine("nao-existe"))

	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)
	assert.True(t, decimal.RequireFromString("2.35").Equal(d.Total()))
}

func TestCommit_EscenarioCompleto(t *testing.T) {
	cat := fakeCatalog{
		"p1": {ID: "p1", Name: "Produto 1", Price: decimal.RequireFromString("10.00"), Quantity: 5, Description: "x"},
	}
	d := sales.NewDraft("d1", validDate)

	require.NoError(t, d.AddProduct(cat, "p1"))
	items := d.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("10.00").Equal(items[0].TotalPrice))

	require.NoError(t, d.ChangeQuantity(cat, "p1", 1))
	require.NoError(t, d.ChangeQuantity(cat, "p1", 1))
	items = d.Items()
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, decimal.RequireFromString("30.00").Equal(items[0].TotalPrice))

	require.NoError(t, d.SetHeader(validDate, validCustomer))
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	sale, decrements, err := d.Commit(cat, "s1", now)
	require.NoError(t, err)

	assert.Equal(t, "s1", sale.ID)
	assert.Equal(t, validDate, sale.Date)
	assert.Equal(t, validCustomer, sale.Customer)
	assert.Equal(t, now, sale.CreatedAt)
	assert.True(t, decimal.RequireFromString("30.00").Equal(sale.TotalAmount))
	assert.True(t, sale.ItemsTotal().Equal(sale.TotalAmount))
	assert.Equal(t, []entity.StockDecrement{{ProductID: "p1", Sold: 3, NewQuantity: 2}}, decrements)
	assert.Equal(t, sales.StateCommitted, d.State())

	// El catálogo no se modifica: los descuentos los aplica el llamador.
	assert.Equal(t, 5, cat["p1"].Quantity)
}

func TestCommit_Rechazos(t *testing.T) {
	cases := []struct {
		name     string
		date     string
		customer entity.Customer
		items    bool
		drop     bool
		want     []string
	}{
		{"cpf inválido", validDate, entity.Customer{CPF: "123.456.789-00", Phone: validCustomer.Phone}, true, false,
			[]string{validation.MsgInvalidCPF}},
		{"teléfono inválido", validDate, entity.Customer{CPF: validCustomer.CPF, Phone: "(11) 9876"}, true, false,
			[]string{validation.MsgInvalidPhone}},
		{"fecha inválida", "31/06/2024", validCustomer, true, false,
			[]string{validation.MsgInvalidDate}},
		{"sin líneas", validDate, validCustomer, false, false,
			[]string{validation.MsgNoItems}},
		{"stock reducido", validDate, validCustomer, true, true,
			[]string{"Estoque insuficiente para Caneta"}},
		{"todo junto", "", entity.Customer{}, false, false,
			[]string{validation.MsgInvalidDate, validation.MsgInvalidCPF, validation.MsgInvalidPhone, validation.MsgNoItems}},
		{"todo junto con stock", "99/99/9999", entity.Customer{CPF: "000.000.000-00", Phone: "1"}, true, true,
			[]string{validation.MsgInvalidDate, validation.MsgInvalidCPF, validation.MsgInvalidPhone, "Estoque insuficiente para Caneta"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cat := newCatalog()
			d := sales.NewDraft("d1", validDate)
			if tc.items {
				require.NoError(t, d.AddProduct(cat, "p1"))
				require.NoError(t, d.AddProduct(cat, "p1"))
			}
			if tc.drop {
				cat.setStock("p1", 1)
			}
			require.NoError(t, d.SetHeader(tc.date, tc.customer))

			sale, decrements, err := d.Commit(cat, "s1", time.Now())
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrDraftInvalid))
			assert.Equal(t, !tc.items, errors.Is(err, domain.ErrEmptyDraft))
			assert.Equal(t, tc.drop, errors.Is(err, domain.ErrInsufficientStock))

			var vf *sales.ValidationFailure
			require.True(t, errors.As(err, &vf))
			assert.Equal(t, tc.want, vf.Messages)
			assert.Empty(t, sale.ID)
			assert.Nil(t, decrements)
			assert.NotEqual(t, sales.StateCommitted, d.State(), "el borrador sigue editable")
		})
	}
}

func TestCommit_ProductoEliminadoDelCatalogo(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	require.NoError(t, d.AddProduct(cat, "p2"))
	require.NoError(t, d.SetHeader(validDate, validCustomer))
	delete(cat, "p2")

	_, _, err := d.Commit(cat, "s1", time.Now())
	var vf *sales.ValidationFailure
	require.ErrorAs(t, err, &vf)
	assert.Equal(t, []string{"Estoque insuficiente para Caderno"}, vf.Messages)
}

func TestValidate_Estados(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	assert.Equal(t, sales.StateEmpty, d.State())

	require.NoError(t, d.AddProduct(cat, "p1"))
	require.NoError(t, d.SetHeader(validDate, validCustomer))
	assert.Empty(t, d.Validate(cat))
	assert.Equal(t, sales.StateValidated, d.State())

	require.NoError(t, d.AddProduct(cat, "p1"))
	assert.Equal(t, sales.StateBuilding, d.State(), "mutar invalida la validación previa")
}

func TestCommit_BorradorConfirmadoEsInmutable(t *testing.T) {
	cat := newCatalog()
	d := sales.NewDraft("d1", validDate)
	require.NoError(t, d.AddProduct(cat, "p1"))
	require.NoError(t, d.SetHeader(validDate, validCustomer))
	_, _, err := d.Commit(cat, "s1", time.Now())
	require.NoError(t, err)

	assert.ErrorIs(t, d.AddProduct(cat, "p1"), domain.ErrDraftCommitted)
	assert.ErrorIs(t, d.ChangeQuantity(cat, "p1", 1), domain.ErrDraftCommitted)
	assert.ErrorIs(t, d.RemoveLine("p1"), domain.ErrDraftCommitted)
	assert.ErrorIs(t, d.SetHeader(validDate, validCustomer), domain.ErrDraftCommitted)
	_, _, err = d.Commit(cat, "s2", time.Now())
	assert.ErrorIs(t, err, domain.ErrDraftCommitted)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "empty", sales.StateEmpty.String())
	assert.Equal(t, "committed", sales.StateCommitted.String())
}
