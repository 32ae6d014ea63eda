package sales

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-vendas/internal/application/catalog"
	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	draftpkg "github.com/jhoicas/controle-vendas/internal/domain/sales"
	"github.com/jhoicas/controle-vendas/internal/domain/validation"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/store"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

var customer = dto.SetCustomerRequest{Date: "15/03/2024", CPF: "529.982.247-25", Phone: "(11) 98765-4321"}

func setup(t *testing.T) (*SalesUseCase, *catalog.Store) {
	t.Helper()
	st := catalog.New(context.Background(), store.NewMemoryBackend(), logger.Nop())
	require.NoError(t, st.Create(entity.Product{ID: "p1", Name: "Caneta", Price: decimal.NewFromInt(10), Quantity: 5, Description: "Azul"}))
	require.NoError(t, st.Create(entity.Product{ID: "p2", Name: "Caderno", Price: decimal.RequireFromString("25.90"), Quantity: 1, Description: "A4"}))
	require.NoError(t, st.Create(entity.Product{ID: "p3", Name: "Borracha", Price: decimal.NewFromInt(2), Quantity: 0, Description: "Branca"}))
	uc := NewSalesUseCase(st, st, logger.Nop())
	uc.now = func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local) }
	return uc, st
}

func TestOpenDraft_FechaPorDefectoHoy(t *testing.T) {
	uc, _ := setup(t)

	d := uc.OpenDraft(dto.OpenDraftRequest{})
	assert.Equal(t, "15/03/2024", d.Date)
	assert.Equal(t, "empty", d.State)
	assert.Empty(t, d.Items)

	got, err := uc.GetDraft(d.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, got.ID)
}

func TestCommitDraft_DescuentaStockYRegistraVenta(t *testing.T) {
	uc, st := setup(t)
	d := uc.OpenDraft(dto.OpenDraftRequest{})

	for i := 0; i < 3; i++ {
		_, err := uc.AddItem(d.ID, "p1")
		require.NoError(t, err)
	}
	out, err := uc.SetCustomer(d.ID, customer)
	require.NoError(t, err)
	assert.Equal(t, "R$ 30,00", out.TotalLabel)

	v, err := uc.ValidateDraft(d.ID)
	require.NoError(t, err)
	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)

	sale, err := uc.CommitDraft(d.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(30).Equal(sale.TotalAmount))
	assert.Equal(t, "529.982.247-25", sale.Customer.CPF)
	require.Len(t, sale.Items, 1)
	assert.Equal(t, 3, sale.Items[0].Quantity)

	p, err := st.GetByID("p1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Quantity)
	assert.Len(t, st.ListSales(), 1)

	// El borrador confirmado ya no acepta cambios.
	_, err = uc.AddItem(d.ID, "p1")
	assert.ErrorIs(t, err, domain.ErrDraftCommitted)
	_, err = uc.CommitDraft(d.ID)
	assert.ErrorIs(t, err, domain.ErrDraftCommitted)
	assert.Len(t, st.ListSales(), 1)
}

func TestDrafts_ConfirmadoSaleDelMapaYAbandonadosExpiran(t *testing.T) {
	uc, _ := setup(t)
	clock := time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)
	uc.now = func() time.Time { return clock }

	abandoned := uc.OpenDraft(dto.OpenDraftRequest{})
	sold := uc.OpenDraft(dto.OpenDraftRequest{})
	_, err := uc.AddItem(sold.ID, "p1")
	require.NoError(t, err)
	_, err = uc.SetCustomer(sold.ID, customer)
	require.NoError(t, err)
	_, err = uc.CommitDraft(sold.ID)
	require.NoError(t, err)

	assert.Len(t, uc.drafts, 1)
	assert.Contains(t, uc.committed, sold.ID)
	_, err = uc.GetDraft(sold.ID)
	assert.ErrorIs(t, err, domain.ErrDraftCommitted)

	clock = clock.Add(draftTTL + time.Minute)
	fresh := uc.OpenDraft(dto.OpenDraftRequest{})

	assert.Len(t, uc.drafts, 1)
	assert.Empty(t, uc.committed)
	_, err = uc.GetDraft(abandoned.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetDraft(sold.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.GetDraft(fresh.ID)
	assert.NoError(t, err)
}

func TestDiscardDraft_ConfirmadoBorraLaMarca(t *testing.T) {
	uc, _ := setup(t)
	d := uc.OpenDraft(dto.OpenDraftRequest{})
	_, err := uc.AddItem(d.ID, "p1")
	require.NoError(t, err)
	_, err = uc.SetCustomer(d.ID, customer)
	require.NoError(t, err)
	_, err = uc.CommitDraft(d.ID)
	require.NoError(t, err)

	require.NoError(t, uc.DiscardDraft(d.ID))
	assert.ErrorIs(t, uc.DiscardDraft(d.ID), domain.ErrNotFound)
}

func TestCommitDraft_RechazoNoModificaNada(t *testing.T) {
	uc, st := setup(t)
	d := uc.OpenDraft(dto.OpenDraftRequest{})
	_, err := uc.AddItem(d.ID, "p2")
	require.NoError(t, err)
	_, err = uc.SetCustomer(d.ID, dto.SetCustomerRequest{Date: "15/03/2024", CPF: "111.111.111-11", Phone: "1"})
	require.NoError(t, err)

	_, err = uc.CommitDraft(d.ID)
	var vf *draftpkg.ValidationFailure
	require.True(t, errors.As(err, &vf))
	assert.Equal(t, []string{validation.MsgInvalidCPF, validation.MsgInvalidPhone}, vf.Messages)

	p, _ := st.GetByID("p2")
	assert.Equal(t, 1, p.Quantity)
	assert.Empty(t, st.ListSales())

	got, err := uc.GetDraft(d.ID)
	require.NoError(t, err)
	assert.Equal(t, "building", got.State)
}

func TestCommitDraft_StockBajoEntreBorradores(t *testing.T) {
	uc, st := setup(t)
	first := uc.OpenDraft(dto.OpenDraftRequest{})
	second := uc.OpenDraft(dto.OpenDraftRequest{})
	for _, id := range []string{first.ID, second.ID} {
		_, err := uc.AddItem(id, "p2")
		require.NoError(t, err)
		_, err = uc.SetCustomer(id, customer)
		require.NoError(t, err)
	}

	_, err := uc.CommitDraft(first.ID)
	require.NoError(t, err)

	_, err = uc.CommitDraft(second.ID)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	var vf *draftpkg.ValidationFailure
	require.ErrorAs(t, err, &vf)
	assert.Equal(t, []string{"Estoque insuficiente para Caderno"}, vf.Messages)

	p, _ := st.GetByID("p2")
	assert.Equal(t, 0, p.Quantity)
	assert.Len(t, st.ListSales(), 1)
}

func TestDraft_CambiosDeCantidadYLineas(t *testing.T) {
	uc, _ := setup(t)
	d := uc.OpenDraft(dto.OpenDraftRequest{})

	out, err := uc.AddItem(d.ID, "p3")
	require.NoError(t, err)
	assert.Empty(t, out.Items, "producto agotado no se agrega")

	_, err = uc.AddItem(d.ID, "p1")
	require.NoError(t, err)
	out, err = uc.ChangeQuantity(d.ID, "p1", 10)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Items[0].Quantity)

	out, err = uc.ChangeQuantity(d.ID, "p1", -5)
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	_, err = uc.AddItem(d.ID, "p1")
	require.NoError(t, err)
	out, err = uc.RemoveItem(d.ID, "p1")
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.True(t, out.Total.IsZero())
}

func TestDraft_InexistenteYDescartado(t *testing.T) {
	uc, _ := setup(t)

	_, err := uc.GetDraft("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = uc.ValidateDraft("nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	d := uc.OpenDraft(dto.OpenDraftRequest{Date: "01/01/2024"})
	require.NoError(t, uc.DiscardDraft(d.ID))
	_, err = uc.GetDraft(d.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, uc.DiscardDraft(d.ID), domain.ErrNotFound)
}

func TestValidateDraft_ListaTodosLosMensajes(t *testing.T) {
	uc, _ := setup(t)
	d := uc.OpenDraft(dto.OpenDraftRequest{})
	_, err := uc.SetCustomer(d.ID, dto.SetCustomerRequest{})
	require.NoError(t, err)

	v, err := uc.ValidateDraft(d.ID)
	require.NoError(t, err)
	assert.False(t, v.Valid)
	assert.Equal(t, []string{
		validation.MsgInvalidDate, validation.MsgInvalidCPF, validation.MsgInvalidPhone, validation.MsgNoItems,
	}, v.Errors)
}

func TestListSales_MasRecientePrimero(t *testing.T) {
	uc, st := setup(t)
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, st.AppendSale(entity.Sale{ID: "a", CreatedAt: base}))
	require.NoError(t, st.AppendSale(entity.Sale{ID: "b", CreatedAt: base.Add(2 * time.Hour)}))
	require.NoError(t, st.AppendSale(entity.Sale{ID: "c", CreatedAt: base.Add(time.Hour)}))

	out := uc.ListSales()
	ids := []string{out.Items[0].ID, out.Items[1].ID, out.Items[2].ID}
	assert.Equal(t, []string{"b", "c", "a"}, ids)
	assert.Equal(t, 3, out.Total)

	got, err := uc.GetSale("c")
	require.NoError(t, err)
	assert.Equal(t, "c", got.ID)
	_, err = uc.GetSale("z")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
