package validation_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/validation"
)

func validProduct() entity.Product {
	return entity.Product{
		Name:        "Caderno",
		Price:       decimal.RequireFromString("12.50"),
		Quantity:    10,
		Description: "Caderno universitário 200 folhas",
	}
}

func fields(errs []entity.ValidationError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Field)
	}
	return out
}

func TestValidateProduct_ValidoIdempotente(t *testing.T) {
	p := validProduct()
	first := validation.ValidateProduct(p)
	second := validation.ValidateProduct(p)
	require.NotNil(t, first)
	assert.Empty(t, first)
	assert.Empty(t, second)
}

func TestValidateProduct_ReglasIndividuales(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*entity.Product)
		field  string
		msg    string
	}{
		{"nombre vacío", func(p *entity.Product) { p.Name = "" }, validation.FieldName, validation.MsgNameRequired},
		{"nombre solo espacios", func(p *entity.Product) { p.Name = "   \t" }, validation.FieldName, validation.MsgNameRequired},
		{"precio cero", func(p *entity.Product) { p.Price = decimal.Zero }, validation.FieldPrice, validation.MsgPriceNotPositive},
		{"precio negativo", func(p *entity.Product) { p.Price = decimal.NewFromInt(-1) }, validation.FieldPrice, validation.MsgPriceNotPositive},
		{"cantidad negativa", func(p *entity.Product) { p.Quantity = -1 }, validation.FieldQuantity, validation.MsgQuantityNegative},
		{"descripción vacía", func(p *entity.Product) { p.Description = " " }, validation.FieldDescription, validation.MsgDescriptionRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(&p)
			errs := validation.ValidateProduct(p)
			require.Len(t, errs, 1)
			assert.Equal(t, tc.field, errs[0].Field)
			assert.Equal(t, tc.msg, errs[0].Message)
		})
	}
}

func TestValidateProduct_CantidadCeroValida(t *testing.T) {
	p := validProduct()
	p.Quantity = 0
	assert.Empty(t, validation.ValidateProduct(p))
}

func TestValidateProduct_TodasLasFallasJuntas(t *testing.T) {
	errs := validation.ValidateProduct(entity.Product{Quantity: -3})
	assert.Equal(t, []string{
		validation.FieldName, validation.FieldPrice, validation.FieldQuantity, validation.FieldDescription,
	}, fields(errs))
}

func TestValidateSaleHeader(t *testing.T) {
	ok := entity.Customer{CPF: "529.982.247-25", Phone: "(11) 98765-4321"}
	assert.Empty(t, validation.ValidateSaleHeader("15/03/2024", ok))

	msgs := validation.ValidateSaleHeader("31/02/2024", entity.Customer{CPF: "111.111.111-11", Phone: "123"})
	assert.Equal(t, []string{validation.MsgInvalidDate, validation.MsgInvalidCPF, validation.MsgInvalidPhone}, msgs)
}

func TestInsufficientStockMessage(t *testing.T) {
	assert.Equal(t, "Estoque insuficiente para Caneta", validation.InsufficientStockMessage("Caneta"))
}
