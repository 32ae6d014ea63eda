package dto

import (
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/sales"
	"github.com/jhoicas/controle-vendas/pkg/format"
	"github.com/jhoicas/controle-vendas/pkg/mask"
)

// NewProductResponse arma la salida de un producto; lowThreshold define el estado low.
func NewProductResponse(p entity.Product, lowThreshold int) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		PriceLabel:  format.FormatCurrency(p.Price),
		Quantity:    p.Quantity,
		Status:      p.StockStatus(lowThreshold),
		CreatedAt:   p.CreatedAt,
	}
}

// NewProductList arma la lista de salida.
func NewProductList(list []entity.Product, lowThreshold int) []ProductResponse {
	items := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, NewProductResponse(p, lowThreshold))
	}
	return items
}

// NewSaleResponse arma la salida de una venta confirmada.
func NewSaleResponse(s entity.Sale) SaleResponse {
	return SaleResponse{
		ID:          s.ID,
		Date:        s.Date,
		Customer:    newCustomerDTO(s.Customer),
		Items:       newSaleItems(s.Items),
		TotalAmount: s.TotalAmount,
		TotalLabel:  format.FormatCurrency(s.TotalAmount),
		CreatedAt:   s.CreatedAt,
	}
}

// NewDraftResponse arma la salida de una venta en edición.
func NewDraftResponse(d *sales.Draft) DraftResponse {
	return DraftResponse{
		ID:         d.ID(),
		State:      d.State().String(),
		Date:       d.Date(),
		Customer:   newCustomerDTO(d.Customer()),
		Items:      newSaleItems(d.Items()),
		Total:      d.Total(),
		TotalLabel: format.FormatCurrency(d.Total()),
	}
}

func newCustomerDTO(c entity.Customer) CustomerDTO {
	return CustomerDTO{CPF: mask.CPF(c.CPF), Phone: mask.Phone(c.Phone)}
}

func newSaleItems(items []entity.SaleItem) []SaleItemDTO {
	out := make([]SaleItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, SaleItemDTO{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
		})
	}
	return out
}
