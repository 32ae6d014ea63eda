package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/store"
)

var _ repository.UnitOfWork = (*Tx)(nil)

// Tx vista del Store válida solo dentro de Store.Run (el lock ya está tomado).
type Tx struct {
	s *Store
}

// FindProductByID devuelve una copia del producto.
func (tx *Tx) FindProductByID(id string) (entity.Product, bool) {
	if i := tx.indexOfProduct(id); i >= 0 {
		return tx.s.products.Get()[i], true
	}
	return entity.Product{}, false
}

// SetProductQuantity fija el stock de un producto.
func (tx *Tx) SetProductQuantity(id string, newQuantity int) error {
	if newQuantity < 0 {
		return fmt.Errorf("cantidad %d: %w", newQuantity, domain.ErrInvalidInput)
	}
	i := tx.indexOfProduct(id)
	if i < 0 {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	next := slices.Clone(tx.s.products.Get())
	next[i].Quantity = newQuantity
	tx.s.saveProducts(next)
	return nil
}

// AppendSale agrega la venta al final del historial.
func (tx *Tx) AppendSale(sale entity.Sale) error {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	tx.s.sales.Update(ctx, func(cur []entity.Sale) []entity.Sale {
		return append(slices.Clone(cur), cloneSale(sale))
	})
	return nil
}

// CommitSale registra la venta y aplica los descuentos de stock en una sola escritura.
// Si algún descuento no es aplicable (producto inexistente o stock negativo) no cambia nada.
func (tx *Tx) CommitSale(sale entity.Sale, decrements []entity.StockDecrement) error {
	products := slices.Clone(tx.s.products.Get())
	for _, dec := range decrements {
		i := tx.indexOfProduct(dec.ProductID)
		if i < 0 {
			return fmt.Errorf("producto %s: %w", dec.ProductID, domain.ErrNotFound)
		}
		if dec.NewQuantity < 0 {
			return fmt.Errorf("producto %s: %w", dec.ProductID, domain.ErrInsufficientStock)
		}
		products[i].Quantity = dec.NewQuantity
	}
	sales := append(slices.Clone(tx.s.sales.Get()), cloneSale(sale))

	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	store.SetAll(ctx, tx.s.backend, tx.s.log,
		tx.s.products.Stage(products),
		tx.s.sales.Stage(sales),
	)
	return nil
}

func (tx *Tx) indexOfProduct(id string) int {
	return slices.IndexFunc(tx.s.products.Get(), func(p entity.Product) bool {
		return p.ID == id
	})
}
