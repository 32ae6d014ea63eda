package repository

import "github.com/jhoicas/controle-vendas/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByID, Modify y Delete devuelven domain.ErrNotFound si el id no existe.
type ProductRepository interface {
	Create(product entity.Product) error
	GetByID(id string) (entity.Product, error)
	// Modify lee, edita con fn y guarda el producto sin soltar el lock del catálogo.
	// Si fn devuelve error no se guarda nada. ID y CreatedAt no cambian.
	Modify(id string, fn func(p *entity.Product) error) (entity.Product, error)
	Delete(id string) error
	// List devuelve los productos en orden de alta.
	List() []entity.Product
}
