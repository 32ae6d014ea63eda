package repository

import "github.com/jhoicas/controle-vendas/internal/domain/entity"

// ProductCatalog puerto de consulta de solo lectura sobre el catálogo.
// El motor de conciliación de stock lo usa para leer el stock vigente; nunca lo modifica.
type ProductCatalog interface {
	// FindProductByID devuelve una copia del producto; ok es false si no existe.
	FindProductByID(id string) (product entity.Product, ok bool)
}

// ProductQuantityWriter callback de mutación del catálogo invocado por el llamador tras confirmar una venta.
type ProductQuantityWriter interface {
	SetProductQuantity(id string, newQuantity int) error
}

// SaleAppender callback que agrega una venta confirmada al historial.
type SaleAppender interface {
	AppendSale(sale entity.Sale) error
}

// UnitOfWork vista del catálogo dentro de una operación atómica: lo que se lee y lo que se
// escribe no puede ser intercalado por otra operación.
type UnitOfWork interface {
	ProductCatalog
	ProductQuantityWriter
	SaleAppender
	SaleCommitter
}
