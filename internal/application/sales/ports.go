package sales

import "github.com/jhoicas/controle-vendas/internal/domain/repository"

// TxRunner ejecuta fn con acceso exclusivo al catálogo: la validación final y la aplicación
// de la venta y de los descuentos de stock ocurren sin otra operación en medio.
type TxRunner interface {
	Run(fn func(tx repository.UnitOfWork) error) error
}
