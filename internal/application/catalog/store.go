// Package catalog es el estado propio de la aplicación: las colecciones de productos y de
// ventas respaldadas por el store de registros. Toda lectura y mutación pasa por el lock del
// Store, lo que reproduce el modelo de un solo usuario donde cada operación corre completa.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/internal/infrastructure/store"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

var (
	_ repository.ProductCatalog        = (*Store)(nil)
	_ repository.ProductQuantityWriter = (*Store)(nil)
	_ repository.SaleAppender          = (*Store)(nil)
	_ repository.ProductRepository     = (*Store)(nil)
	_ repository.SaleRepository        = (*Store)(nil)
	_ repository.SaleCommitter         = (*Store)(nil)
)

// writeTimeout tope de cada escritura al backend.
const writeTimeout = 5 * time.Second

// Store colecciones de productos y ventas.
type Store struct {
	mu       sync.Mutex
	backend  store.Backend
	log      *logger.Logger
	products *store.Record[[]entity.Product]
	sales    *store.Record[[]entity.Sale]
}

// New carga ambas colecciones del backend (una sola lectura por clave).
func New(ctx context.Context, backend store.Backend, log *logger.Logger) *Store {
	log = log.Named("store")
	s := &Store{
		backend:  backend,
		log:      log,
		products: store.Open(ctx, backend, store.KeyProducts, []entity.Product{}, log),
		sales:    store.Open(ctx, backend, store.KeySales, []entity.Sale{}, log),
	}
	if reader, ok := backend.(store.AmountReader); ok {
		s.checkAmounts(ctx, reader)
	}
	return s
}

// checkAmounts compara los montos resumen guardados por el backend con los recalculados de
// las colecciones cargadas. Una diferencia indica que ventas y stock se escribieron por
// separado; se registra y se sigue con lo cargado.
func (s *Store) checkAmounts(ctx context.Context, reader store.AmountReader) {
	expected := map[string]decimal.Decimal{
		store.KeySales:    entity.SalesRevenue(s.sales.Get()).Round(2),
		store.KeyProducts: entity.TotalStockValue(s.products.Get()).Round(2),
	}
	for _, key := range []string{store.KeySales, store.KeyProducts} {
		stored, err := reader.Amount(ctx, key)
		switch {
		case errors.Is(err, store.ErrKeyNotFound):
			continue
		case err != nil:
			s.log.Error().Err(err).Str("key", key).Msg("leer monto resumen")
			continue
		}
		if !stored.Equal(expected[key]) {
			s.log.Warn().
				Str("key", key).
				Str("stored", stored.StringFixed(2)).
				Str("computed", expected[key].StringFixed(2)).
				Msg("monto resumen no coincide con el registro")
		}
	}
}

// Run ejecuta fn con el lock tomado; fn recibe una vista transaccional del store.
// Lo usa el caso de uso de ventas para validar y confirmar un borrador sin que el stock
// cambie entre ambos pasos.
func (s *Store) Run(fn func(tx repository.UnitOfWork) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&Tx{s: s})
}

func (s *Store) FindProductByID(id string) (entity.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&Tx{s: s}).FindProductByID(id)
}

func (s *Store) GetByID(id string) (entity.Product, error) {
	p, ok := s.FindProductByID(id)
	if !ok {
		return entity.Product{}, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (s *Store) List() []entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.products.Get())
}

func (s *Store) Create(product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if (&Tx{s: s}).indexOfProduct(product.ID) >= 0 {
		return fmt.Errorf("producto %s ya existe: %w", product.ID, domain.ErrInvalidInput)
	}
	next := append(slices.Clone(s.products.Get()), product)
	s.saveProducts(next)
	return nil
}

// Modify edita el producto dentro de la sección crítica, así una venta confirmada en
// paralelo no puede quedar pisada por una copia vieja del stock.
func (s *Store) Modify(id string, fn func(p *entity.Product) error) (entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := (&Tx{s: s}).indexOfProduct(id)
	if i < 0 {
		return entity.Product{}, fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	next := slices.Clone(s.products.Get())
	edited := next[i]
	if err := fn(&edited); err != nil {
		return entity.Product{}, err
	}
	edited.ID = next[i].ID
	edited.CreatedAt = next[i].CreatedAt
	next[i] = edited
	s.saveProducts(next)
	return edited, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := (&Tx{s: s}).indexOfProduct(id)
	if i < 0 {
		return fmt.Errorf("producto %s: %w", id, domain.ErrNotFound)
	}
	s.saveProducts(slices.Delete(slices.Clone(s.products.Get()), i, i+1))
	return nil
}

func (s *Store) SetProductQuantity(id string, newQuantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&Tx{s: s}).SetProductQuantity(id, newQuantity)
}

func (s *Store) AppendSale(sale entity.Sale) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&Tx{s: s}).AppendSale(sale)
}

func (s *Store) CommitSale(sale entity.Sale, decrements []entity.StockDecrement) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return (&Tx{s: s}).CommitSale(sale, decrements)
}

func (s *Store) ListSales() []entity.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Sale, 0, len(s.sales.Get()))
	for _, sale := range s.sales.Get() {
		out = append(out, cloneSale(sale))
	}
	return out
}

func (s *Store) GetSale(id string) (entity.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sale := range s.sales.Get() {
		if sale.ID == id {
			return cloneSale(sale), nil
		}
	}
	return entity.Sale{}, fmt.Errorf("venta %s: %w", id, domain.ErrNotFound)
}

func (s *Store) saveProducts(next []entity.Product) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()
	s.products.Set(ctx, next)
}

func cloneSale(sale entity.Sale) entity.Sale {
	sale.Items = slices.Clone(sale.Items)
	return sale
}
