// Package sales orquesta el ciclo de vida de las ventas: borradores en edición sobre el motor
// de conciliación de stock, confirmación atómica y consulta del historial.
package sales

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	draftpkg "github.com/jhoicas/controle-vendas/internal/domain/sales"
	"github.com/jhoicas/controle-vendas/pkg/format"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

// draftTTL tiempo que un borrador sin uso (o la marca de uno ya confirmado) sigue en memoria.
const draftTTL = 12 * time.Hour

type openDraft struct {
	draft   *draftpkg.Draft
	touched time.Time
}

// SalesUseCase administra los borradores abiertos y registra las ventas.
// Un borrador confirmado sale del mapa y deja una marca para responder ErrDraftCommitted.
type SalesUseCase struct {
	txRunner TxRunner
	saleRepo repository.SaleRepository
	log      *logger.Logger
	now      func() time.Time

	mu        sync.Mutex
	drafts    map[string]*openDraft
	committed map[string]time.Time
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(txRunner TxRunner, saleRepo repository.SaleRepository, log *logger.Logger) *SalesUseCase {
	return &SalesUseCase{
		txRunner:  txRunner,
		saleRepo:  saleRepo,
		log:       log.Named("sales"),
		now:       time.Now,
		drafts:    make(map[string]*openDraft),
		committed: make(map[string]time.Time),
	}
}

// OpenDraft abre una venta vacía. Sin fecha se sugiere la de hoy.
func (uc *SalesUseCase) OpenDraft(in dto.OpenDraftRequest) *dto.DraftResponse {
	date := in.Date
	if date == "" {
		date = format.FormatDate(uc.now())
	}
	d := draftpkg.NewDraft(format.GenerateID(), date)

	uc.mu.Lock()
	now := uc.now()
	uc.sweep(now)
	uc.drafts[d.ID()] = &openDraft{draft: d, touched: now}
	uc.mu.Unlock()

	uc.log.Debug().Str("draft_id", d.ID()).Msg("borrador abierto")
	out := dto.NewDraftResponse(d)
	return &out
}

// GetDraft devuelve el estado de un borrador.
func (uc *SalesUseCase) GetDraft(id string) (*dto.DraftResponse, error) {
	return uc.withDraft(id, func(*draftpkg.Draft, repository.UnitOfWork) error { return nil })
}

// DiscardDraft descarta el borrador (reinicio del formulario). Descartar uno ya confirmado
// solo borra su marca.
func (uc *SalesUseCase) DiscardDraft(id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, ok := uc.committed[id]; ok {
		delete(uc.committed, id)
		return nil
	}
	if _, ok := uc.drafts[id]; !ok {
		return fmt.Errorf("borrador %s: %w", id, domain.ErrNotFound)
	}
	delete(uc.drafts, id)
	return nil
}

// AddItem agrega una unidad del producto. Productos inexistentes o agotados no tienen efecto.
func (uc *SalesUseCase) AddItem(id, productID string) (*dto.DraftResponse, error) {
	return uc.withDraft(id, func(d *draftpkg.Draft, tx repository.UnitOfWork) error {
		return d.AddProduct(tx, productID)
	})
}

// ChangeQuantity suma delta a la línea, acotado a [0, stock]; en 0 la línea se elimina.
func (uc *SalesUseCase) ChangeQuantity(id, productID string, delta int) (*dto.DraftResponse, error) {
	return uc.withDraft(id, func(d *draftpkg.Draft, tx repository.UnitOfWork) error {
		return d.ChangeQuantity(tx, productID, delta)
	})
}

// RemoveItem quita la línea del producto.
func (uc *SalesUseCase) RemoveItem(id, productID string) (*dto.DraftResponse, error) {
	return uc.withDraft(id, func(d *draftpkg.Draft, _ repository.UnitOfWork) error {
		return d.RemoveLine(productID)
	})
}

// SetCustomer fija fecha, CPF y teléfono tal como los digita el usuario (con o sin máscara).
func (uc *SalesUseCase) SetCustomer(id string, in dto.SetCustomerRequest) (*dto.DraftResponse, error) {
	return uc.withDraft(id, func(d *draftpkg.Draft, _ repository.UnitOfWork) error {
		return d.SetHeader(in.Date, entity.Customer{CPF: in.CPF, Phone: in.Phone})
	})
}

// ValidateDraft valida sin confirmar y devuelve todos los mensajes aplicables.
func (uc *SalesUseCase) ValidateDraft(id string) (*dto.ValidateDraftResponse, error) {
	var msgs []string
	_, err := uc.withDraft(id, func(d *draftpkg.Draft, tx repository.UnitOfWork) error {
		msgs = d.Validate(tx)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if msgs == nil {
		msgs = []string{}
	}
	return &dto.ValidateDraftResponse{Valid: len(msgs) == 0, Errors: msgs}, nil
}

// CommitDraft revalida contra el stock vigente y, si pasa, registra la venta y descuenta el
// stock de cada producto en una sola escritura. Un rechazo deja el borrador editable y no
// modifica nada; el error es *draftpkg.ValidationFailure con todos los mensajes.
func (uc *SalesUseCase) CommitDraft(id string) (*dto.SaleResponse, error) {
	var sale entity.Sale
	_, err := uc.withDraft(id, func(d *draftpkg.Draft, tx repository.UnitOfWork) error {
		var (
			decrements []entity.StockDecrement
			err        error
		)
		sale, decrements, err = d.Commit(tx, format.GenerateID(), uc.now())
		if err != nil {
			return err
		}
		return tx.CommitSale(sale, decrements)
	})
	if err != nil {
		var vf *draftpkg.ValidationFailure
		if errors.As(err, &vf) {
			uc.log.Warn().Str("draft_id", id).Strs("errors", vf.Messages).Msg("venta rechazada")
		}
		return nil, err
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("total", sale.TotalAmount.StringFixed(2)).
		Int("items", len(sale.Items)).
		Msg("venta registrada")
	out := dto.NewSaleResponse(sale)
	return &out, nil
}

// ListSales historial completo, la venta más reciente primero.
func (uc *SalesUseCase) ListSales() *dto.SaleListResponse {
	list := NewestFirst(uc.saleRepo.ListSales())
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, dto.NewSaleResponse(s))
	}
	return &dto.SaleListResponse{Items: items, Total: len(items)}
}

// GetSale devuelve una venta registrada.
func (uc *SalesUseCase) GetSale(id string) (*dto.SaleResponse, error) {
	s, err := uc.saleRepo.GetSale(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewSaleResponse(s)
	return &out, nil
}

// NewestFirst ordena por CreatedAt descendente; empates quedan en orden inverso de registro.
func NewestFirst(list []entity.Sale) []entity.Sale {
	out := slices.Clone(list)
	slices.Reverse(out)
	slices.SortStableFunc(out, func(a, b entity.Sale) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return out
}

// withDraft ejecuta fn sobre el borrador con el catálogo bloqueado y devuelve el estado resultante.
func (uc *SalesUseCase) withDraft(id string, fn func(d *draftpkg.Draft, tx repository.UnitOfWork) error) (*dto.DraftResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if _, ok := uc.committed[id]; ok {
		return nil, fmt.Errorf("borrador %s: %w", id, domain.ErrDraftCommitted)
	}
	entry, ok := uc.drafts[id]
	if !ok {
		return nil, fmt.Errorf("borrador %s: %w", id, domain.ErrNotFound)
	}
	d := entry.draft
	err := uc.txRunner.Run(func(tx repository.UnitOfWork) error {
		return fn(d, tx)
	})
	now := uc.now()
	entry.touched = now
	if d.State() == draftpkg.StateCommitted {
		delete(uc.drafts, id)
		uc.committed[id] = now
	}
	if err != nil {
		return nil, err
	}
	out := dto.NewDraftResponse(d)
	return &out, nil
}

// sweep libera borradores sin uso y marcas de confirmados más viejos que draftTTL.
func (uc *SalesUseCase) sweep(now time.Time) {
	for id, entry := range uc.drafts {
		if now.Sub(entry.touched) > draftTTL {
			delete(uc.drafts, id)
		}
	}
	for id, at := range uc.committed {
		if now.Sub(at) > draftTTL {
			delete(uc.committed, id)
		}
	}
}
