// Package sales implementa el motor de conciliación de stock: un borrador de venta acumula
// líneas contra el catálogo, mantiene el total siempre coherente, revalida el stock vigente
// al confirmar y emite las instrucciones de descuento que el llamador debe aplicar junto
// con el alta de la venta, como una sola unidad.
//
// Draft no es seguro para uso concurrente; el llamador serializa el acceso.
package sales

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/internal/domain/validation"
)

// State estado del borrador: Empty -> Building -> Validated -> Committed.
type State int

const (
	StateEmpty State = iota
	StateBuilding
	StateValidated
	StateCommitted
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateBuilding:
		return "building"
	case StateValidated:
		return "validated"
	case StateCommitted:
		return "committed"
	}
	return "unknown"
}

// ValidationFailure rechazo de confirmación con todos los mensajes aplicables.
// errors.Is(err, domain.ErrDraftInvalid) siempre es true; además ErrEmptyDraft si no hay
// líneas y ErrInsufficientStock si alguna línea supera el stock vigente.
type ValidationFailure struct {
	Messages []string
	causes   []error
}

func (e *ValidationFailure) Error() string {
	return domain.ErrDraftInvalid.Error() + ": " + strings.Join(e.Messages, "; ")
}

func (e *ValidationFailure) Unwrap() []error {
	return append([]error{domain.ErrDraftInvalid}, e.causes...)
}

// Draft borrador de venta en construcción.
type Draft struct {
	id       string
	date     string
	customer entity.Customer
	items    []entity.SaleItem
	total    decimal.Decimal
	state    State
}

// NewDraft crea un borrador vacío con la fecha sugerida (normalmente hoy en DD/MM/AAAA).
func NewDraft(id, date string) *Draft {
	return &Draft{id: id, date: date, total: decimal.Zero, state: StateEmpty}
}

func (d *Draft) ID() string                { return d.id }
func (d *Draft) Date() string              { return d.date }
func (d *Draft) Customer() entity.Customer { return d.customer }
func (d *Draft) State() State              { return d.state }

// Total suma de TotalPrice de las líneas; se actualiza en cada mutación.
func (d *Draft) Total() decimal.Decimal { return d.total }

// Items devuelve una copia de las líneas en orden de inserción.
func (d *Draft) Items() []entity.SaleItem {
	out := make([]entity.SaleItem, len(d.items))
	copy(out, d.items)
	return out
}

// Quantity cantidad de la línea del producto; 0 si no está en el borrador.
func (d *Draft) Quantity(productID string) int {
	if i := d.indexOf(productID); i >= 0 {
		return d.items[i].Quantity
	}
	return 0
}

// SetHeader reemplaza fecha y cliente. No valida: la validación ocurre al confirmar.
func (d *Draft) SetHeader(date string, customer entity.Customer) error {
	if d.state == StateCommitted {
		return domain.ErrDraftCommitted
	}
	d.date = date
	d.customer = customer
	d.touch()
	return nil
}

// AddProduct agrega una unidad del producto. Si no está en el borrador crea la línea con
// cantidad 1 al precio vigente; si ya está, incrementa en 1 sin superar el stock del producto.
// Productos inexistentes o con stock 0 no tienen efecto.
func (d *Draft) AddProduct(catalog repository.ProductCatalog, productID string) error {
	if d.state == StateCommitted {
		return domain.ErrDraftCommitted
	}
	product, ok := catalog.FindProductByID(productID)
	if !ok || !product.Available() {
		return nil
	}
	if i := d.indexOf(productID); i >= 0 {
		if d.items[i].Quantity < product.Quantity {
			d.setLineQuantity(i, d.items[i].Quantity+1)
		}
		return nil
	}
	d.items = append(d.items, entity.SaleItem{
		ProductID:   product.ID,
		ProductName: product.Name,
		Quantity:    1,
		UnitPrice:   product.Price,
		TotalPrice:  product.Price,
	})
	d.recalc()
	return nil
}

// ChangeQuantity suma delta a la línea del producto acotando el resultado a [0, stock].
// Una línea que llega a 0 se elimina. Sin efecto si el producto no existe en el catálogo
// o no está en el borrador.
func (d *Draft) ChangeQuantity(catalog repository.ProductCatalog, productID string, delta int) error {
	if d.state == StateCommitted {
		return domain.ErrDraftCommitted
	}
	product, ok := catalog.FindProductByID(productID)
	if !ok {
		return nil
	}
	i := d.indexOf(productID)
	if i < 0 {
		return nil
	}
	newQty := max(0, min(product.Quantity, d.items[i].Quantity+delta))
	if newQty == 0 {
		d.removeAt(i)
		return nil
	}
	d.setLineQuantity(i, newQty)
	return nil
}

// RemoveLine elimina la línea del producto, exista o no en el catálogo.
func (d *Draft) RemoveLine(productID string) error {
	if d.state == StateCommitted {
		return domain.ErrDraftCommitted
	}
	if i := d.indexOf(productID); i >= 0 {
		d.removeAt(i)
	}
	return nil
}

// Validate revisa fecha, CPF, teléfono, que haya al menos una línea y que cada línea no
// supere el stock vigente del producto (el stock pudo bajar desde que se agregó la línea).
// Devuelve todos los mensajes aplicables; lista vacía deja el borrador en StateValidated.
func (d *Draft) Validate(catalog repository.ProductCatalog) []string {
	msgs, _ := d.validate(catalog)
	return msgs
}

func (d *Draft) validate(catalog repository.ProductCatalog) (msgs []string, causes []error) {
	msgs = validation.ValidateSaleHeader(d.date, d.customer)
	if len(d.items) == 0 {
		msgs = append(msgs, validation.MsgNoItems)
		causes = append(causes, domain.ErrEmptyDraft)
	}
	short := false
	for _, it := range d.items {
		product, ok := catalog.FindProductByID(it.ProductID)
		if !ok || product.Quantity < it.Quantity {
			msgs = append(msgs, validation.InsufficientStockMessage(it.ProductName))
			short = true
		}
	}
	if short {
		causes = append(causes, domain.ErrInsufficientStock)
	}
	if d.state != StateCommitted {
		if len(msgs) == 0 {
			d.state = StateValidated
		} else {
			d.touch()
		}
	}
	return msgs, causes
}

// Commit revalida el borrador y, si pasa, produce la venta final (datos congelados) y una
// instrucción de descuento por línea. No modifica el catálogo: el llamador debe aplicar
// la venta y los descuentos juntos o ninguno.
func (d *Draft) Commit(catalog repository.ProductCatalog, saleID string, now time.Time) (entity.Sale, []entity.StockDecrement, error) {
	if d.state == StateCommitted {
		return entity.Sale{}, nil, domain.ErrDraftCommitted
	}
	if msgs, causes := d.validate(catalog); len(msgs) > 0 {
		return entity.Sale{}, nil, &ValidationFailure{Messages: msgs, causes: causes}
	}

	decrements := make([]entity.StockDecrement, 0, len(d.items))
	for _, it := range d.items {
		product, _ := catalog.FindProductByID(it.ProductID)
		decrements = append(decrements, entity.StockDecrement{
			ProductID:   it.ProductID,
			Sold:        it.Quantity,
			NewQuantity: product.Quantity - it.Quantity,
		})
	}
	sale := entity.Sale{
		ID:          saleID,
		Date:        d.date,
		Customer:    d.customer,
		Items:       d.Items(),
		TotalAmount: d.total,
		CreatedAt:   now,
	}
	d.state = StateCommitted
	return sale, decrements, nil
}

func (d *Draft) indexOf(productID string) int {
	for i := range d.items {
		if d.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

func (d *Draft) setLineQuantity(i, qty int) {
	d.items[i].Quantity = qty
	d.items[i].TotalPrice = d.items[i].UnitPrice.Mul(decimal.NewFromInt(int64(qty)))
	d.recalc()
}

func (d *Draft) removeAt(i int) {
	d.items = append(d.items[:i], d.items[i+1:]...)
	d.recalc()
}

// recalc mantiene total = Σ cantidad × precio unitario y vuelve el estado a Empty/Building.
func (d *Draft) recalc() {
	total := decimal.Zero
	for _, it := range d.items {
		total = total.Add(it.TotalPrice)
	}
	d.total = total
	d.touch()
}

// touch invalida una validación previa tras cualquier cambio.
func (d *Draft) touch() {
	if len(d.items) == 0 {
		d.state = StateEmpty
		return
	}
	d.state = StateBuilding
}
