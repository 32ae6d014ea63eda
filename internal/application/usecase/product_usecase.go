package usecase

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/internal/domain/repository"
	"github.com/jhoicas/controle-vendas/internal/domain/validation"
	"github.com/jhoicas/controle-vendas/pkg/format"
	"github.com/jhoicas/controle-vendas/pkg/logger"
)

// ProductValidationError alta o edición rechazada; lleva una falla por regla violada.
type ProductValidationError struct {
	Errors []entity.ValidationError
}

func (e *ProductValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ProductValidationError) Unwrap() error { return domain.ErrInvalidInput }

// ProductUseCase casos de uso CRUD para productos. El stock solo baja al confirmar ventas
// o cuando el usuario lo edita a mano.
type ProductUseCase struct {
	repo         repository.ProductRepository
	lowThreshold int
	log          *logger.Logger
	now          func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, lowThreshold int, log *logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		repo:         repo,
		lowThreshold: lowThreshold,
		log:          log.Named("products"),
		now:          time.Now,
	}
}

// Create crea un nuevo producto con id generado y fecha de alta actual.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	product := entity.Product{
		ID:          format.GenerateID(),
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price.Decimal,
		Quantity:    in.Quantity,
		Description: strings.TrimSpace(in.Description),
		CreatedAt:   uc.now(),
	}
	if errs := validation.ValidateProduct(product); len(errs) > 0 {
		return nil, &ProductValidationError{Errors: errs}
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", product.ID).Str("name", product.Name).Int("quantity", product.Quantity).Msg("producto creado")
	out := dto.NewProductResponse(product, uc.lowThreshold)
	return &out, nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	out := dto.NewProductResponse(product, uc.lowThreshold)
	return &out, nil
}

// Update edita cualquier campo y vuelve a validar el producto completo. ID y CreatedAt no cambian.
// Lectura, validación y escritura ocurren bajo el lock del catálogo: los campos no enviados
// conservan el valor vigente, incluido el stock descontado por ventas concurrentes.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.Modify(id, func(p *entity.Product) error {
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Description != nil {
			p.Description = strings.TrimSpace(*in.Description)
		}
		if in.Price != nil {
			p.Price = in.Price.Decimal
		}
		if in.Quantity != nil {
			p.Quantity = *in.Quantity
		}
		if errs := validation.ValidateProduct(*p); len(errs) > 0 {
			return &ProductValidationError{Errors: errs}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", id).Int("quantity", product.Quantity).Msg("producto editado")
	out := dto.NewProductResponse(product, uc.lowThreshold)
	return &out, nil
}

// Delete elimina un producto por ID. Las ventas ya registradas conservan nombre y precio.
func (uc *ProductUseCase) Delete(id string) error {
	if err := uc.repo.Delete(id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Msg("producto eliminado")
	return nil
}

// List lista productos aplicando búsqueda (sin distinguir mayúsculas) y filtro de estado.
func (uc *ProductUseCase) List(filter dto.ProductFilter) (*dto.ProductListResponse, error) {
	matched, err := uc.filter(filter)
	if err != nil {
		return nil, err
	}
	return &dto.ProductListResponse{
		Items: dto.NewProductList(matched, uc.lowThreshold),
		Total: len(matched),
	}, nil
}

// Available lista los productos con stock para agregar a una venta.
func (uc *ProductUseCase) Available() *dto.ProductListResponse {
	var list []entity.Product
	for _, p := range uc.repo.List() {
		if p.Available() {
			list = append(list, p)
		}
	}
	return &dto.ProductListResponse{
		Items: dto.NewProductList(list, uc.lowThreshold),
		Total: len(list),
	}
}

func (uc *ProductUseCase) filter(filter dto.ProductFilter) ([]entity.Product, error) {
	switch filter.Status {
	case "", "all", entity.StockStatusOK, entity.StockStatusLow, entity.StockStatusOut:
	default:
		return nil, fmt.Errorf("estado %q: %w", filter.Status, domain.ErrInvalidInput)
	}
	return FilterProducts(uc.repo.List(), filter.Query, filter.Status, uc.lowThreshold), nil
}

// FilterProducts aplica búsqueda por nombre o descripción y filtro de estado de stock
// (all, ok, low, out). Vacío en ambos devuelve la lista completa.
func FilterProducts(list []entity.Product, query, status string, lowThreshold int) []entity.Product {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))
	out := make([]entity.Product, 0, len(list))
	for _, p := range list {
		if needle != "" &&
			!strings.Contains(fold.String(p.Name), needle) &&
			!strings.Contains(fold.String(p.Description), needle) {
			continue
		}
		if status != "" && status != "all" && p.StockStatus(lowThreshold) != status {
			continue
		}
		out = append(out, p)
	}
	return out
}
