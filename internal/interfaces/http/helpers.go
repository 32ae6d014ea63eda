package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/application/usecase"
	"github.com/jhoicas/controle-vendas/internal/domain"
	draftpkg "github.com/jhoicas/controle-vendas/internal/domain/sales"
)

var validate = validator.New()

func init() {
	// dto.Amount se valida como número para que funcionen etiquetas como gt=0.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(dto.Amount); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, dto.Amount{})
}

// parseBody decodifica el JSON y aplica las etiquetas validate. Si algo falla ya respondió
// 400 y ok es false; el handler debe devolver err sin escribir otra respuesta.
func parseBody(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if err := c.BodyParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	return checkStruct(c, req)
}

// parseQuery igual que parseBody para parámetros de query.
func parseQuery(c *fiber.Ctx, req interface{}) (ok bool, err error) {
	if err := c.QueryParser(req); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	return checkStruct(c, req)
}

func checkStruct(c *fiber.Ctx, req interface{}) (bool, error) {
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		details := []string{err.Error()}
		if errors.As(err, &verrs) {
			details = details[:0]
			for _, fe := range verrs {
				details = append(details, strings.ToLower(fe.Field())+": "+fe.Tag())
			}
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "datos inválidos", Details: details,
		})
	}
	return true, nil
}

// respondError traduce errores de dominio a respuestas HTTP.
func respondError(c *fiber.Ctx, err error) error {
	var perr *usecase.ProductValidationError
	if errors.As(err, &perr) {
		fields := make([]dto.FieldErrorDTO, 0, len(perr.Errors))
		for _, fe := range perr.Errors {
			fields = append(fields, dto.FieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ProductErrorResponse{
			Code: "VALIDATION", Message: "produto inválido", Fields: fields,
		})
	}

	var vf *draftpkg.ValidationFailure
	if errors.As(err, &vf) {
		status, code := fiber.StatusBadRequest, "VALIDATION"
		if errors.Is(err, domain.ErrInsufficientStock) {
			status, code = fiber.StatusConflict, "INSUFFICIENT_STOCK"
		}
		return c.Status(status).JSON(dto.ErrorResponse{
			Code: code, Message: "venda inválida", Details: vf.Messages,
		})
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDraftCommitted):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DRAFT_COMMITTED", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
