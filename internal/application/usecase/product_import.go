package usecase

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/controle-vendas/internal/application/dto"
	"github.com/jhoicas/controle-vendas/internal/domain"
	"github.com/jhoicas/controle-vendas/pkg/format"
)

// Columnas de la planilla de productos: nome;preço;quantidade;descrição.
const (
	colName = iota
	colPrice
	colQuantity
	colDescription
)

// ImportProducts da de alta los productos de una planilla CSV separada por ';'.
// Acepta UTF-8 o ISO-8859-1 (exportación típica de planillas en pt-BR) y una fila de
// encabezado opcional. Cada fila pasa por las mismas reglas que Create; las filas
// rechazadas se informan sin cortar la importación. Filas vacías se ignoran.
func (uc *ProductUseCase) ImportProducts(r io.Reader) (*dto.ImportResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("leer planilla: %w", err)
	}
	raw = bytes.TrimPrefix(raw, []byte("\xef\xbb\xbf"))

	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	reader := csv.NewReader(src)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	result := &dto.ImportResult{Errors: []dto.ImportRowError{}}
	for first := true; ; first = false {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: planilla inválida: %v", domain.ErrInvalidInput, err)
		}
		line, _ := reader.FieldPos(0)
		if blankRecord(record) {
			result.Skipped++
			continue
		}
		if first && isHeader(record) {
			continue
		}

		in, reasons := importRow(record)
		if len(reasons) == 0 {
			if _, err := uc.Create(in); err != nil {
				var verr *ProductValidationError
				if !errors.As(err, &verr) {
					return nil, err
				}
				for _, fe := range verr.Errors {
					reasons = append(reasons, fe.Message)
				}
			}
		}
		if len(reasons) > 0 {
			result.Errors = append(result.Errors, dto.ImportRowError{Line: line, Name: in.Name, Reasons: reasons})
			continue
		}
		result.Created++
	}

	uc.log.Info().Int("created", result.Created).Int("rejected", len(result.Errors)).Msg("importación de productos")
	return result, nil
}

func importRow(record []string) (dto.CreateProductRequest, []string) {
	field := func(i int) string {
		if i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}
	in := dto.CreateProductRequest{
		Name:        field(colName),
		Price:       dto.Amount{Decimal: format.ParseCurrency(field(colPrice))},
		Description: field(colDescription),
	}
	var reasons []string
	if qty := field(colQuantity); qty != "" {
		n, err := strconv.Atoi(qty)
		if err != nil {
			reasons = append(reasons, fmt.Sprintf("Quantidade inválida: %q", qty))
		}
		in.Quantity = n
	}
	return in, reasons
}

func blankRecord(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

func isHeader(record []string) bool {
	switch strings.ToLower(strings.TrimSpace(record[colName])) {
	case "nome", "name", "produto":
		return true
	}
	return false
}
