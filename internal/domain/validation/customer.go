package validation

import (
	"fmt"

	"github.com/jhoicas/controle-vendas/internal/domain/entity"
	"github.com/jhoicas/controle-vendas/pkg/brdoc"
)

// Mensajes de validación de la venta.
const (
	MsgInvalidDate   = "Data inválida. Use o formato DD/MM/AAAA"
	MsgInvalidCPF    = "CPF inválido"
	MsgInvalidPhone  = "Telefone inválido"
	MsgNoItems       = "Adicione pelo menos um produto à venda"
	msgNoStockFormat = "Estoque insuficiente para %s"
)

// ValidateSaleHeader valida fecha, CPF y teléfono de la venta, en ese orden,
// acumulando un mensaje por campo inválido.
func ValidateSaleHeader(date string, customer entity.Customer) []string {
	var msgs []string
	if !brdoc.ValidateDate(date) {
		msgs = append(msgs, MsgInvalidDate)
	}
	if !brdoc.ValidateCPF(customer.CPF) {
		msgs = append(msgs, MsgInvalidCPF)
	}
	if !brdoc.ValidatePhone(customer.Phone) {
		msgs = append(msgs, MsgInvalidPhone)
	}
	return msgs
}

// InsufficientStockMessage mensaje de stock insuficiente para una línea.
func InsufficientStockMessage(productName string) string {
	return fmt.Sprintf(msgNoStockFormat, productName)
}
