package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Pagamento representa um pagamento autorizado e registrado no livro de pagamentos.
// A chave é gerada no momento da gravação, nunca informada pelo cliente.
type Pagamento struct {
	ChavePagamento uuid.UUID       `json:"chave_pagamento" db:"chave_pagamento"`
	Cpf            string          `json:"cpf" db:"cpf"`
	Numero         string          `json:"numero" db:"numero"`
	DataValidade   string          `json:"data_validade" db:"data_validade"`
	Cvv            string          `json:"cvv" db:"cvv"`
	Valor          decimal.Decimal `json:"valor" db:"valor"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
}

// PagamentoPorClienteResponse é a projeção de um pagamento para o relatório por cliente
type PagamentoPorClienteResponse struct {
	Valor           decimal.Decimal `json:"valor"`
	Descricao       string          `json:"descricao"`
	MetodoPagamento string          `json:"metodo_pagamento"`
	Status          string          `json:"status"`
}

// Validate verifica os padrões dos campos do pagamento antes de qualquer consulta
func (p *Pagamento) Validate() error {
	if !cpfRegex.MatchString(p.Cpf) {
		return fmt.Errorf("o CPF deve conter 11 dígitos")
	}
	if !numeroRegex.MatchString(p.Numero) {
		return fmt.Errorf("o número do cartão deve conter 16 dígitos")
	}
	if !validadeRegex.MatchString(p.DataValidade) {
		return fmt.Errorf("a data de validade deve estar no formato MM/YY")
	}
	if !cvvRegex.MatchString(p.Cvv) {
		return fmt.Errorf("o CVV deve conter 3 dígitos")
	}
	if !p.Valor.IsPositive() {
		return fmt.Errorf("o valor deve ser maior que zero")
	}
	return nil
}
