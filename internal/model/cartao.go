package model

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	cpfRegex      = regexp.MustCompile(`^\d{11}$`)
	numeroRegex   = regexp.MustCompile(`^\d{16}$`)
	validadeRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cvvRegex      = regexp.MustCompile(`^\d{3}$`)
)

// Cartao representa um cartão de crédito cadastrado, identificado pelo número
type Cartao struct {
	Numero       string          `json:"numero" db:"numero"`
	Cpf          string          `json:"cpf" db:"cpf"`
	Limite       decimal.Decimal `json:"limite" db:"limite"`
	DataValidade string          `json:"data_validade" db:"data_validade"`
	Cvv          string          `json:"cvv" db:"cvv"`
}

// Validate verifica os padrões dos campos do cartão antes do cadastro
func (c *Cartao) Validate() error {
	if !numeroRegex.MatchString(c.Numero) {
		return fmt.Errorf("o número do cartão deve conter 16 dígitos")
	}
	if !cpfRegex.MatchString(c.Cpf) {
		return fmt.Errorf("o CPF deve conter 11 dígitos")
	}
	if !c.Limite.IsPositive() {
		return fmt.Errorf("o limite deve ser maior que zero")
	}
	if !validadeRegex.MatchString(c.DataValidade) {
		return fmt.Errorf("a data de validade deve estar no formato MM/YY")
	}
	if !cvvRegex.MatchString(c.Cvv) {
		return fmt.Errorf("o CVV deve conter 3 dígitos")
	}
	return nil
}
