package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pagamentoValido() Pagamento {
	return Pagamento{
		Cpf:          "33475078007",
		Numero:       "1111222233334444",
		DataValidade: "09/27",
		Cvv:          "123",
		Valor:        decimal.NewFromFloat(100.00),
	}
}

func TestPagamentoValidate(t *testing.T) {
	t.Run("pagamento válido", func(t *testing.T) {
		p := pagamentoValido()
		require.NoError(t, p.Validate())
	})

	t.Run("cpf com menos de 11 dígitos", func(t *testing.T) {
		p := pagamentoValido()
		p.Cpf = "123"
		assert.Error(t, p.Validate())
	})

	t.Run("cpf com letras", func(t *testing.T) {
		p := pagamentoValido()
		p.Cpf = "3347507800a"
		assert.Error(t, p.Validate())
	})

	t.Run("número do cartão curto", func(t *testing.T) {
		p := pagamentoValido()
		p.Numero = "11112222"
		assert.Error(t, p.Validate())
	})

	t.Run("validade fora do formato MM/YY", func(t *testing.T) {
		p := pagamentoValido()
		p.DataValidade = "13/27"
		assert.Error(t, p.Validate())

		p.DataValidade = "2027-09"
		assert.Error(t, p.Validate())
	})

	t.Run("cvv com 4 dígitos", func(t *testing.T) {
		p := pagamentoValido()
		p.Cvv = "1234"
		assert.Error(t, p.Validate())
	})

	t.Run("valor zero ou negativo", func(t *testing.T) {
		p := pagamentoValido()
		p.Valor = decimal.Zero
		assert.Error(t, p.Validate())

		p.Valor = decimal.NewFromFloat(-10.00)
		assert.Error(t, p.Validate())
	})
}

func TestCartaoValidate(t *testing.T) {
	valido := Cartao{
		Numero:       "1111222233334444",
		Cpf:          "33475078007",
		Limite:       decimal.NewFromFloat(500.00),
		DataValidade: "09/27",
		Cvv:          "123",
	}

	require.NoError(t, valido.Validate())

	t.Run("limite não positivo", func(t *testing.T) {
		c := valido
		c.Limite = decimal.Zero
		assert.Error(t, c.Validate())
	})

	t.Run("número inválido", func(t *testing.T) {
		c := valido
		c.Numero = "abcd"
		assert.Error(t, c.Validate())
	})

	t.Run("mês de validade zero", func(t *testing.T) {
		c := valido
		c.DataValidade = "00/27"
		assert.Error(t, c.Validate())
	})
}
