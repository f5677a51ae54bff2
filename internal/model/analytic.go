package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ResumoPagamentos agrega os pagamentos registrados em um período
type ResumoPagamentos struct {
	Quantidade int             `json:"quantidade"`
	ValorTotal decimal.Decimal `json:"valor_total"`
	Inicio     time.Time       `json:"inicio"`
	Fim        time.Time       `json:"fim"`
}

// CotacaoResponse é a resposta da consulta de cotação de moeda
type CotacaoResponse struct {
	Moeda   string  `json:"moeda"`
	Cotacao float64 `json:"cotacao"`
}
