package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
)

// PagamentoRepository é o livro de pagamentos autorizados: somente inserção
// e consulta, nunca atualização ou exclusão.
type PagamentoRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewPagamentoRepository(db *sql.DB, logger *logrus.Logger) *PagamentoRepository {
	return &PagamentoRepository{db: db, logger: logger}
}

func (r *PagamentoRepository) Create(ctx context.Context, pagamento *model.Pagamento) error {
	query := `
		INSERT INTO pagamento (chave_pagamento, cpf, numero, data_validade, cvv, valor, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		pagamento.ChavePagamento,
		pagamento.Cpf,
		pagamento.Numero,
		pagamento.DataValidade,
		pagamento.Cvv,
		pagamento.Valor,
		pagamento.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("erro ao gravar o pagamento: %w", err)
	}

	return nil
}

// ListByCpf retorna os pagamentos do cliente na ordem de inserção
func (r *PagamentoRepository) ListByCpf(ctx context.Context, cpf string) ([]model.Pagamento, error) {
	query := `
		SELECT chave_pagamento, cpf, numero, data_validade, cvv, valor, created_at
		FROM pagamento
		WHERE cpf = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, cpf)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar os pagamentos: %w", err)
	}
	defer rows.Close()

	var pagamentos []model.Pagamento
	for rows.Next() {
		var pagamento model.Pagamento
		if err := rows.Scan(
			&pagamento.ChavePagamento,
			&pagamento.Cpf,
			&pagamento.Numero,
			&pagamento.DataValidade,
			&pagamento.Cvv,
			&pagamento.Valor,
			&pagamento.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler o pagamento: %w", err)
		}
		pagamentos = append(pagamentos, pagamento)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer os pagamentos: %w", err)
	}

	return pagamentos, nil
}

// TotalsSince retorna a quantidade e a soma dos pagamentos gravados a partir
// do instante informado. Usado pelo resumo diário.
func (r *PagamentoRepository) TotalsSince(ctx context.Context, since time.Time) (int, decimal.Decimal, error) {
	query := `
		SELECT count(*), coalesce(sum(valor), 0)
		FROM pagamento
		WHERE created_at >= $1
	`

	var count int
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, since).Scan(&count, &total)
	if err != nil {
		return 0, decimal.Zero, fmt.Errorf("erro ao totalizar os pagamentos: %w", err)
	}

	return count, total, nil
}
