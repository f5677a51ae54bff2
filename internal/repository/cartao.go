package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
)

type CartaoRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewCartaoRepository(db *sql.DB, logger *logrus.Logger) *CartaoRepository {
	return &CartaoRepository{db: db, logger: logger}
}

func (r *CartaoRepository) Create(ctx context.Context, cartao *model.Cartao) error {
	query := `
		INSERT INTO cartao (numero, cpf, limite, data_validade, cvv)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		cartao.Numero,
		cartao.Cpf,
		cartao.Limite,
		cartao.DataValidade,
		cartao.Cvv,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("já existe um cartão com este número")
		}
		return fmt.Errorf("erro ao inserir o cartão: %w", err)
	}

	return nil
}

func (r *CartaoRepository) List(ctx context.Context) ([]model.Cartao, error) {
	query := `
		SELECT numero, cpf, limite, data_validade, cvv
		FROM cartao
		ORDER BY numero
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar os cartões: %w", err)
	}
	defer rows.Close()

	return scanCartoes(rows)
}

// GetByNumero busca um cartão pelo número exato. O número é a chave primária,
// então a consulta nunca é ambígua.
func (r *CartaoRepository) GetByNumero(ctx context.Context, numero string) (*model.Cartao, error) {
	query := `
		SELECT numero, cpf, limite, data_validade, cvv
		FROM cartao
		WHERE numero = $1
	`

	var cartao model.Cartao
	err := r.db.QueryRowContext(ctx, query, numero).Scan(
		&cartao.Numero,
		&cartao.Cpf,
		&cartao.Limite,
		&cartao.DataValidade,
		&cartao.Cvv,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consultar o cartão: %w", err)
	}

	return &cartao, nil
}

func (r *CartaoRepository) ListByCpf(ctx context.Context, cpf string) ([]model.Cartao, error) {
	query := `
		SELECT numero, cpf, limite, data_validade, cvv
		FROM cartao
		WHERE cpf = $1
		ORDER BY numero
	`

	rows, err := r.db.QueryContext(ctx, query, cpf)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar os cartões do cliente: %w", err)
	}
	defer rows.Close()

	return scanCartoes(rows)
}

func (r *CartaoRepository) CountByCpf(ctx context.Context, cpf string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT count(numero) FROM cartao WHERE cpf = $1`, cpf).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("erro ao contar os cartões do cliente: %w", err)
	}
	return count, nil
}

func scanCartoes(rows *sql.Rows) ([]model.Cartao, error) {
	var cartoes []model.Cartao
	for rows.Next() {
		var cartao model.Cartao
		if err := rows.Scan(
			&cartao.Numero,
			&cartao.Cpf,
			&cartao.Limite,
			&cartao.DataValidade,
			&cartao.Cvv,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler o cartão: %w", err)
		}
		cartoes = append(cartoes, cartao)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer os cartões: %w", err)
	}

	return cartoes, nil
}
