package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
)

type EnderecoRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewEnderecoRepository(db *sql.DB, logger *logrus.Logger) *EnderecoRepository {
	return &EnderecoRepository{db: db, logger: logger}
}

func (r *EnderecoRepository) Create(ctx context.Context, endereco *model.Endereco) error {
	query := `
		INSERT INTO endereco (rua, numero, cep, complemento)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		endereco.Rua,
		endereco.Numero,
		endereco.Cep,
		endereco.Complemento,
	).Scan(&endereco.ID)

	if err != nil {
		return fmt.Errorf("erro ao inserir o endereco: %w", err)
	}

	return nil
}

func (r *EnderecoRepository) List(ctx context.Context) ([]model.Endereco, error) {
	query := `
		SELECT id, rua, numero, cep, complemento
		FROM endereco
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar os endereços: %w", err)
	}
	defer rows.Close()

	var enderecos []model.Endereco
	for rows.Next() {
		var endereco model.Endereco
		if err := rows.Scan(
			&endereco.ID,
			&endereco.Rua,
			&endereco.Numero,
			&endereco.Cep,
			&endereco.Complemento,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler o endereço: %w", err)
		}
		enderecos = append(enderecos, endereco)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer os endereços: %w", err)
	}

	return enderecos, nil
}

func (r *EnderecoRepository) GetByID(ctx context.Context, id int64) (*model.Endereco, error) {
	query := `
		SELECT id, rua, numero, cep, complemento
		FROM endereco
		WHERE id = $1
	`

	var endereco model.Endereco
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&endereco.ID,
		&endereco.Rua,
		&endereco.Numero,
		&endereco.Cep,
		&endereco.Complemento,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consultar o endereço: %w", err)
	}

	return &endereco, nil
}

// GetByCep retorna o primeiro endereço cadastrado com o CEP informado.
// O CEP não é único: clientes distintos podem residir no mesmo endereço.
func (r *EnderecoRepository) GetByCep(ctx context.Context, cep string) (*model.Endereco, error) {
	query := `
		SELECT id, rua, numero, cep, complemento
		FROM endereco
		WHERE cep = $1
		ORDER BY id
		LIMIT 1
	`

	var endereco model.Endereco
	err := r.db.QueryRowContext(ctx, query, cep).Scan(
		&endereco.ID,
		&endereco.Rua,
		&endereco.Numero,
		&endereco.Cep,
		&endereco.Complemento,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consultar o endereço: %w", err)
	}

	return &endereco, nil
}

func (r *EnderecoRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM endereco WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir o endereço: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao excluir o endereço: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
