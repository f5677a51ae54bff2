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

// ErrNotFound indica que o registro consultado não existe
var ErrNotFound = errors.New("registro não encontrado")

type ClienteRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewClienteRepository(db *sql.DB, logger *logrus.Logger) *ClienteRepository {
	return &ClienteRepository{db: db, logger: logger}
}

func (r *ClienteRepository) Create(ctx context.Context, cliente *model.Cliente) error {
	query := `
		INSERT INTO cliente (nome, email, cpf, nascimento, endereco_id, usuario_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		cliente.Nome,
		cliente.Email,
		cliente.Cpf,
		cliente.Nascimento,
		cliente.EnderecoID,
		cliente.UsuarioID,
	).Scan(&cliente.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("já existe um cliente com este CPF")
		}
		return fmt.Errorf("erro ao inserir o cliente: %w", err)
	}

	return nil
}

func (r *ClienteRepository) List(ctx context.Context) ([]model.Cliente, error) {
	query := `
		SELECT id, nome, email, cpf, nascimento, endereco_id, usuario_id
		FROM cliente
		ORDER BY id
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar os clientes: %w", err)
	}
	defer rows.Close()

	var clientes []model.Cliente
	for rows.Next() {
		var cliente model.Cliente
		if err := rows.Scan(
			&cliente.ID,
			&cliente.Nome,
			&cliente.Email,
			&cliente.Cpf,
			&cliente.Nascimento,
			&cliente.EnderecoID,
			&cliente.UsuarioID,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler o cliente: %w", err)
		}
		clientes = append(clientes, cliente)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer os clientes: %w", err)
	}

	return clientes, nil
}

func (r *ClienteRepository) GetByID(ctx context.Context, id int64) (*model.Cliente, error) {
	return r.getOne(ctx, "id = $1", id)
}

func (r *ClienteRepository) GetByCpf(ctx context.Context, cpf string) (*model.Cliente, error) {
	return r.getOne(ctx, "cpf = $1", cpf)
}

func (r *ClienteRepository) GetByEmail(ctx context.Context, email string) (*model.Cliente, error) {
	return r.getOne(ctx, "email = $1", email)
}

func (r *ClienteRepository) GetByNome(ctx context.Context, nome string) (*model.Cliente, error) {
	return r.getOne(ctx, "nome = $1", nome)
}

func (r *ClienteRepository) getOne(ctx context.Context, where string, arg interface{}) (*model.Cliente, error) {
	query := `
		SELECT id, nome, email, cpf, nascimento, endereco_id, usuario_id
		FROM cliente
		WHERE ` + where

	var cliente model.Cliente
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&cliente.ID,
		&cliente.Nome,
		&cliente.Email,
		&cliente.Cpf,
		&cliente.Nascimento,
		&cliente.EnderecoID,
		&cliente.UsuarioID,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consultar o cliente: %w", err)
	}

	return &cliente, nil
}

func (r *ClienteRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM cliente WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("erro ao excluir o cliente: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao excluir o cliente: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
