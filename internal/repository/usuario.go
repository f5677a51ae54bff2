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

type UsuarioRepository struct {
	db     *sql.DB
	logger *logrus.Logger
}

func NewUsuarioRepository(db *sql.DB, logger *logrus.Logger) *UsuarioRepository {
	return &UsuarioRepository{db: db, logger: logger}
}

func (r *UsuarioRepository) Create(ctx context.Context, usuario *model.Usuario) error {
	query := `
		INSERT INTO usuario (username, password, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRowContext(
		ctx,
		query,
		usuario.Username,
		usuario.Password,
		usuario.CreatedAt,
	).Scan(&usuario.ID)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			return fmt.Errorf("já existe um usuário com este username")
		}
		return fmt.Errorf("erro ao criar o usuário: %w", err)
	}

	return nil
}

func (r *UsuarioRepository) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	query := `
		SELECT id, username, password, created_at
		FROM usuario
		WHERE username = $1
	`

	var usuario model.Usuario
	err := r.db.QueryRowContext(ctx, query, username).Scan(
		&usuario.ID,
		&usuario.Username,
		&usuario.Password,
		&usuario.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consultar o usuário: %w", err)
	}

	return &usuario, nil
}

func (r *UsuarioRepository) GetByID(ctx context.Context, id int64) (*model.Usuario, error) {
	query := `
		SELECT id, username, password, created_at
		FROM usuario
		WHERE id = $1
	`

	var usuario model.Usuario
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&usuario.ID,
		&usuario.Username,
		&usuario.Password,
		&usuario.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("erro ao consultar o usuário: %w", err)
	}

	return &usuario, nil
}

func (r *UsuarioRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM usuario WHERE username = $1
		)
	`

	var exists bool
	err := r.db.QueryRowContext(ctx, query, username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("erro ao verificar a existência do usuário: %w", err)
	}

	return exists, nil
}
