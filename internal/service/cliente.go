package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

type ClienteService struct {
	clienteRepo  *repository.ClienteRepository
	enderecoRepo *repository.EnderecoRepository
	usuarioRepo  *repository.UsuarioRepository
	logger       *logrus.Logger
}

func NewClienteService(
	clienteRepo *repository.ClienteRepository,
	enderecoRepo *repository.EnderecoRepository,
	usuarioRepo *repository.UsuarioRepository,
	logger *logrus.Logger,
) *ClienteService {
	return &ClienteService{
		clienteRepo:  clienteRepo,
		enderecoRepo: enderecoRepo,
		usuarioRepo:  usuarioRepo,
		logger:       logger,
	}
}

// CreateCliente cadastra um cliente novo. O endereço referenciado precisa
// existir; o usuário é opcional, mas quando informado também é conferido.
func (s *ClienteService) CreateCliente(ctx context.Context, req *model.ClienteRequest) (*model.Cliente, error) {
	s.logger.WithFields(logrus.Fields{
		"cpf":   req.Cpf,
		"email": req.Email,
	}).Info("Cadastrando um novo cliente")

	if err := req.Validate(); err != nil {
		s.logger.WithError(err).Warn("Dados do cliente inválidos")
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	if _, err := s.enderecoRepo.GetByID(ctx, req.EnderecoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("endereco_id", req.EnderecoID).Warn("Endereço não encontrado")
			return nil, fmt.Errorf("endereço não encontrado para este id: %d: %w", req.EnderecoID, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o endereço")
		return nil, fmt.Errorf("erro ao consultar o endereço: %w", err)
	}

	if req.UsuarioID != nil {
		if _, err := s.usuarioRepo.GetByID(ctx, *req.UsuarioID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				s.logger.WithField("usuario_id", *req.UsuarioID).Warn("Usuário não encontrado")
				return nil, fmt.Errorf("usuário não encontrado para este id: %d: %w", *req.UsuarioID, repository.ErrNotFound)
			}
			s.logger.WithError(err).Error("Erro ao consultar o usuário")
			return nil, fmt.Errorf("erro ao consultar o usuário: %w", err)
		}
	}

	nascimento, err := time.Parse("2006-01-02", req.Nascimento)
	if err != nil {
		return nil, fmt.Errorf("%w: o nascimento deve estar no formato AAAA-MM-DD", ErrValidacao)
	}

	cliente := &model.Cliente{
		Nome:       req.Nome,
		Email:      req.Email,
		Cpf:        req.Cpf,
		Nascimento: nascimento,
		EnderecoID: req.EnderecoID,
		UsuarioID:  req.UsuarioID,
	}

	if err := s.clienteRepo.Create(ctx, cliente); err != nil {
		s.logger.WithError(err).Error("Erro ao inserir o cliente")
		return nil, err
	}

	s.logger.WithField("cliente_id", cliente.ID).Info("Cliente cadastrado com sucesso")
	return cliente, nil
}

func (s *ClienteService) ListClientes(ctx context.Context) ([]model.Cliente, error) {
	clientes, err := s.clienteRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao listar os clientes")
		return nil, err
	}
	return clientes, nil
}

func (s *ClienteService) GetCliente(ctx context.Context, id int64) (*model.Cliente, error) {
	cliente, err := s.clienteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("cliente não encontrado para este id: %d: %w", id, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o cliente")
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) GetClienteByCpf(ctx context.Context, cpf string) (*model.Cliente, error) {
	cliente, err := s.clienteRepo.GetByCpf(ctx, cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("cliente com o CPF: %s não encontrado: %w", cpf, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o cliente por CPF")
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) GetClienteByEmail(ctx context.Context, email string) (*model.Cliente, error) {
	cliente, err := s.clienteRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("cliente com o email: %s não encontrado: %w", email, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o cliente por email")
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) GetClienteByNome(ctx context.Context, nome string) (*model.Cliente, error) {
	cliente, err := s.clienteRepo.GetByNome(ctx, nome)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("cliente com o nome: %s não encontrado: %w", nome, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o cliente por nome")
		return nil, err
	}
	return cliente, nil
}

func (s *ClienteService) DeleteCliente(ctx context.Context, id int64) error {
	if err := s.clienteRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("cliente não encontrado para este id: %d: %w", id, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao excluir o cliente")
		return err
	}

	s.logger.WithField("cliente_id", id).Info("Cliente excluído com sucesso")
	return nil
}
