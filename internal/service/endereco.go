package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

type EnderecoService struct {
	enderecoRepo *repository.EnderecoRepository
	logger       *logrus.Logger
}

func NewEnderecoService(enderecoRepo *repository.EnderecoRepository, logger *logrus.Logger) *EnderecoService {
	return &EnderecoService{enderecoRepo: enderecoRepo, logger: logger}
}

func (s *EnderecoService) CreateEndereco(ctx context.Context, endereco *model.Endereco) (*model.Endereco, error) {
	s.logger.WithField("cep", endereco.Cep).Info("Cadastrando um novo endereço")

	if err := endereco.Validate(); err != nil {
		s.logger.WithError(err).Warn("Dados do endereço inválidos")
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	if err := s.enderecoRepo.Create(ctx, endereco); err != nil {
		s.logger.WithError(err).Error("Erro ao inserir o endereço")
		return nil, err
	}

	s.logger.WithField("endereco_id", endereco.ID).Info("Endereço cadastrado com sucesso")
	return endereco, nil
}

func (s *EnderecoService) ListEnderecos(ctx context.Context) ([]model.Endereco, error) {
	enderecos, err := s.enderecoRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao listar os endereços")
		return nil, err
	}
	return enderecos, nil
}

func (s *EnderecoService) GetEndereco(ctx context.Context, id int64) (*model.Endereco, error) {
	endereco, err := s.enderecoRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("endereço não encontrado para este id: %d: %w", id, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o endereço")
		return nil, err
	}
	return endereco, nil
}

func (s *EnderecoService) GetEnderecoByCep(ctx context.Context, cep string) (*model.Endereco, error) {
	endereco, err := s.enderecoRepo.GetByCep(ctx, cep)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("endereço com o CEP: %s não encontrado: %w", cep, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o endereço por CEP")
		return nil, err
	}
	return endereco, nil
}

func (s *EnderecoService) DeleteEndereco(ctx context.Context, id int64) error {
	if err := s.enderecoRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("endereço não encontrado para este id: %d: %w", id, repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao excluir o endereço")
		return err
	}

	s.logger.WithField("endereco_id", id).Info("Endereço excluído com sucesso")
	return nil
}
