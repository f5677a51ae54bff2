package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

type CartaoService struct {
	cartaoRepo *repository.CartaoRepository
	logger     *logrus.Logger
}

func NewCartaoService(cartaoRepo *repository.CartaoRepository, logger *logrus.Logger) *CartaoService {
	return &CartaoService{cartaoRepo: cartaoRepo, logger: logger}
}

func (s *CartaoService) CreateCartao(ctx context.Context, cartao *model.Cartao) (*model.Cartao, error) {
	s.logger.WithFields(logrus.Fields{
		"numero": maskNumero(cartao.Numero),
		"cpf":    cartao.Cpf,
	}).Info("Cadastrando um novo cartão")

	if err := cartao.Validate(); err != nil {
		s.logger.WithError(err).Warn("Dados do cartão inválidos")
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	if err := s.cartaoRepo.Create(ctx, cartao); err != nil {
		s.logger.WithError(err).Error("Erro ao inserir o cartão")
		return nil, err
	}

	s.logger.WithField("numero", maskNumero(cartao.Numero)).Info("Cartão cadastrado com sucesso")
	return cartao, nil
}

func (s *CartaoService) ListCartoes(ctx context.Context) ([]model.Cartao, error) {
	cartoes, err := s.cartaoRepo.List(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao listar os cartões")
		return nil, err
	}
	return cartoes, nil
}

// GetCartaoByNumero busca pelo número exato do cartão
func (s *CartaoService) GetCartaoByNumero(ctx context.Context, numero string) (*model.Cartao, error) {
	cartao, err := s.cartaoRepo.GetByNumero(ctx, numero)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("cartão não encontrado para este numero: %s: %w", maskNumero(numero), repository.ErrNotFound)
		}
		s.logger.WithError(err).Error("Erro ao consultar o cartão")
		return nil, err
	}
	return cartao, nil
}

func (s *CartaoService) ListCartoesByCpf(ctx context.Context, cpf string) ([]model.Cartao, error) {
	cartoes, err := s.cartaoRepo.ListByCpf(ctx, cpf)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao listar os cartões do cliente")
		return nil, err
	}
	return cartoes, nil
}

func (s *CartaoService) CountCartoesByCpf(ctx context.Context, cpf string) (int, error) {
	count, err := s.cartaoRepo.CountByCpf(ctx, cpf)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao contar os cartões do cliente")
		return 0, err
	}
	return count, nil
}
