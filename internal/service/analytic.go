package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

type AnalyticService struct {
	pagamentoRepo *repository.PagamentoRepository
	bcbClient     *BCBClient
	logger        *logrus.Logger
}

func NewAnalyticService(
	pagamentoRepo *repository.PagamentoRepository,
	bcbClient *BCBClient,
	logger *logrus.Logger,
) *AnalyticService {
	return &AnalyticService{
		pagamentoRepo: pagamentoRepo,
		bcbClient:     bcbClient,
		logger:        logger,
	}
}

// GetResumoDiario totaliza os pagamentos gravados nas últimas 24 horas
func (s *AnalyticService) GetResumoDiario(ctx context.Context) (*model.ResumoPagamentos, error) {
	fim := time.Now()
	inicio := fim.Add(-24 * time.Hour)

	quantidade, total, err := s.pagamentoRepo.TotalsSince(ctx, inicio)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao totalizar os pagamentos do dia")
		return nil, err
	}

	return &model.ResumoPagamentos{
		Quantidade: quantidade,
		ValorTotal: total,
		Inicio:     inicio,
		Fim:        fim,
	}, nil
}

// LogResumoDiario é o alvo do agendador: calcula e registra o resumo do dia
func (s *AnalyticService) LogResumoDiario(ctx context.Context) error {
	resumo, err := s.GetResumoDiario(ctx)
	if err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"quantidade":  resumo.Quantidade,
		"valor_total": resumo.ValorTotal,
	}).Info("Resumo diário de pagamentos")

	return nil
}

// GetCotacaoDolar consulta a última cotação do dólar no Banco Central
func (s *AnalyticService) GetCotacaoDolar() (*model.CotacaoResponse, error) {
	cotacao, err := s.bcbClient.GetDollarRate()
	if err != nil {
		return nil, err
	}

	return &model.CotacaoResponse{
		Moeda:   "USD",
		Cotacao: cotacao,
	}, nil
}
