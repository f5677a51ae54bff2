package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

// Rótulos fixos da projeção de pagamentos por cliente
const (
	descricaoCompra     = "Compra"
	metodoCartaoCredito = "Cartão de crédito"
	statusAprovado      = "Aprovado"
)

// ClienteDirectory é a consulta de clientes usada pela autorização
type ClienteDirectory interface {
	GetByCpf(ctx context.Context, cpf string) (*model.Cliente, error)
}

// CartaoDirectory é a consulta de cartões usada pela autorização
type CartaoDirectory interface {
	GetByNumero(ctx context.Context, numero string) (*model.Cartao, error)
}

// PagamentoLedger grava e consulta os pagamentos autorizados
type PagamentoLedger interface {
	Create(ctx context.Context, pagamento *model.Pagamento) error
	ListByCpf(ctx context.Context, cpf string) ([]model.Pagamento, error)
}

// PagamentoService autoriza pagamentos cruzando cliente e cartão antes de
// gravar no livro de pagamentos
type PagamentoService struct {
	clientes    ClienteDirectory
	cartoes     CartaoDirectory
	pagamentos  PagamentoLedger
	emailSender *EmailSender
	logger      *logrus.Logger
}

func NewPagamentoService(
	clientes ClienteDirectory,
	cartoes CartaoDirectory,
	pagamentos PagamentoLedger,
	emailSender *EmailSender,
	logger *logrus.Logger,
) *PagamentoService {
	return &PagamentoService{
		clientes:    clientes,
		cartoes:     cartoes,
		pagamentos:  pagamentos,
		emailSender: emailSender,
		logger:      logger,
	}
}

// ProcessPayment valida o pagamento na ordem fixa: campos, cliente, cartão,
// titularidade, limite e CVV. A primeira regra que falhar interrompe a
// autorização e nada é gravado. No sucesso o pagamento recebe uma chave nova
// e é gravado uma única vez.
//
// O limite do cartão não é debitado: a comparação é sempre contra o limite
// cadastrado, sem saldo acumulado.
func (s *PagamentoService) ProcessPayment(ctx context.Context, pagamento *model.Pagamento) (*model.Pagamento, error) {
	s.logger.WithFields(logrus.Fields{
		"cpf":    pagamento.Cpf,
		"numero": maskNumero(pagamento.Numero),
		"valor":  pagamento.Valor,
	}).Info("Iniciando a autorização do pagamento")

	// 1. Validação estrutural, antes de qualquer consulta
	if err := pagamento.Validate(); err != nil {
		s.logger.WithError(err).Warn("Pagamento recusado na validação dos campos")
		return nil, fmt.Errorf("%w: %v", ErrValidacao, err)
	}

	// 2. O cliente precisa existir
	cliente, err := s.clientes.GetByCpf(ctx, pagamento.Cpf)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("cpf", pagamento.Cpf).Warn("Cliente não encontrado para o CPF informado")
			return nil, ErrClienteNaoEncontrado
		}
		s.logger.WithError(err).Error("Erro ao consultar o cliente")
		return nil, fmt.Errorf("erro ao consultar o cliente: %w", err)
	}

	// 3. O cartão precisa existir (busca exata pelo número)
	cartao, err := s.cartoes.GetByNumero(ctx, pagamento.Numero)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.WithField("numero", maskNumero(pagamento.Numero)).Warn("Cartão não encontrado")
			return nil, ErrCartaoNaoEncontrado
		}
		s.logger.WithError(err).Error("Erro ao consultar o cartão")
		return nil, fmt.Errorf("erro ao consultar o cartão: %w", err)
	}

	// 4. O cartão precisa pertencer ao cliente
	if cartao.Cpf != pagamento.Cpf {
		s.logger.WithField("cpf", pagamento.Cpf).Warn("Cartão pertence a outro cliente")
		return nil, ErrCartaoDeOutroCliente
	}

	// 5. O limite cadastrado precisa cobrir o valor
	if cartao.Limite.LessThan(pagamento.Valor) {
		s.logger.WithFields(logrus.Fields{
			"limite": cartao.Limite,
			"valor":  pagamento.Valor,
		}).Warn("Limite insuficiente para a compra")
		return nil, ErrLimiteInsuficiente
	}

	// 6. O CVV informado precisa conferir com o do cartão
	if cartao.Cvv != pagamento.Cvv {
		s.logger.Warn("CVV incorreto, compra recusada")
		return nil, ErrCvvIncorreto
	}

	pagamento.ChavePagamento = uuid.New()
	pagamento.CreatedAt = time.Now()

	if err := s.pagamentos.Create(ctx, pagamento); err != nil {
		s.logger.WithError(err).Error("Erro ao gravar o pagamento autorizado")
		return nil, fmt.Errorf("erro ao gravar o pagamento: %w", err)
	}

	s.logger.WithField("chave_pagamento", pagamento.ChavePagamento).Info("Pagamento autorizado com sucesso")

	// Notificação por e-mail em segundo plano, sem afetar a resposta
	if s.emailSender != nil && cliente.Email != "" {
		email := cliente.Email
		valor := pagamento.Valor
		go func() {
			if err := s.emailSender.SendPaymentNotification(email, valor, descricaoCompra); err != nil {
				s.logger.WithError(err).Warn("Não foi possível enviar o e-mail de confirmação do pagamento")
			}
		}()
	}

	return pagamento, nil
}

// ListPaymentsByClient projeta os pagamentos do cliente no formato de
// relatório, na ordem de inserção
func (s *PagamentoService) ListPaymentsByClient(ctx context.Context, cpf string) ([]model.PagamentoPorClienteResponse, error) {
	s.logger.WithField("cpf", cpf).Info("Listando os pagamentos do cliente")

	pagamentos, err := s.pagamentos.ListByCpf(ctx, cpf)
	if err != nil {
		s.logger.WithError(err).Error("Erro ao consultar os pagamentos do cliente")
		return nil, fmt.Errorf("erro ao consultar os pagamentos: %w", err)
	}

	retorno := make([]model.PagamentoPorClienteResponse, 0, len(pagamentos))
	for _, p := range pagamentos {
		retorno = append(retorno, model.PagamentoPorClienteResponse{
			Valor:           p.Valor,
			Descricao:       descricaoCompra,
			MetodoPagamento: metodoCartaoCredito,
			Status:          statusAprovado,
		})
	}

	return retorno, nil
}

func maskNumero(numero string) string {
	if len(numero) < 4 {
		return "****"
	}
	return "**** **** **** " + numero[len(numero)-4:]
}
