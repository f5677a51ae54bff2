package service

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
)

const (
	cpfTitular = "33475078007"
	cpfOutro   = "52998224725"
	numeroTest = "1111222233334444"
)

type clienteDirectoryStub struct {
	clientes map[string]*model.Cliente
}

func (s *clienteDirectoryStub) GetByCpf(_ context.Context, cpf string) (*model.Cliente, error) {
	if cliente, ok := s.clientes[cpf]; ok {
		return cliente, nil
	}
	return nil, repository.ErrNotFound
}

type cartaoDirectoryStub struct {
	cartoes map[string]*model.Cartao
}

func (s *cartaoDirectoryStub) GetByNumero(_ context.Context, numero string) (*model.Cartao, error) {
	if cartao, ok := s.cartoes[numero]; ok {
		return cartao, nil
	}
	return nil, repository.ErrNotFound
}

type ledgerStub struct {
	gravados []model.Pagamento
}

func (s *ledgerStub) Create(_ context.Context, pagamento *model.Pagamento) error {
	s.gravados = append(s.gravados, *pagamento)
	return nil
}

func (s *ledgerStub) ListByCpf(_ context.Context, cpf string) ([]model.Pagamento, error) {
	var out []model.Pagamento
	for _, p := range s.gravados {
		if p.Cpf == cpf {
			out = append(out, p)
		}
	}
	return out, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newPagamentoServiceFixture() (*PagamentoService, *ledgerStub) {
	clientes := &clienteDirectoryStub{clientes: map[string]*model.Cliente{
		cpfTitular: {ID: 1, Nome: "Maria das Dores", Cpf: cpfTitular},
		cpfOutro:   {ID: 2, Nome: "José dos Santos", Cpf: cpfOutro},
	}}
	cartoes := &cartaoDirectoryStub{cartoes: map[string]*model.Cartao{
		numeroTest: {
			Numero:       numeroTest,
			Cpf:          cpfTitular,
			Limite:       decimal.NewFromFloat(500.00),
			DataValidade: "09/27",
			Cvv:          "123",
		},
	}}
	ledger := &ledgerStub{}
	return NewPagamentoService(clientes, cartoes, ledger, nil, testLogger()), ledger
}

func novoPagamento(valor float64) *model.Pagamento {
	return &model.Pagamento{
		Cpf:          cpfTitular,
		Numero:       numeroTest,
		DataValidade: "09/27",
		Cvv:          "123",
		Valor:        decimal.NewFromFloat(valor),
	}
}

func TestProcessPaymentAprovado(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	autorizado, err := svc.ProcessPayment(context.Background(), novoPagamento(100.00))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, autorizado.ChavePagamento)
	assert.False(t, autorizado.CreatedAt.IsZero())
	require.Len(t, ledger.gravados, 1)
	assert.True(t, ledger.gravados[0].Valor.Equal(decimal.NewFromFloat(100.00)))
}

func TestProcessPaymentValorIgualAoLimite(t *testing.T) {
	// A compra no valor exato do limite é aprovada; só valores acima recusam
	svc, ledger := newPagamentoServiceFixture()

	_, err := svc.ProcessPayment(context.Background(), novoPagamento(500.00))
	require.NoError(t, err)
	assert.Len(t, ledger.gravados, 1)
}

func TestProcessPaymentLimiteInsuficiente(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	_, err := svc.ProcessPayment(context.Background(), novoPagamento(600.00))
	require.ErrorIs(t, err, ErrLimiteInsuficiente)
	assert.Empty(t, ledger.gravados)
}

func TestProcessPaymentLimiteNaoDebitado(t *testing.T) {
	// O limite não acumula: duas compras de 400 contra um limite de 500
	// passam, cada uma comparada ao limite cadastrado
	svc, ledger := newPagamentoServiceFixture()

	_, err := svc.ProcessPayment(context.Background(), novoPagamento(400.00))
	require.NoError(t, err)
	_, err = svc.ProcessPayment(context.Background(), novoPagamento(400.00))
	require.NoError(t, err)
	assert.Len(t, ledger.gravados, 2)
}

func TestProcessPaymentCvvIncorreto(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	pagamento := novoPagamento(100.00)
	pagamento.Cvv = "999"
	_, err := svc.ProcessPayment(context.Background(), pagamento)
	require.ErrorIs(t, err, ErrCvvIncorreto)
	assert.Empty(t, ledger.gravados)
}

func TestProcessPaymentCartaoInexistente(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	pagamento := novoPagamento(100.00)
	pagamento.Numero = "9999888877776666"
	_, err := svc.ProcessPayment(context.Background(), pagamento)
	require.ErrorIs(t, err, ErrCartaoNaoEncontrado)
	assert.Empty(t, ledger.gravados)
}

func TestProcessPaymentClienteInexistente(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	pagamento := novoPagamento(100.00)
	pagamento.Cpf = "98765432100"
	_, err := svc.ProcessPayment(context.Background(), pagamento)
	require.ErrorIs(t, err, ErrClienteNaoEncontrado)
	assert.Empty(t, ledger.gravados)
}

func TestProcessPaymentCartaoDeOutroCliente(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	pagamento := novoPagamento(100.00)
	pagamento.Cpf = cpfOutro
	_, err := svc.ProcessPayment(context.Background(), pagamento)
	require.ErrorIs(t, err, ErrCartaoDeOutroCliente)
	assert.Empty(t, ledger.gravados)
}

func TestProcessPaymentCamposInvalidos(t *testing.T) {
	svc, ledger := newPagamentoServiceFixture()

	pagamento := novoPagamento(100.00)
	pagamento.Cpf = "123"
	_, err := svc.ProcessPayment(context.Background(), pagamento)
	require.ErrorIs(t, err, ErrValidacao)
	assert.Empty(t, ledger.gravados)
}

func TestListPaymentsByClient(t *testing.T) {
	svc, _ := newPagamentoServiceFixture()

	_, err := svc.ProcessPayment(context.Background(), novoPagamento(100.00))
	require.NoError(t, err)
	_, err = svc.ProcessPayment(context.Background(), novoPagamento(250.50))
	require.NoError(t, err)

	relatorio, err := svc.ListPaymentsByClient(context.Background(), cpfTitular)
	require.NoError(t, err)
	require.Len(t, relatorio, 2)

	for _, item := range relatorio {
		assert.Equal(t, "Compra", item.Descricao)
		assert.Equal(t, "Cartão de crédito", item.MetodoPagamento)
		assert.Equal(t, "Aprovado", item.Status)
	}
	assert.True(t, relatorio[0].Valor.Equal(decimal.NewFromFloat(100.00)))
	assert.True(t, relatorio[1].Valor.Equal(decimal.NewFromFloat(250.50)))
}

func TestListPaymentsByClientSemPagamentos(t *testing.T) {
	svc, _ := newPagamentoServiceFixture()

	relatorio, err := svc.ListPaymentsByClient(context.Background(), cpfOutro)
	require.NoError(t, err)
	assert.Empty(t, relatorio)
}
