package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
	"github.com/victormontibeller/ApiPagamentos/internal/service"
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

func newPagamentoRouter() *mux.Router {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	clientes := &clienteDirectoryStub{clientes: map[string]*model.Cliente{
		"33475078007": {ID: 1, Nome: "Maria das Dores", Cpf: "33475078007"},
		"52998224725": {ID: 2, Nome: "José dos Santos", Cpf: "52998224725"},
	}}
	cartoes := &cartaoDirectoryStub{cartoes: map[string]*model.Cartao{
		"1111222233334444": {
			Numero:       "1111222233334444",
			Cpf:          "33475078007",
			Limite:       decimal.NewFromFloat(500.00),
			DataValidade: "09/27",
			Cvv:          "123",
		},
	}}

	svc := service.NewPagamentoService(clientes, cartoes, &ledgerStub{}, nil, logger)
	handler := NewPagamentoHandler(svc, logger)

	router := mux.NewRouter()
	handler.RegisterRoutes(router.PathPrefix("/pagamentos").Subrouter())
	return router
}

func postPagamento(t *testing.T, router *mux.Router, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/pagamentos", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func pagamentoBody() map[string]interface{} {
	return map[string]interface{}{
		"cpf":           "33475078007",
		"numero":        "1111222233334444",
		"data_validade": "09/27",
		"cvv":           "123",
		"valor":         "100.00",
	}
}

func TestCreatePagamentoAprovado(t *testing.T) {
	router := newPagamentoRouter()

	rec := postPagamento(t, router, pagamentoBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var resposta model.Pagamento
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resposta))
	assert.Equal(t, "33475078007", resposta.Cpf)
	assert.NotEmpty(t, resposta.ChavePagamento)
}

func TestCreatePagamentoLimiteInsuficiente(t *testing.T) {
	router := newPagamentoRouter()

	body := pagamentoBody()
	body["valor"] = "600.00"
	rec := postPagamento(t, router, body)
	assert.Equal(t, http.StatusPaymentRequired, rec.Code)
}

func TestCreatePagamentoCvvIncorreto(t *testing.T) {
	router := newPagamentoRouter()

	body := pagamentoBody()
	body["cvv"] = "999"
	rec := postPagamento(t, router, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreatePagamentoCartaoDeOutroCliente(t *testing.T) {
	router := newPagamentoRouter()

	body := pagamentoBody()
	body["cpf"] = "52998224725"
	rec := postPagamento(t, router, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreatePagamentoCartaoInexistente(t *testing.T) {
	router := newPagamentoRouter()

	body := pagamentoBody()
	body["numero"] = "9999888877776666"
	rec := postPagamento(t, router, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePagamentoClienteInexistente(t *testing.T) {
	router := newPagamentoRouter()

	body := pagamentoBody()
	body["cpf"] = "98765432100"
	rec := postPagamento(t, router, body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreatePagamentoCamposInvalidos(t *testing.T) {
	router := newPagamentoRouter()

	body := pagamentoBody()
	body["cpf"] = "123"
	rec := postPagamento(t, router, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreatePagamentoCorpoMalformado(t *testing.T) {
	router := newPagamentoRouter()

	req := httptest.NewRequest(http.MethodPost, "/pagamentos", bytes.NewReader([]byte("{")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListPagamentosPorCliente(t *testing.T) {
	router := newPagamentoRouter()

	require.Equal(t, http.StatusOK, postPagamento(t, router, pagamentoBody()).Code)

	req := httptest.NewRequest(http.MethodGet, "/pagamentos/cliente/33475078007", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var relatorio []model.PagamentoPorClienteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&relatorio))
	require.Len(t, relatorio, 1)
	assert.Equal(t, "Compra", relatorio[0].Descricao)
	assert.Equal(t, "Cartão de crédito", relatorio[0].MetodoPagamento)
	assert.Equal(t, "Aprovado", relatorio[0].Status)
}
