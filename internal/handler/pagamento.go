package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

type PagamentoHandler struct {
	pagamentoService *service.PagamentoService
	logger           *logrus.Logger
}

func NewPagamentoHandler(pagamentoService *service.PagamentoService, logger *logrus.Logger) *PagamentoHandler {
	return &PagamentoHandler{
		pagamentoService: pagamentoService,
		logger:           logger,
	}
}

func (h *PagamentoHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreatePagamento).Methods("POST")
	router.HandleFunc("/cliente/{cpf}", h.ListPagamentosPorCliente).Methods("GET")
}

// CreatePagamento recebe a solicitação de pagamento e devolve o pagamento
// autorizado ou a falha da primeira regra que recusou a compra
func (h *PagamentoHandler) CreatePagamento(w http.ResponseWriter, r *http.Request) {
	var pagamento model.Pagamento
	if err := json.NewDecoder(r.Body).Decode(&pagamento); err != nil {
		h.logger.WithError(err).Warn("Erro ao decodificar a solicitação de pagamento")
		http.Error(w, "Formato de requisição inválido", http.StatusBadRequest)
		return
	}

	autorizado, err := h.pagamentoService.ProcessPayment(r.Context(), &pagamento)
	if err != nil {
		h.logger.WithError(err).Warn("Pagamento recusado")
		http.Error(w, err.Error(), statusPagamento(err))
		return
	}

	h.logger.WithField("chave_pagamento", autorizado.ChavePagamento).Info("Pagamento autorizado")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(autorizado); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do pagamento")
	}
}

// ListPagamentosPorCliente devolve o relatório de pagamentos de um cliente
func (h *PagamentoHandler) ListPagamentosPorCliente(w http.ResponseWriter, r *http.Request) {
	cpf := mux.Vars(r)["cpf"]

	pagamentos, err := h.pagamentoService.ListPaymentsByClient(r.Context(), cpf)
	if err != nil {
		h.logger.WithError(err).Error("Erro ao listar os pagamentos do cliente")
		http.Error(w, "Erro ao listar os pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pagamentos); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a lista de pagamentos")
	}
}

// statusPagamento traduz cada falha de autorização para o código HTTP da API:
// dados malformados 400, cadastros ausentes 404, limite insuficiente 402 e
// recusas de titularidade ou CVV 403.
func statusPagamento(err error) int {
	switch {
	case errors.Is(err, service.ErrValidacao):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrClienteNaoEncontrado),
		errors.Is(err, service.ErrCartaoNaoEncontrado):
		return http.StatusNotFound
	case errors.Is(err, service.ErrLimiteInsuficiente):
		return http.StatusPaymentRequired
	case errors.Is(err, service.ErrCartaoDeOutroCliente),
		errors.Is(err, service.ErrCvvIncorreto):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
