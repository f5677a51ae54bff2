package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

type CartaoHandler struct {
	cartaoService *service.CartaoService
	logger        *logrus.Logger
}

func NewCartaoHandler(cartaoService *service.CartaoService, logger *logrus.Logger) *CartaoHandler {
	return &CartaoHandler{
		cartaoService: cartaoService,
		logger:        logger,
	}
}

func (h *CartaoHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreateCartao).Methods("POST")
	router.HandleFunc("", h.ListCartoes).Methods("GET")
	router.HandleFunc("/numero/{numero}", h.GetCartaoByNumero).Methods("GET")
	router.HandleFunc("/cliente/{cpf}", h.ListCartoesByCpf).Methods("GET")
	router.HandleFunc("/cliente/{cpf}/quantidade", h.CountCartoesByCpf).Methods("GET")
}

func (h *CartaoHandler) CreateCartao(w http.ResponseWriter, r *http.Request) {
	var cartao model.Cartao
	if err := json.NewDecoder(r.Body).Decode(&cartao); err != nil {
		h.logger.WithError(err).Warn("Erro ao decodificar os dados do cartão")
		http.Error(w, "Formato de requisição inválido", http.StatusBadRequest)
		return
	}

	criado, err := h.cartaoService.CreateCartao(r.Context(), &cartao)
	if err != nil {
		h.logger.WithError(err).Error("Erro ao cadastrar o cartão")
		http.Error(w, err.Error(), statusCadastro(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(criado); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cartão")
	}
}

func (h *CartaoHandler) ListCartoes(w http.ResponseWriter, r *http.Request) {
	cartoes, err := h.cartaoService.ListCartoes(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar os cartões", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cartoes); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a lista de cartões")
	}
}

func (h *CartaoHandler) GetCartaoByNumero(w http.ResponseWriter, r *http.Request) {
	cartao, err := h.cartaoService.GetCartaoByNumero(r.Context(), mux.Vars(r)["numero"])
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.logger.WithError(err).Error("Erro ao consultar o cartão")
		http.Error(w, "Erro ao consultar o cartão", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cartao); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cartão")
	}
}

func (h *CartaoHandler) ListCartoesByCpf(w http.ResponseWriter, r *http.Request) {
	cartoes, err := h.cartaoService.ListCartoesByCpf(r.Context(), mux.Vars(r)["cpf"])
	if err != nil {
		http.Error(w, "Erro ao listar os cartões do cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cartoes); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a lista de cartões")
	}
}

func (h *CartaoHandler) CountCartoesByCpf(w http.ResponseWriter, r *http.Request) {
	count, err := h.cartaoService.CountCartoesByCpf(r.Context(), mux.Vars(r)["cpf"])
	if err != nil {
		http.Error(w, "Erro ao contar os cartões do cliente", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]int{"quantidade": count}); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a contagem de cartões")
	}
}
