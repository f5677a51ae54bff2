package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

type EnderecoHandler struct {
	enderecoService *service.EnderecoService
	logger          *logrus.Logger
}

func NewEnderecoHandler(enderecoService *service.EnderecoService, logger *logrus.Logger) *EnderecoHandler {
	return &EnderecoHandler{
		enderecoService: enderecoService,
		logger:          logger,
	}
}

func (h *EnderecoHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreateEndereco).Methods("POST")
	router.HandleFunc("", h.ListEnderecos).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", h.GetEndereco).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", h.DeleteEndereco).Methods("DELETE")
	router.HandleFunc("/cep/{cep}", h.GetEnderecoByCep).Methods("GET")
}

func (h *EnderecoHandler) CreateEndereco(w http.ResponseWriter, r *http.Request) {
	var endereco model.Endereco
	if err := json.NewDecoder(r.Body).Decode(&endereco); err != nil {
		h.logger.WithError(err).Warn("Erro ao decodificar os dados do endereço")
		http.Error(w, "Formato de requisição inválido", http.StatusBadRequest)
		return
	}

	criado, err := h.enderecoService.CreateEndereco(r.Context(), &endereco)
	if err != nil {
		h.logger.WithError(err).Error("Erro ao cadastrar o endereço")
		http.Error(w, err.Error(), statusCadastro(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(criado); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do endereço")
	}
}

func (h *EnderecoHandler) ListEnderecos(w http.ResponseWriter, r *http.Request) {
	enderecos, err := h.enderecoService.ListEnderecos(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar os endereços", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(enderecos); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a lista de endereços")
	}
}

func (h *EnderecoHandler) GetEndereco(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Id inválido", http.StatusBadRequest)
		return
	}

	endereco, err := h.enderecoService.GetEndereco(r.Context(), id)
	if err != nil {
		h.respondEnderecoError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(endereco); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do endereço")
	}
}

func (h *EnderecoHandler) GetEnderecoByCep(w http.ResponseWriter, r *http.Request) {
	endereco, err := h.enderecoService.GetEnderecoByCep(r.Context(), mux.Vars(r)["cep"])
	if err != nil {
		h.respondEnderecoError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(endereco); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do endereço")
	}
}

func (h *EnderecoHandler) DeleteEndereco(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Id inválido", http.StatusBadRequest)
		return
	}

	if err := h.enderecoService.DeleteEndereco(r.Context(), id); err != nil {
		h.respondEnderecoError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Endereço excluído com sucesso!"})
}

func (h *EnderecoHandler) respondEnderecoError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.logger.WithError(err).Error("Erro ao consultar o endereço")
	http.Error(w, "Erro ao consultar o endereço", http.StatusInternalServerError)
}
