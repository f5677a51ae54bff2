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

type ClienteHandler struct {
	clienteService *service.ClienteService
	logger         *logrus.Logger
}

func NewClienteHandler(clienteService *service.ClienteService, logger *logrus.Logger) *ClienteHandler {
	return &ClienteHandler{
		clienteService: clienteService,
		logger:         logger,
	}
}

func (h *ClienteHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("", h.CreateCliente).Methods("POST")
	router.HandleFunc("", h.ListClientes).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", h.GetCliente).Methods("GET")
	router.HandleFunc("/{id:[0-9]+}", h.DeleteCliente).Methods("DELETE")
	router.HandleFunc("/cpf/{cpf}", h.GetClienteByCpf).Methods("GET")
	router.HandleFunc("/email/{email}", h.GetClienteByEmail).Methods("GET")
	router.HandleFunc("/nome/{nome}", h.GetClienteByNome).Methods("GET")
}

func (h *ClienteHandler) CreateCliente(w http.ResponseWriter, r *http.Request) {
	var req model.ClienteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WithError(err).Warn("Erro ao decodificar os dados do cliente")
		http.Error(w, "Formato de requisição inválido", http.StatusBadRequest)
		return
	}

	cliente, err := h.clienteService.CreateCliente(r.Context(), &req)
	if err != nil {
		h.logger.WithError(err).Error("Erro ao cadastrar o cliente")
		http.Error(w, err.Error(), statusCadastro(err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(cliente); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cliente")
	}
}

func (h *ClienteHandler) ListClientes(w http.ResponseWriter, r *http.Request) {
	clientes, err := h.clienteService.ListClientes(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar os clientes", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(clientes); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a lista de clientes")
	}
}

func (h *ClienteHandler) GetCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Id inválido", http.StatusBadRequest)
		return
	}

	cliente, err := h.clienteService.GetCliente(r.Context(), id)
	if err != nil {
		h.respondClienteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cliente); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cliente")
	}
}

func (h *ClienteHandler) GetClienteByCpf(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.clienteService.GetClienteByCpf(r.Context(), mux.Vars(r)["cpf"])
	if err != nil {
		h.respondClienteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cliente); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cliente")
	}
}

func (h *ClienteHandler) GetClienteByEmail(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.clienteService.GetClienteByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		h.respondClienteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cliente); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cliente")
	}
}

func (h *ClienteHandler) GetClienteByNome(w http.ResponseWriter, r *http.Request) {
	cliente, err := h.clienteService.GetClienteByNome(r.Context(), mux.Vars(r)["nome"])
	if err != nil {
		h.respondClienteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cliente); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a resposta do cliente")
	}
}

func (h *ClienteHandler) DeleteCliente(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "Id inválido", http.StatusBadRequest)
		return
	}

	if err := h.clienteService.DeleteCliente(r.Context(), id); err != nil {
		h.respondClienteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"mensagem": "Cliente excluído com sucesso!"})
}

func (h *ClienteHandler) respondClienteError(w http.ResponseWriter, err error) {
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	h.logger.WithError(err).Error("Erro ao consultar o cliente")
	http.Error(w, "Erro ao consultar o cliente", http.StatusInternalServerError)
}

// statusCadastro traduz os erros de cadastro: entrada inválida 400,
// referência inexistente 404, o resto 500
func statusCadastro(err error) int {
	switch {
	case errors.Is(err, service.ErrValidacao):
		return http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
