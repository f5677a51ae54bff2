package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/model"
	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

// AuthHandler trata as requisições de autenticação
type AuthHandler struct {
	authService *service.AuthService
	logger      *logrus.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

func (h *AuthHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/signup", h.SignUp).Methods("POST")
	router.HandleFunc("/signin", h.SignIn).Methods("POST")
}

// SignUp trata o registro de um novo usuário
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var input model.SignUpInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Error("Não foi possível decodificar os dados de registro")
		http.Error(w, "Formato de requisição inválido", http.StatusBadRequest)
		return
	}

	if err := input.Validate(); err != nil {
		h.logger.WithError(err).Error("Erro de validação nos dados de registro")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	usuario, err := h.authService.SignUp(r.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Não foi possível registrar o usuário")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response := map[string]interface{}{
		"id":         usuario.ID,
		"username":   usuario.Username,
		"created_at": usuario.CreatedAt.Format(time.RFC3339),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(response)
}

// SignIn trata o login do usuário
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var input model.SignInInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.WithError(err).Error("Não foi possível decodificar os dados de login")
		http.Error(w, "Formato de requisição inválido", http.StatusBadRequest)
		return
	}

	token, err := h.authService.SignIn(r.Context(), input)
	if err != nil {
		h.logger.WithError(err).Error("Não foi possível efetuar o login")
		http.Error(w, "Credenciais inválidas", http.StatusUnauthorized)
		return
	}

	response := map[string]string{
		"token": token,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
