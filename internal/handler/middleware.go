package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

// AuthMiddleware verifica a presença e a validade do token JWT no cabeçalho Authorization
func AuthMiddleware(authService *service.AuthService, logger *logrus.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Error("Cabeçalho Authorization ausente")
				http.Error(w, "O cabeçalho Authorization é obrigatório", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				logger.Error("Formato do cabeçalho Authorization inválido")
				http.Error(w, "Formato do cabeçalho Authorization inválido", http.StatusUnauthorized)
				return
			}

			usuarioID, err := authService.ParseToken(parts[1])
			if err != nil {
				logger.WithError(err).Error("Token inválido")
				http.Error(w, "Token inválido", http.StatusUnauthorized)
				return
			}

			// Propaga o id do usuário autenticado no contexto
			ctx := context.WithValue(r.Context(), "usuarioID", usuarioID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
