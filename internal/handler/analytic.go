package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

type AnalyticsHandler struct {
	analyticService *service.AnalyticService
	logger          *logrus.Logger
}

func NewAnalyticsHandler(analyticService *service.AnalyticService, logger *logrus.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticService: analyticService,
		logger:          logger,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/resumo", h.GetResumoDiario).Methods("GET")
	router.HandleFunc("/dolar", h.GetCotacaoDolar).Methods("GET")
}

// GetResumoDiario devolve a quantidade e o total dos pagamentos das últimas 24h
func (h *AnalyticsHandler) GetResumoDiario(w http.ResponseWriter, r *http.Request) {
	resumo, err := h.analyticService.GetResumoDiario(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("Erro ao calcular o resumo de pagamentos")
		http.Error(w, "Erro ao calcular o resumo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resumo); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar o resumo")
	}
}

// GetCotacaoDolar devolve a última cotação do dólar obtida no Banco Central
func (h *AnalyticsHandler) GetCotacaoDolar(w http.ResponseWriter, r *http.Request) {
	cotacao, err := h.analyticService.GetCotacaoDolar()
	if err != nil {
		h.logger.WithError(err).Error("Erro ao consultar a cotação do dólar")
		http.Error(w, "Erro ao consultar a cotação", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(cotacao); err != nil {
		h.logger.WithError(err).Error("Erro ao codificar a cotação")
	}
}
