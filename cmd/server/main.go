package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/victormontibeller/ApiPagamentos/internal/config"
	"github.com/victormontibeller/ApiPagamentos/internal/handler"
	"github.com/victormontibeller/ApiPagamentos/internal/repository"
	"github.com/victormontibeller/ApiPagamentos/internal/service"
)

func main() {
	logger := logrus.New()
	// Nível de log (Debug no desenvolvimento, Info em produção)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Carrega a configuração da aplicação
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("Erro ao carregar a configuração: %v", err)
	}

	// Conexão com o PostgreSQL
	db, err := sql.Open("postgres", fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	))
	if err != nil {
		logger.Fatalf("Erro ao conectar no banco de dados: %v", err)
	}
	defer db.Close()

	// Verifica a conexão com o banco
	if err := db.Ping(); err != nil {
		logger.Fatalf("Erro ao verificar a conexão com o banco: %v", err)
	}

	// Inicialização dos repositórios
	logger.Info("Inicializando os repositórios...")
	usuarioRepo := repository.NewUsuarioRepository(db, logger)
	enderecoRepo := repository.NewEnderecoRepository(db, logger)
	clienteRepo := repository.NewClienteRepository(db, logger)
	cartaoRepo := repository.NewCartaoRepository(db, logger)
	pagamentoRepo := repository.NewPagamentoRepository(db, logger)
	emailSender := service.NewEmailSender(logger)

	// Inicialização dos serviços
	logger.Info("Inicializando os serviços...")
	authService := service.NewAuthService(usuarioRepo, cfg.JWTSecret, cfg.TokenExpiry, logger)
	enderecoService := service.NewEnderecoService(enderecoRepo, logger)
	clienteService := service.NewClienteService(clienteRepo, enderecoRepo, usuarioRepo, logger)
	cartaoService := service.NewCartaoService(cartaoRepo, logger)
	pagamentoService := service.NewPagamentoService(
		clienteRepo,
		cartaoRepo,
		pagamentoRepo,
		emailSender,
		logger,
	)
	bcbClient := service.NewBCBClient(logger)
	analyticService := service.NewAnalyticService(pagamentoRepo, bcbClient, logger)

	// Inicialização dos handlers HTTP
	logger.Info("Inicializando os handlers da API...")
	authHandler := handler.NewAuthHandler(authService, logger)
	enderecoHandler := handler.NewEnderecoHandler(enderecoService, logger)
	clienteHandler := handler.NewClienteHandler(clienteService, logger)
	cartaoHandler := handler.NewCartaoHandler(cartaoService, logger)
	pagamentoHandler := handler.NewPagamentoHandler(pagamentoService, logger)
	analyticsHandler := handler.NewAnalyticsHandler(analyticService, logger)

	// Configuração do roteador
	router := mux.NewRouter()

	// 1. Rotas públicas de autenticação
	publicRouter := router.PathPrefix("/auth").Subrouter()
	authHandler.RegisterRoutes(publicRouter) // Registra /signup e /signin

	// 2. Rotas protegidas da API (exigem token JWT)
	apiRouter := router.PathPrefix("/api").Subrouter()
	apiRouter.Use(handler.AuthMiddleware(authService, logger))

	// Rotas de endereços
	enderecoRouter := apiRouter.PathPrefix("/enderecos").Subrouter()
	enderecoHandler.RegisterRoutes(enderecoRouter)

	// Rotas de clientes
	clienteRouter := apiRouter.PathPrefix("/clientes").Subrouter()
	clienteHandler.RegisterRoutes(clienteRouter)

	// Rotas de cartões
	cartaoRouter := apiRouter.PathPrefix("/cartoes").Subrouter()
	cartaoHandler.RegisterRoutes(cartaoRouter)

	// Rotas de pagamentos
	pagamentoRouter := apiRouter.PathPrefix("/pagamentos").Subrouter()
	pagamentoHandler.RegisterRoutes(pagamentoRouter)

	analyticsRouter := apiRouter.PathPrefix("/analytics").Subrouter()
	analyticsHandler.RegisterRoutes(analyticsRouter)

	// Agendador do resumo diário de pagamentos
	logger.Info("Configurando o agendador do resumo diário...")
	c := cron.New()
	_, err = c.AddFunc("0 6 * * *", func() {
		logger.Info("Gerando o resumo diário de pagamentos")
		if err := analyticService.LogResumoDiario(context.Background()); err != nil {
			logger.WithError(err).Error("Erro ao gerar o resumo diário")
		}
	})
	if err != nil {
		logger.Fatalf("Erro ao configurar o agendador: %v", err)
	}
	c.Start()

	// Configuração e inicialização do servidor HTTP
	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Infof("Servidor iniciado na porta :%s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Erro no servidor: %v", err)
		}
	}()

	// Aguarda os sinais para o graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Encerrando o servidor...")
	if err := server.Shutdown(context.Background()); err != nil {
		logger.Errorf("Erro ao encerrar o servidor: %v", err)
	}
	logger.Info("Servidor encerrado com sucesso")
}
