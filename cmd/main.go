package main

import (
	"context"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	// Pacotes de infraestrutura e utilitários
	"gocrew/config"
	"gocrew/internal/pkg/cache"
	"gocrew/internal/pkg/logger"
	"gocrew/internal/pkg/middleware"

	// Camadas para Injeção de Dependências
	"gocrew/internal/api/assignment"
	"gocrew/internal/api/project"
	"gocrew/internal/api/report"
	"gocrew/internal/api/router"
	"gocrew/internal/api/worker"
	"gocrew/internal/repository/assignmentrepo"
	"gocrew/internal/repository/projectrepo"
	"gocrew/internal/repository/workerrepo"
	"gocrew/internal/service/assignmentservice"
	"gocrew/internal/service/projectservice"
	"gocrew/internal/service/workerservice"
)

// @title GoCrew API
// @version 1.0
// @description Cadastro de trabalhadores, projetos e atribuições da Constructores Avance.
// @BasePath /v1
func main() {
	// 1. Configuração e Inicialização
	stdlog.Println("Inicializando serviço GoCrew...")

	// godotenv.Load() procura por um arquivo .env na raiz. A ausência não é
	// fatal: as variáveis podem estar no ambiente do sistema (ex: Docker).
	if err := godotenv.Load(); err != nil {
		stdlog.Println("Aviso: arquivo .env não encontrado. Carregando configs apenas do ambiente do sistema.")
	}

	cfg := config.LoadConfig()
	log := logger.NewLogger(cfg.LogLevel)
	log.Info("Configurações carregadas.", map[string]interface{}{"env": cfg.Environment})

	// 2. Recursos de Infraestrutura
	// O cadastro vive em memória; o único recurso externo é o Redis do rate
	// limiting.
	cacheClient := cache.NewRedisClient(cfg.RedisAddr)
	log.Info("Cliente Redis inicializado.", map[string]interface{}{"addr": cfg.RedisAddr})

	// 3. INJEÇÃO DE DEPENDÊNCIAS
	// Ordem: Repository -> Service -> Handler

	// A. Repositórios (armazenamento em memória, ordem de inserção)
	workerRepo := workerrepo.NewWorkerRepository(log)
	projectRepo := projectrepo.NewProjectRepository(log)
	assignmentRepo := assignmentrepo.NewAssignmentRepository(log)
	log.Debug("Repositórios inicializados.", nil)

	// B. Serviços (lógica de negócio; donos dos índices de unicidade)
	workerSvc := workerservice.NewService(workerRepo, log)
	projectSvc := projectservice.NewService(projectRepo, log)
	assignmentSvc := assignmentservice.NewService(assignmentRepo, workerRepo, projectRepo, log)
	log.Debug("Serviços inicializados.", nil)

	// C. Handlers (camada de apresentação)
	workerHandler := worker.NewHandler(workerSvc, log)
	projectHandler := project.NewHandler(projectSvc, log)
	assignmentHandler := assignment.NewHandler(assignmentSvc, log)
	reportHandler := report.NewHandler(workerSvc, projectSvc, assignmentSvc, log)
	log.Debug("Handlers inicializados.", nil)

	// 4. Roteador, middlewares e servidor
	r := router.NewRouter(workerHandler, projectHandler, assignmentHandler, reportHandler)
	rateLimited := middleware.RateLimiter(cacheClient, cfg.RateLimitMaxRequests, cfg.RateLimitPeriod)(r)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      rateLimited,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// 5. Execução e Graceful Shutdown
	go func() {
		log.Info("Servidor GoCrew ouvindo.", map[string]interface{}{"port": cfg.Port})
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Servidor falhou.", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Info("Sinal de encerramento recebido. Desligando servidor...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Desligamento do servidor forçado.", err)
	}

	log.Info("Servidor encerrado com sucesso.", nil)
}
