package router

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"gocrew/internal/api/assignment"
	"gocrew/internal/api/project"
	"gocrew/internal/api/report"
	"gocrew/internal/api/worker"
)

// NewRouter configura e retorna o roteador HTTP principal.
// Recebe os Handlers já inicializados por injeção de dependências.
func NewRouter(workerHandler *worker.Handler, projectHandler *project.Handler,
	assignmentHandler *assignment.Handler, reportHandler *report.Handler) http.Handler {

	// ServeMux padrão do net/http; o casamento mais específico vence, então
	// as rotas exatas convivem com os prefixos de item.
	mux := http.NewServeMux()

	// --- Health check ---
	mux.HandleFunc("/ping", PingHandler)

	// --- Trabalhadores (v1) ---
	mux.HandleFunc("/v1/workers", workerHandler.CollectionHandler)
	mux.HandleFunc("/v1/workers/", workerHandler.ItemHandler)

	// --- Projetos (v1) ---
	mux.HandleFunc("/v1/projects", projectHandler.CollectionHandler)
	mux.HandleFunc("/v1/projects/", projectHandler.ItemHandler)

	// --- Atribuições (v1) ---
	mux.HandleFunc("/v1/assignments", assignmentHandler.AssignHandler)
	mux.HandleFunc("/v1/assignments/projects/", assignmentHandler.WorkersOfProjectHandler)
	mux.HandleFunc("/v1/assignments/workers/", assignmentHandler.ProjectsOfWorkerHandler)

	// --- Relatórios em texto plano (v1) ---
	mux.HandleFunc("/v1/reports/workers", reportHandler.WorkersReportHandler)
	mux.HandleFunc("/v1/reports/projects", reportHandler.ProjectsReportHandler)
	mux.HandleFunc("/v1/reports/projects/", reportHandler.ProjectWorkersReportHandler)
	mux.HandleFunc("/v1/reports/workers/", reportHandler.WorkerProjectsReportHandler)

	// --- Documentação (Swagger UI) ---
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// PingHandler é uma função utilitária para o health check.
func PingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
