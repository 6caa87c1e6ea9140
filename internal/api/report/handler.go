package report

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
)

// WorkerReporter é a visão de relatório do serviço de trabalhadores.
type WorkerReporter interface {
	WorkersReport(ctx context.Context) (string, error)
}

// ProjectReporter é a visão de relatório do serviço de projetos.
type ProjectReporter interface {
	ProjectsReport(ctx context.Context) (string, error)
}

// AssignmentReporter é a visão de relatório do serviço de atribuições.
type AssignmentReporter interface {
	ProjectWorkersReport(ctx context.Context, projectCode string) (string, error)
	WorkerProjectsReport(ctx context.Context, workerID string) (string, error)
}

// Handler serve os relatórios em texto plano: os blocos emoldurados por
// cabeçalho e rodapé que o shell interativo original imprimia no console.
type Handler struct {
	Workers     WorkerReporter
	Projects    ProjectReporter
	Assignments AssignmentReporter
	Logger      logger.Logger
}

// NewHandler cria uma nova instância do Handler de relatórios.
func NewHandler(workers WorkerReporter, projects ProjectReporter, assignments AssignmentReporter, log logger.Logger) *Handler {
	return &Handler{Workers: workers, Projects: projects, Assignments: assignments, Logger: log}
}

// writeReport envia o bloco de texto ou o erro traduzido.
func (h *Handler) writeReport(w http.ResponseWriter, r *http.Request, report string, err error) {
	if err != nil {
		status, kind, category, message := apperror.MapToHTTPStatus(err)
		h.Logger.Debug("Relatório rejeitado.", map[string]interface{}{"path": r.URL.Path, "kind": kind})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(domain.ErrorResponse{
			Code:     status,
			Kind:     kind,
			Category: category,
			Message:  message,
		})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}

// WorkersReportHandler lida com GET /v1/reports/workers.
// @Summary Relatório textual de trabalhadores
// @Tags reports
// @Produce plain
// @Success 200 {string} string "Bloco de texto com todos os trabalhadores"
// @Router /reports/workers [get]
func (h *Handler) WorkersReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	report, err := h.Workers.WorkersReport(r.Context())
	h.writeReport(w, r, report, err)
}

// ProjectsReportHandler lida com GET /v1/reports/projects.
// @Summary Relatório textual de projetos
// @Tags reports
// @Produce plain
// @Success 200 {string} string "Bloco de texto com todos os projetos"
// @Router /reports/projects [get]
func (h *Handler) ProjectsReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}
	report, err := h.Projects.ProjectsReport(r.Context())
	h.writeReport(w, r, report, err)
}

// ProjectWorkersReportHandler lida com GET /v1/reports/projects/{code}/workers.
// @Summary Relatório textual dos trabalhadores de um projeto
// @Tags reports
// @Produce plain
// @Param code path string true "Código do projeto"
// @Success 200 {string} string "Bloco de texto com os trabalhadores do projeto"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Router /reports/projects/{code}/workers [get]
func (h *Handler) ProjectWorkersReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/reports/projects/")
	code, ok := strings.CutSuffix(rest, "/workers")
	if !ok || code == "" {
		http.NotFound(w, r)
		return
	}

	report, err := h.Assignments.ProjectWorkersReport(r.Context(), code)
	h.writeReport(w, r, report, err)
}

// WorkerProjectsReportHandler lida com GET /v1/reports/workers/{id}/projects.
// @Summary Relatório textual dos projetos de um trabalhador
// @Tags reports
// @Produce plain
// @Param id path string true "Carnet do trabalhador"
// @Success 200 {string} string "Bloco de texto com os projetos do trabalhador"
// @Failure 404 {object} domain.ErrorResponse "Trabalhador não encontrado"
// @Router /reports/workers/{id}/projects [get]
func (h *Handler) WorkerProjectsReportHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/v1/reports/workers/")
	id, ok := strings.CutSuffix(rest, "/projects")
	if !ok || id == "" {
		http.NotFound(w, r)
		return
	}

	report, err := h.Assignments.WorkerProjectsReport(r.Context(), id)
	h.writeReport(w, r, report, err)
}
