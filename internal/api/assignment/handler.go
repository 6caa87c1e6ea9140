package assignment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
)

// AssignmentService define o contrato que o Handler espera da camada de Serviço.
type AssignmentService interface {
	Assign(ctx context.Context, workerID, projectCode string) (domain.Assignment, error)
	WorkersOfProject(ctx context.Context, projectCode string) ([]domain.ProjectWorker, error)
	ProjectsOfWorker(ctx context.Context, workerID string) ([]domain.WorkerProject, error)
}

// Handler agrupa todos os métodos de Handler de atribuições.
type Handler struct {
	Service AssignmentService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc AssignmentService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// handleServiceResponse processa erros de serviço e envia respostas padronizadas ao cliente.
func (h *Handler) handleServiceResponse(w http.ResponseWriter, r *http.Request, data interface{}, err error, successStatus int) {
	if err == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(successStatus)
		if data != nil {
			if jsonErr := json.NewEncoder(w).Encode(data); jsonErr != nil {
				h.Logger.Error("Falha ao codificar JSON de resposta", jsonErr)
			}
		}
		return
	}

	status, kind, category, message := apperror.MapToHTTPStatus(err)
	if status >= 500 {
		h.Logger.Error(fmt.Sprintf("Erro de Servidor: %s", category), err)
	} else {
		h.Logger.Debug(fmt.Sprintf("Requisição rejeitada com status %d. Kind: %s", status, kind),
			map[string]interface{}{"path": r.URL.Path})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(domain.ErrorResponse{
		Code:     status,
		Kind:     kind,
		Category: category,
		Message:  message,
	})
}

// AssignHandler lida com a requisição POST /v1/assignments.
// @Summary Atribui um trabalhador a um projeto
// @Description Cria o vínculo (trabalhador, projeto) carimbado com a data atual. O par não pode se repetir.
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body domain.AssignmentRequest true "Carnet do trabalhador e código do projeto"
// @Success 201 {object} domain.Assignment "Atribuição criada"
// @Failure 404 {object} domain.ErrorResponse "Trabalhador ou projeto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Par já atribuído"
// @Router /assignments [post]
func (h *Handler) AssignHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	var req domain.AssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(apperror.KindInternal,
			"Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	created, err := h.Service.Assign(ctx, req.WorkerID, req.ProjectCode)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// WorkersOfProjectHandler lida com a requisição GET /v1/assignments/projects/{code}.
// @Summary Lista os trabalhadores de um projeto
// @Description Percorre o livro de atribuições na ordem de inserção. Projeto sem atribuições retorna lista vazia.
// @Tags assignments
// @Produce json
// @Param code path string true "Código do projeto"
// @Success 200 {array} domain.ProjectWorker "Trabalhadores atribuídos"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Router /assignments/projects/{code} [get]
func (h *Handler) WorkersOfProjectHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	code := strings.TrimPrefix(r.URL.Path, "/v1/assignments/projects/")

	rows, err := h.Service.WorkersOfProject(ctx, code)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, rows, nil, http.StatusOK)
}

// ProjectsOfWorkerHandler lida com a requisição GET /v1/assignments/workers/{id}.
// @Summary Lista os projetos de um trabalhador
// @Tags assignments
// @Produce json
// @Param id path string true "Carnet do trabalhador"
// @Success 200 {array} domain.WorkerProject "Projetos do trabalhador"
// @Failure 404 {object} domain.ErrorResponse "Trabalhador não encontrado"
// @Router /assignments/workers/{id} [get]
func (h *Handler) ProjectsOfWorkerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/assignments/workers/")

	rows, err := h.Service.ProjectsOfWorker(ctx, id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, rows, nil, http.StatusOK)
}
