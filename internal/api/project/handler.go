package project

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

// ProjectService define o contrato que o Handler espera da camada de Serviço.
type ProjectService interface {
	CreateProject(ctx context.Context, reg domain.ProjectRegistration) (domain.Project, error)
	GetProject(ctx context.Context, code string) (domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
	UpdateProject(ctx context.Context, code string, patch domain.ProjectUpdate) (domain.Project, error)
}

// Handler agrupa todos os métodos de Handler de projetos.
type Handler struct {
	Service ProjectService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc ProjectService, log logger.Logger) *Handler {
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

// CollectionHandler despacha as requisições de /v1/projects por método.
func (h *Handler) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateProjectHandler(w, r)
	case http.MethodGet:
		h.ListProjectsHandler(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// ItemHandler despacha as requisições de /v1/projects/{code} por método.
func (h *Handler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetProjectByCodeHandler(w, r)
	case http.MethodPut:
		h.UpdateProjectHandler(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// CreateProjectHandler lida com a requisição POST /v1/projects.
// @Summary Cria um novo projeto
// @Description Cria um projeto validando que o nome não é vazio e é único (sem diferenciar maiúsculas). As datas são aceitas como texto.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body domain.ProjectRegistration true "Dados do projeto para criação"
// @Success 201 {object} domain.Project "Projeto criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Falha de validação"
// @Failure 409 {object} domain.ErrorResponse "Código ou nome já registrado"
// @Router /projects [post]
func (h *Handler) CreateProjectHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var reg domain.ProjectRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(apperror.KindInternal,
			"Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateProject(ctx, reg)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// ListProjectsHandler lida com a requisição GET /v1/projects.
// @Summary Lista todos os projetos
// @Tags projects
// @Produce json
// @Success 200 {array} domain.Project "Lista de projetos"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /projects [get]
func (h *Handler) ListProjectsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	projects, err := h.Service.ListProjects(ctx)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, projects, nil, http.StatusOK)
}

// GetProjectByCodeHandler lida com a requisição GET /v1/projects/{code}.
// @Summary Obtém um projeto pelo código
// @Tags projects
// @Produce json
// @Param code path string true "Código do projeto"
// @Success 200 {object} domain.Project "Projeto encontrado"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Router /projects/{code} [get]
func (h *Handler) GetProjectByCodeHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := strings.TrimPrefix(r.URL.Path, "/v1/projects/")

	project, err := h.Service.GetProject(ctx, code)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, project, nil, http.StatusOK)
}

// UpdateProjectHandler lida com a requisição PUT /v1/projects/{code}.
// @Summary Atualiza um projeto
// @Description Atualização parcial: o nome passa pela validação de unicidade; as datas são gravadas como texto.
// @Tags projects
// @Accept json
// @Produce json
// @Param code path string true "Código do projeto"
// @Param patch body domain.ProjectUpdate true "Campos a atualizar"
// @Success 200 {object} domain.Project "Projeto atualizado"
// @Failure 400 {object} domain.ErrorResponse "Falha de validação"
// @Failure 404 {object} domain.ErrorResponse "Projeto não encontrado"
// @Failure 409 {object} domain.ErrorResponse "Nome já registrado"
// @Router /projects/{code} [put]
func (h *Handler) UpdateProjectHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	code := strings.TrimPrefix(r.URL.Path, "/v1/projects/")

	var patch domain.ProjectUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(apperror.KindInternal,
			"Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateProject(ctx, code, patch)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}
