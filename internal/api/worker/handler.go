package worker

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

// WorkerService define o contrato que o Handler espera da camada de Serviço.
type WorkerService interface {
	CreateWorker(ctx context.Context, reg domain.WorkerRegistration) (domain.Worker, error)
	GetWorker(ctx context.Context, id string) (domain.Worker, error)
	ListWorkers(ctx context.Context) ([]domain.Worker, error)
	UpdateWorker(ctx context.Context, id string, patch domain.WorkerUpdate) (domain.Worker, error)
}

// Handler agrupa todos os métodos de Handler de trabalhadores.
type Handler struct {
	Service WorkerService
	Logger  logger.Logger
}

// NewHandler cria uma nova instância do Handler, injetando o Service e o Logger.
func NewHandler(svc WorkerService, log logger.Logger) *Handler {
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

// CollectionHandler despacha as requisições de /v1/workers por método.
func (h *Handler) CollectionHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.CreateWorkerHandler(w, r)
	case http.MethodGet:
		h.ListWorkersHandler(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// ItemHandler despacha as requisições de /v1/workers/{id} por método.
func (h *Handler) ItemHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.GetWorkerByIDHandler(w, r)
	case http.MethodPut:
		h.UpdateWorkerHandler(w, r)
	default:
		http.Error(w, "Método não permitido", http.StatusMethodNotAllowed)
	}
}

// CreateWorkerHandler lida com a requisição POST /v1/workers.
// @Summary Cria um novo trabalhador
// @Description Cria um trabalhador validando data de nascimento (idade mínima 18), categoria, faixa salarial e unicidade do e-mail. Salário omitido assume 250000.
// @Tags workers
// @Accept json
// @Produce json
// @Param worker body domain.WorkerRegistration true "Dados do trabalhador para criação"
// @Success 201 {object} domain.Worker "Trabalhador criado com sucesso"
// @Failure 400 {object} domain.ErrorResponse "Falha de validação"
// @Failure 409 {object} domain.ErrorResponse "Carnet ou e-mail já registrado"
// @Router /workers [post]
func (h *Handler) CreateWorkerHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var reg domain.WorkerRegistration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(apperror.KindInternal,
			"Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	created, err := h.Service.CreateWorker(ctx, reg)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, created, nil, http.StatusCreated)
}

// ListWorkersHandler lida com a requisição GET /v1/workers.
// @Summary Lista todos os trabalhadores
// @Description Retorna todos os trabalhadores na ordem de cadastro.
// @Tags workers
// @Produce json
// @Success 200 {array} domain.Worker "Lista de trabalhadores"
// @Failure 500 {object} domain.ErrorResponse "Erro interno do servidor"
// @Router /workers [get]
func (h *Handler) ListWorkersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	workers, err := h.Service.ListWorkers(ctx)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, workers, nil, http.StatusOK)
}

// GetWorkerByIDHandler lida com a requisição GET /v1/workers/{id}.
// @Summary Obtém um trabalhador pelo carnet
// @Tags workers
// @Produce json
// @Param id path string true "Carnet do trabalhador"
// @Success 200 {object} domain.Worker "Trabalhador encontrado"
// @Failure 404 {object} domain.ErrorResponse "Trabalhador não encontrado"
// @Router /workers/{id} [get]
func (h *Handler) GetWorkerByIDHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/workers/")

	worker, err := h.Service.GetWorker(ctx, id)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, worker, nil, http.StatusOK)
}

// UpdateWorkerHandler lida com a requisição PUT /v1/workers/{id}.
// @Summary Atualiza um trabalhador
// @Description Atualização parcial: apenas os campos presentes no payload são aplicados, cada um pelo validador correspondente.
// @Tags workers
// @Accept json
// @Produce json
// @Param id path string true "Carnet do trabalhador"
// @Param patch body domain.WorkerUpdate true "Campos a atualizar"
// @Success 200 {object} domain.Worker "Trabalhador atualizado"
// @Failure 400 {object} domain.ErrorResponse "Falha de validação"
// @Failure 404 {object} domain.ErrorResponse "Trabalhador não encontrado"
// @Failure 409 {object} domain.ErrorResponse "E-mail já registrado"
// @Router /workers/{id} [put]
func (h *Handler) UpdateWorkerHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := strings.TrimPrefix(r.URL.Path, "/v1/workers/")

	var patch domain.WorkerUpdate
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.handleServiceResponse(w, r, nil, apperror.NewValidationError(apperror.KindInternal,
			"Payload inválido. Verifique o formato JSON."), http.StatusBadRequest)
		return
	}

	updated, err := h.Service.UpdateWorker(ctx, id, patch)
	if err != nil {
		h.handleServiceResponse(w, r, nil, err, http.StatusOK)
		return
	}

	h.handleServiceResponse(w, r, updated, nil, http.StatusOK)
}
