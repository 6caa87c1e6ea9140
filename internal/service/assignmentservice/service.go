package assignmentservice

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/dateutil"
	"gocrew/internal/pkg/logger"
)

// AssignmentLedger define o contrato que o Serviço de Atribuições espera do
// livro de atribuições.
type AssignmentLedger interface {
	Save(ctx context.Context, assignment domain.Assignment) error
	Exists(ctx context.Context, workerID, projectCode string) (bool, error)
	FindByProject(ctx context.Context, projectCode string) ([]domain.Assignment, error)
	FindByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error)
}

// WorkerFinder é a visão de leitura do repositório de trabalhadores de que
// este serviço precisa.
type WorkerFinder interface {
	FindByID(ctx context.Context, id string) (domain.Worker, error)
}

// ProjectFinder é a visão de leitura do repositório de projetos de que este
// serviço precisa.
type ProjectFinder interface {
	FindByCode(ctx context.Context, code string) (domain.Project, error)
}

// Service implementa a lógica de negócio das atribuições
// trabalhador-projeto, atravessando o livro na ordem de inserção.
type Service struct {
	ledger   AssignmentLedger
	workers  WorkerFinder
	projects ProjectFinder
	logger   logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Atribuições.
func NewService(ledger AssignmentLedger, workers WorkerFinder, projects ProjectFinder, logger logger.Logger) *Service {
	return &Service{ledger: ledger, workers: workers, projects: projects, logger: logger}
}

// Assign vincula um trabalhador a um projeto, carimbando a data atual.
// A verificação segue a ordem fixa: trabalhador existe, projeto existe, par
// ainda não atribuído.
func (s *Service) Assign(ctx context.Context, workerID, projectCode string) (domain.Assignment, error) {
	s.logger.Debug("Iniciando atribuição no serviço.", map[string]interface{}{
		"worker_id":    workerID,
		"project_code": projectCode,
	})

	if _, err := s.workers.FindByID(ctx, workerID); err != nil {
		s.logger.Warn("Trabalhador inexistente na atribuição.", map[string]interface{}{"worker_id": workerID})
		return domain.Assignment{}, err
	}
	if _, err := s.projects.FindByCode(ctx, projectCode); err != nil {
		s.logger.Warn("Projeto inexistente na atribuição.", map[string]interface{}{"project_code": projectCode})
		return domain.Assignment{}, err
	}

	exists, err := s.ledger.Exists(ctx, workerID, projectCode)
	if err != nil {
		s.logger.Error("Falha ao consultar o livro de atribuições.", err)
		return domain.Assignment{}, apperror.NewInternalError("Falha interna ao consultar atribuições.", err)
	}
	if exists {
		return domain.Assignment{}, apperror.NewConflictError(apperror.KindDuplicateAssignment,
			fmt.Sprintf("O trabalhador '%s' já está atribuído ao projeto '%s'.", workerID, projectCode))
	}

	assignment := domain.Assignment{
		ID:          uuid.New().String(),
		WorkerID:    workerID,
		ProjectCode: projectCode,
		AssignedAt:  dateutil.Today(),
	}
	if err := s.ledger.Save(ctx, assignment); err != nil {
		s.logger.Error("Falha ao gravar atribuição no livro.", err)
		return domain.Assignment{}, err
	}

	s.logger.Info("Atribuição realizada com sucesso.", map[string]interface{}{
		"id":           assignment.ID,
		"worker_id":    workerID,
		"project_code": projectCode,
	})
	return assignment, nil
}

// WorkersOfProject lista, na ordem do livro, os trabalhadores atribuídos ao
// projeto. Um projeto sem atribuições produz uma lista vazia, não um erro.
// Entradas cujo trabalhador não resolve mais são puladas silenciosamente
// (defensivo: não deveria ocorrer no modelo apenas-anexar).
func (s *Service) WorkersOfProject(ctx context.Context, projectCode string) ([]domain.ProjectWorker, error) {
	if _, err := s.projects.FindByCode(ctx, projectCode); err != nil {
		return nil, err
	}

	entries, err := s.ledger.FindByProject(ctx, projectCode)
	if err != nil {
		s.logger.Error("Falha ao percorrer o livro de atribuições.", err)
		return nil, apperror.NewInternalError("Falha interna ao consultar atribuições.", err)
	}

	rows := []domain.ProjectWorker{}
	for _, entry := range entries {
		worker, err := s.workers.FindByID(ctx, entry.WorkerID)
		if err != nil {
			s.logger.Warn("Atribuição aponta para trabalhador inexistente; pulando.", map[string]interface{}{
				"worker_id":    entry.WorkerID,
				"project_code": projectCode,
			})
			continue
		}
		rows = append(rows, domain.ProjectWorker{
			WorkerID:   worker.ID,
			Name:       worker.Name,
			Category:   worker.Category,
			AssignedAt: entry.AssignedAt,
		})
	}
	return rows, nil
}

// ProjectsOfWorker lista, na ordem do livro, os projetos aos quais o
// trabalhador está atribuído.
func (s *Service) ProjectsOfWorker(ctx context.Context, workerID string) ([]domain.WorkerProject, error) {
	if _, err := s.workers.FindByID(ctx, workerID); err != nil {
		return nil, err
	}

	entries, err := s.ledger.FindByWorker(ctx, workerID)
	if err != nil {
		s.logger.Error("Falha ao percorrer o livro de atribuições.", err)
		return nil, apperror.NewInternalError("Falha interna ao consultar atribuições.", err)
	}

	rows := []domain.WorkerProject{}
	for _, entry := range entries {
		project, err := s.projects.FindByCode(ctx, entry.ProjectCode)
		if err != nil {
			s.logger.Warn("Atribuição aponta para projeto inexistente; pulando.", map[string]interface{}{
				"worker_id":    workerID,
				"project_code": entry.ProjectCode,
			})
			continue
		}
		rows = append(rows, domain.WorkerProject{
			Code:       project.Code,
			Name:       project.Name,
			AssignedAt: entry.AssignedAt,
		})
	}
	return rows, nil
}

// ProjectWorkersReport produz o bloco de texto dos trabalhadores de um
// projeto, emoldurado por cabeçalho e rodapé.
func (s *Service) ProjectWorkersReport(ctx context.Context, projectCode string) (string, error) {
	rows, err := s.WorkersOfProject(ctx, projectCode)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- TRABALHADORES NO PROJETO [%s] ---\n", projectCode)
	for _, row := range rows {
		fmt.Fprintf(&b, "- %s | %s | Categoria: %s | Atribuído em: %s\n",
			row.WorkerID, row.Name, row.Category, row.AssignedAt)
	}
	b.WriteString("=============================================\n")
	return b.String(), nil
}

// WorkerProjectsReport produz o bloco de texto dos projetos de um
// trabalhador.
func (s *Service) WorkerProjectsReport(ctx context.Context, workerID string) (string, error) {
	rows, err := s.ProjectsOfWorker(ctx, workerID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "--- PROJETOS DO TRABALHADOR [%s] ---\n", workerID)
	for _, row := range rows {
		fmt.Fprintf(&b, "- %s | %s | Atribuído em: %s\n", row.Code, row.Name, row.AssignedAt)
	}
	b.WriteString("=============================================\n")
	return b.String(), nil
}
