package assignmentrepo

import (
	"context"
	"fmt"
	"sync"

	"gocrew/internal/domain"
	"gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
)

// AssignmentRepository é o livro de atribuições: uma lista em memória onde
// as entradas só são anexadas, nunca removidas, e o par
// (trabalhador, projeto) nunca se repete. A ordem de inserção é preservada
// e é a ordem de todas as travessias.
type AssignmentRepository struct {
	mu          sync.RWMutex
	assignments []domain.Assignment
	logger      logger.Logger
}

// NewAssignmentRepository cria e retorna uma nova instância do livro de
// atribuições.
func NewAssignmentRepository(logger logger.Logger) *AssignmentRepository {
	return &AssignmentRepository{logger: logger}
}

// Save anexa uma nova atribuição. Falha com conflito se o par
// (WorkerID, ProjectCode) já existir no livro.
func (r *AssignmentRepository) Save(ctx context.Context, assignment domain.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.assignments {
		if r.assignments[i].WorkerID == assignment.WorkerID &&
			r.assignments[i].ProjectCode == assignment.ProjectCode {
			r.logger.Warn("Atribuição duplicada rejeitada.", map[string]interface{}{
				"worker_id":    assignment.WorkerID,
				"project_code": assignment.ProjectCode,
			})
			return errors.NewConflictError(errors.KindDuplicateAssignment,
				fmt.Sprintf("O trabalhador '%s' já está atribuído ao projeto '%s'.",
					assignment.WorkerID, assignment.ProjectCode))
		}
	}

	r.assignments = append(r.assignments, assignment)
	r.logger.Debug("Atribuição gravada no livro.", map[string]interface{}{
		"id":           assignment.ID,
		"worker_id":    assignment.WorkerID,
		"project_code": assignment.ProjectCode,
	})
	return nil
}

// Exists informa se o par (workerID, projectCode) já está no livro.
func (r *AssignmentRepository) Exists(ctx context.Context, workerID, projectCode string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.assignments {
		if r.assignments[i].WorkerID == workerID && r.assignments[i].ProjectCode == projectCode {
			return true, nil
		}
	}
	return false, nil
}

// FindByProject retorna, na ordem do livro, as atribuições do projeto.
func (r *AssignmentRepository) FindByProject(ctx context.Context, projectCode string) ([]domain.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Assignment
	for i := range r.assignments {
		if r.assignments[i].ProjectCode == projectCode {
			out = append(out, r.assignments[i])
		}
	}
	return out, nil
}

// FindByWorker retorna, na ordem do livro, as atribuições do trabalhador.
func (r *AssignmentRepository) FindByWorker(ctx context.Context, workerID string) ([]domain.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Assignment
	for i := range r.assignments {
		if r.assignments[i].WorkerID == workerID {
			out = append(out, r.assignments[i])
		}
	}
	return out, nil
}
