package workerrepo

import (
	"context"
	"fmt"
	"sync"

	"gocrew/internal/domain"
	"gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
)

// WorkerRepository guarda os trabalhadores em memória, na ordem de inserção.
// Não há persistência entre execuções do processo; as buscas são varreduras
// lineares, adequadas à escala de referência (dezenas a poucas centenas de
// registros). O mutex protege a fatia contra acesso concorrente vindo do
// servidor HTTP.
type WorkerRepository struct {
	mu      sync.RWMutex
	workers []domain.Worker
	logger  logger.Logger
}

// NewWorkerRepository cria e retorna uma nova instância do Repositório de
// Trabalhadores.
func NewWorkerRepository(logger logger.Logger) *WorkerRepository {
	return &WorkerRepository{logger: logger}
}

// Save anexa um novo trabalhador à coleção. Falha com conflito se o carnet
// já estiver em uso.
func (r *WorkerRepository) Save(ctx context.Context, worker domain.Worker) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.workers {
		if r.workers[i].ID == worker.ID {
			r.logger.Warn("Carnet já cadastrado.", map[string]interface{}{"id": worker.ID})
			return errors.NewConflictError(errors.KindDuplicateID,
				fmt.Sprintf("Já existe um trabalhador com o carnet '%s'.", worker.ID))
		}
	}

	r.workers = append(r.workers, worker)
	r.logger.Debug("Trabalhador gravado no repositório.", map[string]interface{}{"id": worker.ID})
	return nil
}

// FindByID busca um trabalhador pelo carnet. Retorna uma cópia do registro.
func (r *WorkerRepository) FindByID(ctx context.Context, id string) (domain.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.workers {
		if r.workers[i].ID == id {
			return r.workers[i], nil
		}
	}
	return domain.Worker{}, errors.NewNotFoundError(errors.KindWorkerNotFound,
		fmt.Sprintf("Trabalhador com carnet '%s' não encontrado.", id))
}

// FindAll retorna todos os trabalhadores na ordem de inserção.
func (r *WorkerRepository) FindAll(ctx context.Context) ([]domain.Worker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Worker, len(r.workers))
	copy(out, r.workers)
	return out, nil
}

// Mutate aplica fn sobre o registro identificado por id, sob o lock de
// escrita. Se fn retornar erro, o registro permanece como fn o deixou; a
// atomicidade campo a campo é responsabilidade dos setters da entidade.
func (r *WorkerRepository) Mutate(ctx context.Context, id string, fn func(*domain.Worker) error) (domain.Worker, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.workers {
		if r.workers[i].ID == id {
			if err := fn(&r.workers[i]); err != nil {
				return domain.Worker{}, err
			}
			return r.workers[i], nil
		}
	}
	return domain.Worker{}, errors.NewNotFoundError(errors.KindWorkerNotFound,
		fmt.Sprintf("Trabalhador com carnet '%s' não encontrado.", id))
}
