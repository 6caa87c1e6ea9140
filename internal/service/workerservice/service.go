package workerservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
	"gocrew/internal/pkg/uniqueness"
)

// WorkerRepository define o contrato que o Serviço de Trabalhadores espera
// da camada de armazenamento.
type WorkerRepository interface {
	Save(ctx context.Context, worker domain.Worker) error
	FindByID(ctx context.Context, id string) (domain.Worker, error)
	FindAll(ctx context.Context) ([]domain.Worker, error)
	Mutate(ctx context.Context, id string, fn func(*domain.Worker) error) (domain.Worker, error)
}

// Service implementa a lógica de negócio do cadastro de trabalhadores.
// O serviço é o dono do índice de unicidade de e-mails: instâncias
// independentes (e.g., em testes) nunca compartilham estado de unicidade.
// O mutex serializa o par checagem-de-unicidade + inserção, mantendo o
// invariante mesmo sob requisições concorrentes.
type Service struct {
	mu     sync.Mutex
	repo   WorkerRepository
	emails *uniqueness.Index
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Trabalhadores.
func NewService(repo WorkerRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, emails: uniqueness.NewIndex(), logger: logger}
}

// CreateWorker cria um novo trabalhador. A existência do carnet é verificada
// antes da construção; uma falha de validação não altera a coleção nem o
// índice de e-mails. Salary nulo no payload seleciona a forma com salário
// padrão (250000), sem checagem de faixa.
func (s *Service) CreateWorker(ctx context.Context, reg domain.WorkerRegistration) (domain.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("Iniciando criação de trabalhador no serviço.", map[string]interface{}{"id": reg.ID})

	if _, err := s.repo.FindByID(ctx, reg.ID); err == nil {
		s.logger.Warn("Carnet já cadastrado.", map[string]interface{}{"id": reg.ID})
		return domain.Worker{}, apperror.NewConflictError(apperror.KindDuplicateID,
			fmt.Sprintf("Já existe um trabalhador com o carnet '%s'.", reg.ID))
	} else {
		var notFoundErr *apperror.NotFoundError
		if !errors.As(err, &notFoundErr) {
			s.logger.Error("Falha ao verificar carnet no repositório.", err)
			return domain.Worker{}, apperror.NewInternalError("Falha interna ao verificar o carnet.", err)
		}
	}

	var (
		worker *domain.Worker
		err    error
	)
	if reg.Salary != nil {
		worker, err = domain.NewWorkerWithSalary(reg.ID, reg.Name, reg.BirthDate, reg.Category,
			*reg.Salary, reg.Address, reg.Phone, reg.Email, s.emails)
	} else {
		worker, err = domain.NewWorker(reg.ID, reg.Name, reg.BirthDate, reg.Category,
			reg.Address, reg.Phone, reg.Email, s.emails)
	}
	if err != nil {
		s.logger.Warn("Falha na validação do trabalhador.", map[string]interface{}{
			"id":    reg.ID,
			"kind":  apperror.KindOf(err),
			"error": err.Error(),
		})
		return domain.Worker{}, err
	}

	if err := s.repo.Save(ctx, *worker); err != nil {
		// O e-mail já foi registrado pelo construtor; libera para não deixar
		// o índice inconsistente com a coleção.
		s.emails.Release(worker.Email)
		s.logger.Error("Falha ao gravar trabalhador no repositório.", err)
		return domain.Worker{}, err
	}

	s.logger.Info("Trabalhador criado com sucesso.", map[string]interface{}{"id": worker.ID})
	return *worker, nil
}

// GetWorker busca um trabalhador pelo carnet.
func (s *Service) GetWorker(ctx context.Context, id string) (domain.Worker, error) {
	worker, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("Trabalhador não encontrado.", map[string]interface{}{"id": id})
		return domain.Worker{}, err
	}
	return worker, nil
}

// ListWorkers retorna todos os trabalhadores na ordem de inserção.
func (s *Service) ListWorkers(ctx context.Context) ([]domain.Worker, error) {
	workers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar trabalhadores.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar trabalhadores.", err)
	}
	return workers, nil
}

// WorkersReport produz o bloco de texto com o resumo de cada trabalhador,
// emoldurado por cabeçalho e rodapé, na ordem de inserção.
func (s *Service) WorkersReport(ctx context.Context) (string, error) {
	workers, err := s.ListWorkers(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("--- LISTA DE TRABALHADORES ---\n")
	for i := range workers {
		b.WriteString("------------------------------\n")
		b.WriteString(workers[i].Summary())
	}
	b.WriteString("==============================\n")
	return b.String(), nil
}

// UpdateWorker aplica uma atualização parcial. Cada campo presente passa
// pelo setter validado da entidade, na mesma ordem de validação da criação;
// a primeira falha interrompe a aplicação dos campos restantes.
func (s *Service) UpdateWorker(ctx context.Context, id string, patch domain.WorkerUpdate) (domain.Worker, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("Iniciando atualização de trabalhador no serviço.", map[string]interface{}{"id": id})

	worker, err := s.repo.Mutate(ctx, id, func(w *domain.Worker) error {
		if patch.Name != nil {
			w.SetName(*patch.Name)
		}
		if patch.BirthDate != nil {
			if err := w.SetBirthDate(*patch.BirthDate); err != nil {
				return err
			}
		}
		if patch.Category != nil {
			if err := w.SetCategory(*patch.Category); err != nil {
				return err
			}
		}
		if patch.Salary != nil {
			if err := w.SetSalary(*patch.Salary); err != nil {
				return err
			}
		}
		if patch.Address != nil {
			w.SetAddress(*patch.Address)
		}
		if patch.Phone != nil {
			w.SetPhone(*patch.Phone)
		}
		if patch.Email != nil {
			if err := w.SetEmail(*patch.Email, s.emails); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Falha na atualização do trabalhador.", map[string]interface{}{
			"id":    id,
			"kind":  apperror.KindOf(err),
			"error": err.Error(),
		})
		return domain.Worker{}, err
	}

	s.logger.Info("Trabalhador atualizado com sucesso.", map[string]interface{}{"id": worker.ID})
	return worker, nil
}
