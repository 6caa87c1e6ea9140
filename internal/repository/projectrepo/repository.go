package projectrepo

import (
	"context"
	"fmt"
	"sync"

	"gocrew/internal/domain"
	"gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
)

// ProjectRepository guarda os projetos em memória, na ordem de inserção.
// Mesma disciplina do repositório de trabalhadores: sem persistência,
// varredura linear, mutex para o acesso concorrente do servidor HTTP.
type ProjectRepository struct {
	mu       sync.RWMutex
	projects []domain.Project
	logger   logger.Logger
}

// NewProjectRepository cria e retorna uma nova instância do Repositório de
// Projetos.
func NewProjectRepository(logger logger.Logger) *ProjectRepository {
	return &ProjectRepository{logger: logger}
}

// Save anexa um novo projeto à coleção. Falha com conflito se o código já
// estiver em uso.
func (r *ProjectRepository) Save(ctx context.Context, project domain.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].Code == project.Code {
			r.logger.Warn("Código de projeto já cadastrado.", map[string]interface{}{"code": project.Code})
			return errors.NewConflictError(errors.KindDuplicateID,
				fmt.Sprintf("Já existe um projeto com o código '%s'.", project.Code))
		}
	}

	r.projects = append(r.projects, project)
	r.logger.Debug("Projeto gravado no repositório.", map[string]interface{}{"code": project.Code})
	return nil
}

// FindByCode busca um projeto pelo código. Retorna uma cópia do registro.
func (r *ProjectRepository) FindByCode(ctx context.Context, code string) (domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.projects {
		if r.projects[i].Code == code {
			return r.projects[i], nil
		}
	}
	return domain.Project{}, errors.NewNotFoundError(errors.KindProjectNotFound,
		fmt.Sprintf("Projeto com código '%s' não encontrado.", code))
}

// FindAll retorna todos os projetos na ordem de inserção.
func (r *ProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Project, len(r.projects))
	copy(out, r.projects)
	return out, nil
}

// Mutate aplica fn sobre o projeto identificado por code, sob o lock de
// escrita.
func (r *ProjectRepository) Mutate(ctx context.Context, code string, fn func(*domain.Project) error) (domain.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.projects {
		if r.projects[i].Code == code {
			if err := fn(&r.projects[i]); err != nil {
				return domain.Project{}, err
			}
			return r.projects[i], nil
		}
	}
	return domain.Project{}, errors.NewNotFoundError(errors.KindProjectNotFound,
		fmt.Sprintf("Projeto com código '%s' não encontrado.", code))
}
