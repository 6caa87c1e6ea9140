package projectservice

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

// ProjectRepository define o contrato que o Serviço de Projetos espera da
// camada de armazenamento.
type ProjectRepository interface {
	Save(ctx context.Context, project domain.Project) error
	FindByCode(ctx context.Context, code string) (domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	Mutate(ctx context.Context, code string, fn func(*domain.Project) error) (domain.Project, error)
}

// Service implementa a lógica de negócio do cadastro de projetos. O serviço
// é o dono do índice de unicidade de nomes de projeto.
type Service struct {
	mu     sync.Mutex
	repo   ProjectRepository
	names  *uniqueness.Index
	logger logger.Logger
}

// NewService cria e retorna uma nova instância do Serviço de Projetos.
func NewService(repo ProjectRepository, logger logger.Logger) *Service {
	return &Service{repo: repo, names: uniqueness.NewIndex(), logger: logger}
}

// CreateProject cria um novo projeto. A existência do código é verificada
// antes da construção; uma falha de validação não altera a coleção nem o
// índice de nomes. As datas de início e fim são aceitas como texto, sem
// validação de calendário.
func (s *Service) CreateProject(ctx context.Context, reg domain.ProjectRegistration) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("Iniciando criação de projeto no serviço.", map[string]interface{}{"code": reg.Code})

	if _, err := s.repo.FindByCode(ctx, reg.Code); err == nil {
		s.logger.Warn("Código de projeto já cadastrado.", map[string]interface{}{"code": reg.Code})
		return domain.Project{}, apperror.NewConflictError(apperror.KindDuplicateID,
			fmt.Sprintf("Já existe um projeto com o código '%s'.", reg.Code))
	} else {
		var notFoundErr *apperror.NotFoundError
		if !errors.As(err, &notFoundErr) {
			s.logger.Error("Falha ao verificar código no repositório.", err)
			return domain.Project{}, apperror.NewInternalError("Falha interna ao verificar o código.", err)
		}
	}

	project, err := domain.NewProject(reg.Code, reg.Name, reg.StartDate, reg.EndDate, s.names)
	if err != nil {
		s.logger.Warn("Falha na validação do projeto.", map[string]interface{}{
			"code":  reg.Code,
			"kind":  apperror.KindOf(err),
			"error": err.Error(),
		})
		return domain.Project{}, err
	}

	if err := s.repo.Save(ctx, *project); err != nil {
		// O nome já foi registrado pelo construtor; libera para não deixar o
		// índice inconsistente com a coleção.
		s.names.Release(project.Name)
		s.logger.Error("Falha ao gravar projeto no repositório.", err)
		return domain.Project{}, err
	}

	s.logger.Info("Projeto criado com sucesso.", map[string]interface{}{"code": project.Code})
	return *project, nil
}

// GetProject busca um projeto pelo código.
func (s *Service) GetProject(ctx context.Context, code string) (domain.Project, error) {
	project, err := s.repo.FindByCode(ctx, code)
	if err != nil {
		s.logger.Debug("Projeto não encontrado.", map[string]interface{}{"code": code})
		return domain.Project{}, err
	}
	return project, nil
}

// ListProjects retorna todos os projetos na ordem de inserção.
func (s *Service) ListProjects(ctx context.Context) ([]domain.Project, error) {
	projects, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Falha ao listar projetos.", err)
		return nil, apperror.NewInternalError("Falha interna ao listar projetos.", err)
	}
	return projects, nil
}

// ProjectsReport produz o bloco de texto com o resumo de cada projeto,
// emoldurado por cabeçalho e rodapé, na ordem de inserção.
func (s *Service) ProjectsReport(ctx context.Context) (string, error) {
	projects, err := s.ListProjects(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("--- LISTA DE PROJETOS ---\n")
	for i := range projects {
		b.WriteString("-------------------------\n")
		b.WriteString(projects[i].Summary())
	}
	b.WriteString("=========================\n")
	return b.String(), nil
}

// UpdateProject aplica uma atualização parcial. O nome passa pela validação
// de unicidade (liberar antigo / registrar novo / no-op se inalterado); as
// datas são gravadas sem validação.
func (s *Service) UpdateProject(ctx context.Context, code string, patch domain.ProjectUpdate) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.logger.Debug("Iniciando atualização de projeto no serviço.", map[string]interface{}{"code": code})

	project, err := s.repo.Mutate(ctx, code, func(p *domain.Project) error {
		if patch.Name != nil {
			if err := p.SetName(*patch.Name, s.names); err != nil {
				return err
			}
		}
		if patch.StartDate != nil {
			p.SetStartDate(*patch.StartDate)
		}
		if patch.EndDate != nil {
			p.SetEndDate(*patch.EndDate)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Falha na atualização do projeto.", map[string]interface{}{
			"code":  code,
			"kind":  apperror.KindOf(err),
			"error": err.Error(),
		})
		return domain.Project{}, err
	}

	s.logger.Info("Projeto atualizado com sucesso.", map[string]interface{}{"code": project.Code})
	return project, nil
}
