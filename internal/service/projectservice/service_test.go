package projectservice_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
	"gocrew/internal/repository/projectrepo"
	"gocrew/internal/service/projectservice"
)

// MockProjectRepository é uma implementação mock da interface ProjectRepository
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Save(ctx context.Context, project domain.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByCode(ctx context.Context, code string) (domain.Project, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(domain.Project), args.Error(1)
}

func (m *MockProjectRepository) FindAll(ctx context.Context) ([]domain.Project, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Project), args.Error(1)
}

func (m *MockProjectRepository) Mutate(ctx context.Context, code string, fn func(*domain.Project) error) (domain.Project, error) {
	args := m.Called(ctx, code)
	if err := args.Error(1); err != nil {
		return domain.Project{}, err
	}
	p := args.Get(0).(domain.Project)
	if err := fn(&p); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}

func notFound(code string) error {
	return apperror.NewNotFoundError(apperror.KindProjectNotFound,
		fmt.Sprintf("Projeto com código '%s' não encontrado.", code))
}

func registration(code, name string) domain.ProjectRegistration {
	return domain.ProjectRegistration{
		Code:      code,
		Name:      name,
		StartDate: "2026-01-01",
		EndDate:   "2026-12-31",
	}
}

// --- Testes para CreateProject ---

func TestCreateProject_Success(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockLogger := logger.NewLogger("error")

	svc := projectservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByCode", mock.Anything, "P1").Return(domain.Project{}, notFound("P1"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil)

	project, err := svc.CreateProject(context.Background(), registration("P1", "Ponte Norte"))

	assert.NoError(t, err)
	assert.Equal(t, "P1", project.Code)
	assert.Equal(t, "Ponte Norte", project.Name)
	mockRepo.AssertExpectations(t)
}

func TestCreateProject_Fail_DuplicateCode(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockLogger := logger.NewLogger("error")

	svc := projectservice.NewService(mockRepo, mockLogger)

	existing := domain.Project{Code: "P1", Name: "Outra Obra"}
	mockRepo.On("FindByCode", mock.Anything, "P1").Return(existing, nil)

	_, err := svc.CreateProject(context.Background(), registration("P1", "Ponte Norte"))

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateID, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateProject_Fail_EmptyName(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockLogger := logger.NewLogger("error")

	svc := projectservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByCode", mock.Anything, "P1").Return(domain.Project{}, notFound("P1"))

	_, err := svc.CreateProject(context.Background(), registration("P1", ""))

	assert.Error(t, err)
	assert.Equal(t, apperror.KindEmptyName, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateProject_Fail_DuplicateNameCaseInsensitive(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockLogger := logger.NewLogger("error")

	svc := projectservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByCode", mock.Anything, mock.AnythingOfType("string")).Return(domain.Project{}, notFound("x"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	_, err := svc.CreateProject(context.Background(), registration("P1", "Ponte Norte"))
	assert.NoError(t, err)

	_, err = svc.CreateProject(context.Background(), registration("P2", "PONTE norte"))

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateName, apperror.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestCreateProject_SaveFailureReleasesName(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockLogger := logger.NewLogger("error")

	svc := projectservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByCode", mock.Anything, mock.AnythingOfType("string")).Return(domain.Project{}, notFound("x"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Project")).
		Return(errors.New("storage unavailable")).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Project")).Return(nil).Once()

	_, err := svc.CreateProject(context.Background(), registration("P1", "Ponte Norte"))
	assert.Error(t, err)

	// A gravação falhou, então o nome deve ter voltado a ficar disponível.
	_, err = svc.CreateProject(context.Background(), registration("P2", "Ponte Norte"))

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// --- Testes para UpdateProject (repositório real em memória) ---

func newServiceWithRepo(t *testing.T) *projectservice.Service {
	t.Helper()
	log := logger.NewLogger("error")
	return projectservice.NewService(projectrepo.NewProjectRepository(log), log)
}

func TestUpdateProject_Success(t *testing.T) {
	svc := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, registration("P1", "Ponte Norte"))
	assert.NoError(t, err)

	newName := "Ponte Norte II"
	newEnd := "2027-06-30"
	project, err := svc.UpdateProject(ctx, "P1", domain.ProjectUpdate{Name: &newName, EndDate: &newEnd})

	assert.NoError(t, err)
	assert.Equal(t, "Ponte Norte II", project.Name)
	assert.Equal(t, "2027-06-30", project.EndDate)

	// O nome antigo ficou livre para outro projeto.
	_, err = svc.CreateProject(ctx, registration("P2", "Ponte Norte"))
	assert.NoError(t, err)
}

func TestUpdateProject_SameNameIsNoOp(t *testing.T) {
	svc := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, registration("P1", "Ponte Norte"))
	assert.NoError(t, err)

	sameName := "ponte norte"
	project, err := svc.UpdateProject(ctx, "P1", domain.ProjectUpdate{Name: &sameName})

	assert.NoError(t, err)
	assert.Equal(t, "Ponte Norte", project.Name) // forma original preservada

	// O no-op não liberou a vaga do nome.
	_, err = svc.CreateProject(ctx, registration("P2", "Ponte Norte"))
	assert.Equal(t, apperror.KindDuplicateName, apperror.KindOf(err))
}

func TestUpdateProject_Fail_NotFound(t *testing.T) {
	svc := newServiceWithRepo(t)

	newName := "Nada"
	_, err := svc.UpdateProject(context.Background(), "P9", domain.ProjectUpdate{Name: &newName})

	assert.Error(t, err)
	assert.Equal(t, apperror.KindProjectNotFound, apperror.KindOf(err))
}

// --- Testes para ProjectsReport ---

func TestProjectsReport_EmptyCollectionRendersOnlyFraming(t *testing.T) {
	svc := newServiceWithRepo(t)

	report, err := svc.ProjectsReport(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "--- LISTA DE PROJETOS ---\n=========================\n", report)
}

func TestProjectsReport_RendersRecords(t *testing.T) {
	svc := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, registration("P1", "Ponte Norte"))
	assert.NoError(t, err)

	report, err := svc.ProjectsReport(ctx)

	assert.NoError(t, err)
	assert.Contains(t, report, "--- LISTA DE PROJETOS ---\n")
	assert.Contains(t, report, "-------------------------\n")
	assert.Contains(t, report, "Código: P1")
	assert.Contains(t, report, "Nome: Ponte Norte")
	assert.Contains(t, report, "=========================\n")
}
