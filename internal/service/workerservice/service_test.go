package workerservice_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/logger"
	"gocrew/internal/repository/workerrepo"
	"gocrew/internal/service/workerservice"
)

// MockWorkerRepository é uma implementação mock da interface WorkerRepository
type MockWorkerRepository struct {
	mock.Mock
}

func (m *MockWorkerRepository) Save(ctx context.Context, worker domain.Worker) error {
	args := m.Called(ctx, worker)
	return args.Error(0)
}

func (m *MockWorkerRepository) FindByID(ctx context.Context, id string) (domain.Worker, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) FindAll(ctx context.Context) ([]domain.Worker, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Worker), args.Error(1)
}

func (m *MockWorkerRepository) Mutate(ctx context.Context, id string, fn func(*domain.Worker) error) (domain.Worker, error) {
	args := m.Called(ctx, id)
	if err := args.Error(1); err != nil {
		return domain.Worker{}, err
	}
	w := args.Get(0).(domain.Worker)
	if err := fn(&w); err != nil {
		return domain.Worker{}, err
	}
	return w, nil
}

func notFound(id string) error {
	return apperror.NewNotFoundError(apperror.KindWorkerNotFound,
		fmt.Sprintf("Trabalhador com carnet '%s' não encontrado.", id))
}

func adultBirthDate() string {
	now := time.Now()
	return fmt.Sprintf("%04d-%02d-%02d", now.Year()-30, int(now.Month()), now.Day())
}

func underageBirthDate() string {
	tomorrow := time.Now().AddDate(0, 0, 1)
	return fmt.Sprintf("%04d-%02d-%02d", tomorrow.Year()-18, int(tomorrow.Month()), tomorrow.Day())
}

func registration(id, email string) domain.WorkerRegistration {
	return domain.WorkerRegistration{
		ID:        id,
		Name:      "Ana Campos",
		BirthDate: adultBirthDate(),
		Category:  "operario",
		Phone:     "8888-0000",
		Email:     email,
	}
}

// --- Testes para CreateWorker ---

func TestCreateWorker_Success(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, "W1").Return(domain.Worker{}, notFound("W1"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Worker")).Return(nil)

	worker, err := svc.CreateWorker(context.Background(), registration("W1", "ana@avance.cr"))

	assert.NoError(t, err)
	assert.Equal(t, "W1", worker.ID)
	assert.Equal(t, domain.CategoryOperator, worker.Category)
	assert.Equal(t, domain.DefaultSalary, worker.Salary) // forma sem salário
	assert.Equal(t, "San Jose", worker.Address)
	mockRepo.AssertExpectations(t)
}

func TestCreateWorker_Success_WithExplicitSalary(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, "W1").Return(domain.Worker{}, notFound("W1"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Worker")).Return(nil)

	reg := registration("W1", "ana@avance.cr")
	salary := 500000.0
	reg.Salary = &salary

	worker, err := svc.CreateWorker(context.Background(), reg)

	assert.NoError(t, err)
	assert.Equal(t, 500000.0, worker.Salary)
	mockRepo.AssertExpectations(t)
}

func TestCreateWorker_Fail_DuplicateID(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	existing := domain.Worker{ID: "W1", Name: "Outro"}
	mockRepo.On("FindByID", mock.Anything, "W1").Return(existing, nil)

	_, err := svc.CreateWorker(context.Background(), registration("W1", "ana@avance.cr"))

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateID, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	mockRepo.AssertExpectations(t)
}

func TestCreateWorker_Fail_Underage(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, "W1").Return(domain.Worker{}, notFound("W1"))

	reg := registration("W1", "ana@avance.cr")
	reg.BirthDate = underageBirthDate()

	_, err := svc.CreateWorker(context.Background(), reg)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindAgeBelowMinimum, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateWorker_WithSalary_Fail_OutOfRange(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, "W1").Return(domain.Worker{}, notFound("W1"))

	reg := registration("W1", "ana@avance.cr")
	salary := 249999.0
	reg.Salary = &salary

	_, err := svc.CreateWorker(context.Background(), reg)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindSalaryOutOfRange, apperror.KindOf(err))
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateWorker_Fail_DuplicateEmail(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, mock.AnythingOfType("string")).Return(domain.Worker{}, notFound("x"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Worker")).Return(nil).Once()

	_, err := svc.CreateWorker(context.Background(), registration("W1", "Ana@avance.cr"))
	assert.NoError(t, err)

	// Mesmo e-mail com caixa diferente, carnet distinto.
	_, err = svc.CreateWorker(context.Background(), registration("W2", "ana@AVANCE.cr"))

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateEmail, apperror.KindOf(err))
	mockRepo.AssertExpectations(t)
}

func TestCreateWorker_Fail_RepoCheckError(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	repoError := errors.New("storage unavailable")
	mockRepo.On("FindByID", mock.Anything, "W1").Return(domain.Worker{}, repoError)

	_, err := svc.CreateWorker(context.Background(), registration("W1", "ana@avance.cr"))

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
	mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCreateWorker_SaveFailureReleasesEmail(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, mock.AnythingOfType("string")).Return(domain.Worker{}, notFound("x"))
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Worker")).
		Return(errors.New("storage unavailable")).Once()
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("domain.Worker")).Return(nil).Once()

	_, err := svc.CreateWorker(context.Background(), registration("W1", "ana@avance.cr"))
	assert.Error(t, err)

	// A gravação falhou, então o e-mail deve ter voltado a ficar disponível.
	_, err = svc.CreateWorker(context.Background(), registration("W2", "ana@avance.cr"))

	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

// --- Testes para GetWorker e ListWorkers ---

func TestGetWorker_Fail_NotFound(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindByID", mock.Anything, "W9").Return(domain.Worker{}, notFound("W9"))

	_, err := svc.GetWorker(context.Background(), "W9")

	assert.Error(t, err)
	assert.Equal(t, apperror.KindWorkerNotFound, apperror.KindOf(err))
}

func TestListWorkers_Fail_RepoError(t *testing.T) {
	mockRepo := new(MockWorkerRepository)
	mockLogger := logger.NewLogger("error")

	svc := workerservice.NewService(mockRepo, mockLogger)

	mockRepo.On("FindAll", mock.Anything).Return([]domain.Worker{}, errors.New("storage unavailable"))

	_, err := svc.ListWorkers(context.Background())

	assert.Error(t, err)
	assert.IsType(t, &apperror.InternalError{}, err)
}

// --- Testes para UpdateWorker (repositório real em memória) ---

func newServiceWithRepo(t *testing.T) (*workerservice.Service, *workerrepo.WorkerRepository) {
	t.Helper()
	log := logger.NewLogger("error")
	repo := workerrepo.NewWorkerRepository(log)
	return workerservice.NewService(repo, log), repo
}

func TestUpdateWorker_Success(t *testing.T) {
	svc, _ := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateWorker(ctx, registration("W1", "ana@avance.cr"))
	assert.NoError(t, err)

	newName := "Ana C. Rodriguez"
	newSalary := 300000.0
	worker, err := svc.UpdateWorker(ctx, "W1", domain.WorkerUpdate{Name: &newName, Salary: &newSalary})

	assert.NoError(t, err)
	assert.Equal(t, "Ana C. Rodriguez", worker.Name)
	assert.Equal(t, 300000.0, worker.Salary)

	stored, err := svc.GetWorker(ctx, "W1")
	assert.NoError(t, err)
	assert.Equal(t, worker, stored)
}

func TestUpdateWorker_Fail_NotFound(t *testing.T) {
	svc, _ := newServiceWithRepo(t)

	newName := "Ninguém"
	_, err := svc.UpdateWorker(context.Background(), "W9", domain.WorkerUpdate{Name: &newName})

	assert.Error(t, err)
	assert.Equal(t, apperror.KindWorkerNotFound, apperror.KindOf(err))
}

func TestUpdateWorker_FirstFailureStopsRemainingFields(t *testing.T) {
	svc, _ := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateWorker(ctx, registration("W1", "ana@avance.cr"))
	assert.NoError(t, err)

	badSalary := 100.0
	newEmail := "nova@avance.cr"
	_, err = svc.UpdateWorker(ctx, "W1", domain.WorkerUpdate{Salary: &badSalary, Email: &newEmail})

	assert.Error(t, err)
	assert.Equal(t, apperror.KindSalaryOutOfRange, apperror.KindOf(err))

	// O e-mail vem depois do salário na ordem de aplicação e não foi tocado.
	stored, err := svc.GetWorker(ctx, "W1")
	assert.NoError(t, err)
	assert.Equal(t, "ana@avance.cr", stored.Email)
}

func TestUpdateWorker_Fail_EmailTakenByOther(t *testing.T) {
	svc, _ := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateWorker(ctx, registration("W1", "ana@avance.cr"))
	assert.NoError(t, err)
	_, err = svc.CreateWorker(ctx, registration("W2", "beto@avance.cr"))
	assert.NoError(t, err)

	taken := "ANA@avance.cr"
	_, err = svc.UpdateWorker(ctx, "W2", domain.WorkerUpdate{Email: &taken})

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateEmail, apperror.KindOf(err))
}

// --- Testes para WorkersReport ---

func TestWorkersReport_EmptyCollectionRendersOnlyFraming(t *testing.T) {
	svc, _ := newServiceWithRepo(t)

	report, err := svc.WorkersReport(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "--- LISTA DE TRABALHADORES ---\n==============================\n", report)
}

func TestWorkersReport_RendersRecordsInInsertionOrder(t *testing.T) {
	svc, _ := newServiceWithRepo(t)
	ctx := context.Background()

	_, err := svc.CreateWorker(ctx, registration("W1", "ana@avance.cr"))
	assert.NoError(t, err)
	reg2 := registration("W2", "beto@avance.cr")
	reg2.Name = "Beto Solis"
	_, err = svc.CreateWorker(ctx, reg2)
	assert.NoError(t, err)

	report, err := svc.WorkersReport(ctx)

	assert.NoError(t, err)
	assert.Contains(t, report, "--- LISTA DE TRABALHADORES ---\n")
	assert.Contains(t, report, "Carnet: W1")
	assert.Contains(t, report, "Carnet: W2")
	assert.Less(t, strings.Index(report, "Carnet: W1"), strings.Index(report, "Carnet: W2"))
	assert.Contains(t, report, "==============================\n")
}
