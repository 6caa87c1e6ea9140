package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gocrew/internal/domain"
	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/uniqueness"
)

// --- Criação ---

func TestNewProject_Success(t *testing.T) {
	names := uniqueness.NewIndex()

	p, err := domain.NewProject("P1", "Ponte Norte", "2026-01-01", "2026-12-31", names)

	assert.NoError(t, err)
	assert.Equal(t, "P1", p.Code)
	assert.Equal(t, "Ponte Norte", p.Name)
	assert.Equal(t, 1, names.Len())
}

func TestNewProject_DatesNotValidated(t *testing.T) {
	names := uniqueness.NewIndex()

	p, err := domain.NewProject("P1", "Ponte Norte", "quando der", "", names)

	assert.NoError(t, err)
	assert.Equal(t, "quando der", p.StartDate)
	assert.Equal(t, "", p.EndDate)
}

func TestNewProject_Fail_EmptyName(t *testing.T) {
	names := uniqueness.NewIndex()

	_, err := domain.NewProject("P1", "", "2026-01-01", "2026-12-31", names)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindEmptyName, apperror.KindOf(err))
	assert.Equal(t, 0, names.Len())
}

func TestNewProject_Fail_DuplicateNameCaseInsensitive(t *testing.T) {
	names := uniqueness.NewIndex()
	_, err := domain.NewProject("P1", "Ponte Norte", "", "", names)
	assert.NoError(t, err)

	_, err = domain.NewProject("P2", "PONTE NORTE", "", "", names)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateName, apperror.KindOf(err))
	assert.Equal(t, 1, names.Len())
}

// --- Setters ---

func TestSetName_SameValueIsNoOp(t *testing.T) {
	names := uniqueness.NewIndex()
	p, err := domain.NewProject("P1", "Ponte Norte", "", "", names)
	assert.NoError(t, err)

	err = p.SetName("ponte norte", names)

	assert.NoError(t, err)
	assert.Equal(t, "Ponte Norte", p.Name)
	assert.Equal(t, 1, names.Len())
}

func TestSetName_ChangeReleasesOldValue(t *testing.T) {
	names := uniqueness.NewIndex()
	p, err := domain.NewProject("P1", "Ponte Norte", "", "", names)
	assert.NoError(t, err)

	err = p.SetName("Ponte Sul", names)
	assert.NoError(t, err)

	_, err = domain.NewProject("P2", "Ponte Norte", "", "", names)
	assert.NoError(t, err) // nome antigo voltou a ficar disponível
}

func TestSetName_Fail_TakenKeepsCurrentValue(t *testing.T) {
	names := uniqueness.NewIndex()
	p, err := domain.NewProject("P1", "Ponte Norte", "", "", names)
	assert.NoError(t, err)
	_, err = domain.NewProject("P2", "Ponte Sul", "", "", names)
	assert.NoError(t, err)

	err = p.SetName("Ponte Sul", names)

	assert.Error(t, err)
	assert.Equal(t, apperror.KindDuplicateName, apperror.KindOf(err))
	assert.Equal(t, "Ponte Norte", p.Name)
	assert.True(t, names.Contains("Ponte Norte"))
}

// --- Projeção textual ---

func TestProjectSummary_RendersAllFields(t *testing.T) {
	names := uniqueness.NewIndex()
	p, err := domain.NewProject("P1", "Ponte Norte", "2026-01-01", "2026-12-31", names)
	assert.NoError(t, err)

	s := p.Summary()

	assert.Contains(t, s, "Código: P1")
	assert.Contains(t, s, "Nome: Ponte Norte")
	assert.Contains(t, s, "Data de início: 2026-01-01")
	assert.Contains(t, s, "Data de finalização: 2026-12-31")
}
