package uniqueness_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gocrew/internal/pkg/uniqueness"
)

func TestIndex_RegisterAndContains_CaseInsensitive(t *testing.T) {
	idx := uniqueness.NewIndex()

	idx.Register("Ana@Avance.cr")

	assert.True(t, idx.Contains("ana@avance.cr"))
	assert.True(t, idx.Contains("ANA@AVANCE.CR"))
	assert.False(t, idx.Contains("outro@avance.cr"))
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_Release(t *testing.T) {
	idx := uniqueness.NewIndex()
	idx.Register("ponte rio grande")

	idx.Release("Ponte Rio Grande")

	assert.False(t, idx.Contains("ponte rio grande"))
	assert.Equal(t, 0, idx.Len())
}

func TestIndex_Release_AbsentKeyIsNoOp(t *testing.T) {
	idx := uniqueness.NewIndex()
	idx.Register("a@x.com")

	idx.Release("b@x.com")

	assert.True(t, idx.Contains("a@x.com"))
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_Release_RemovesOnlyFirstMatch(t *testing.T) {
	// Register não deduplica: a disciplina é do chamador. Release tira só a
	// primeira ocorrência.
	idx := uniqueness.NewIndex()
	idx.Register("a@x.com")
	idx.Register("A@X.COM")

	idx.Release("a@x.com")

	assert.True(t, idx.Contains("a@x.com"))
	assert.Equal(t, 1, idx.Len())
}

func TestIndex_IndependentInstances(t *testing.T) {
	// Dois índices nunca compartilham estado: unicidade é por instância.
	emails := uniqueness.NewIndex()
	names := uniqueness.NewIndex()

	emails.Register("ana@avance.cr")

	assert.False(t, names.Contains("ana@avance.cr"))
}
