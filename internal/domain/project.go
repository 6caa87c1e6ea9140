package domain

import (
	"fmt"
	"strings"

	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/uniqueness"
)

// Project representa uma obra/iniciativa com janela de execução.
// O nome é único entre todos os projetos (case-insensitive); as datas de
// início e fim são guardadas como texto, sem validação de calendário.
type Project struct {
	Code      string `json:"code"` // código do projeto, imutável
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// NewProject cria um projeto validando apenas o nome (não vazio e único).
// Uma falha de validação não registra nada no índice de nomes.
func NewProject(code, name, startDate, endDate string, names *uniqueness.Index) (*Project, error) {
	p := &Project{Code: code, StartDate: startDate, EndDate: endDate}
	if err := p.SetName(name, names); err != nil {
		return nil, err
	}
	return p, nil
}

// SetName valida e grava o nome com a mesma disciplina de unicidade do
// e-mail do trabalhador: duplicado falha sem alterar nada, mesmo valor
// (ignorando caixa) é no-op, troca válida libera o nome antigo e registra o
// novo.
func (p *Project) SetName(name string, names *uniqueness.Index) error {
	if name == "" {
		return apperror.NewValidationError(apperror.KindEmptyName,
			"O nome do projeto não pode ser vazio.")
	}
	if p.Name != "" && strings.EqualFold(p.Name, name) {
		return nil
	}
	if names.Contains(name) {
		return apperror.NewConflictError(apperror.KindDuplicateName,
			fmt.Sprintf("O nome de projeto '%s' já existe.", name))
	}
	if p.Name != "" {
		names.Release(p.Name)
	}
	names.Register(name)
	p.Name = name
	return nil
}

// SetStartDate altera a data de início, sem validação.
func (p *Project) SetStartDate(date string) {
	p.StartDate = date
}

// SetEndDate altera a data de finalização, sem validação.
func (p *Project) SetEndDate(date string) {
	p.EndDate = date
}

// Summary produz o resumo textual de várias linhas do projeto.
func (p *Project) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Código: %s\n", p.Code)
	fmt.Fprintf(&b, "Nome: %s\n", p.Name)
	fmt.Fprintf(&b, "Data de início: %s\n", p.StartDate)
	fmt.Fprintf(&b, "Data de finalização: %s\n", p.EndDate)
	return b.String()
}

// ProjectRegistration representa o payload de entrada para a criação de um
// projeto.
type ProjectRegistration struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// ProjectUpdate representa o payload de atualização parcial de um projeto.
type ProjectUpdate struct {
	Name      *string `json:"name,omitempty"`
	StartDate *string `json:"start_date,omitempty"`
	EndDate   *string `json:"end_date,omitempty"`
}
