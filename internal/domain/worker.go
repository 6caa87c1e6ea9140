package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	apperror "gocrew/internal/errors"
	"gocrew/internal/pkg/dateutil"
	"gocrew/internal/pkg/uniqueness"
)

// Regras de negócio do cadastro de trabalhadores.
const (
	MinSalary      = 250000.0
	MaxSalary      = 500000.0
	DefaultSalary  = 250000.0 // aplicado quando o salário é omitido na criação
	DefaultAddress = "San Jose"
	MinHiringAge   = 18
)

// Category é o tipo string para a categoria ocupacional do trabalhador.
type Category string

// As três categorias reconhecidas pelo sistema.
const (
	CategoryAdministrator Category = "Administrador"
	CategoryOperator      Category = "Operario"
	CategoryLaborer       Category = "Peon"
)

// ParseCategory converte o texto informado pelo usuário em uma Category,
// comparando sem diferenciar maiúsculas de minúsculas.
func ParseCategory(text string) (Category, error) {
	switch strings.ToLower(text) {
	case "administrador":
		return CategoryAdministrator, nil
	case "operario":
		return CategoryOperator, nil
	case "peon":
		return CategoryLaborer, nil
	}
	return "", apperror.NewValidationError(apperror.KindInvalidCategory,
		"Categoria inválida. Use: Administrador, Operario ou Peon.")
}

// Worker representa a entidade do trabalhador no sistema.
// Os campos validados (BirthDate, Category, Salary, Email) só devem ser
// alterados pelos setters correspondentes; o construtor executa todas as
// validações e o registro de unicidade do e-mail.
type Worker struct {
	ID        string   `json:"id"` // número de carnet, imutável
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date"` // "YYYY-MM-DD"
	Category  Category `json:"category"`
	Salary    float64  `json:"salary"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
}

// NewWorker cria um trabalhador com salário padrão (250000). A validação
// segue a ordem fixa: data de nascimento, categoria, e-mail. A primeira
// falha aborta a criação sem registrar nada no índice de e-mails.
func NewWorker(id, name, birthDate, categoryText, address, phone, email string, emails *uniqueness.Index) (*Worker, error) {
	w := &Worker{ID: id, Name: name, Salary: DefaultSalary, Phone: phone}
	w.SetAddress(address)
	if err := w.SetBirthDate(birthDate); err != nil {
		return nil, err
	}
	if err := w.SetCategory(categoryText); err != nil {
		return nil, err
	}
	if err := w.SetEmail(email, emails); err != nil {
		return nil, err
	}
	return w, nil
}

// NewWorkerWithSalary cria um trabalhador com salário explícito. Mesma ordem
// de validação do NewWorker, com a checagem de faixa salarial antes do e-mail.
func NewWorkerWithSalary(id, name, birthDate, categoryText string, salary float64, address, phone, email string, emails *uniqueness.Index) (*Worker, error) {
	w := &Worker{ID: id, Name: name, Salary: DefaultSalary, Phone: phone}
	w.SetAddress(address)
	if err := w.SetBirthDate(birthDate); err != nil {
		return nil, err
	}
	if err := w.SetCategory(categoryText); err != nil {
		return nil, err
	}
	if err := w.SetSalary(salary); err != nil {
		return nil, err
	}
	if err := w.SetEmail(email, emails); err != nil {
		return nil, err
	}
	return w, nil
}

// SetName altera o nome, sem validação.
func (w *Worker) SetName(name string) {
	w.Name = name
}

// SetBirthDate valida e grava a data de nascimento. A idade é sempre
// calculada contra a data atual, inclusive em revalidações posteriores.
func (w *Worker) SetBirthDate(date string) error {
	y, m, d, err := dateutil.ParseDate(date)
	if err != nil {
		return apperror.NewValidationError(apperror.KindMalformedDate,
			"Data de nascimento inválida (use YYYY-MM-DD).")
	}
	if dateutil.AgeInYears(y, m, d, time.Now()) < MinHiringAge {
		return apperror.NewValidationError(apperror.KindAgeBelowMinimum,
			"Não é permitido contratar menores de idade.")
	}
	w.BirthDate = date
	return nil
}

// SetCategory valida e grava a categoria a partir do texto informado.
func (w *Worker) SetCategory(text string) error {
	c, err := ParseCategory(text)
	if err != nil {
		return err
	}
	w.Category = c
	return nil
}

// SetSalary valida a faixa salarial (limites inclusivos) e grava o valor.
func (w *Worker) SetSalary(salary float64) error {
	if salary < MinSalary || salary > MaxSalary {
		return apperror.NewValidationError(apperror.KindSalaryOutOfRange,
			fmt.Sprintf("O salário deve estar entre %.0f e %.0f.", MinSalary, MaxSalary))
	}
	w.Salary = salary
	return nil
}

// SetAddress grava o endereço; vazio é substituído pelo padrão "San Jose".
func (w *Worker) SetAddress(address string) {
	if address == "" {
		address = DefaultAddress
	}
	w.Address = address
}

// SetPhone altera o telefone, sem validação.
func (w *Worker) SetPhone(phone string) {
	w.Phone = phone
}

// SetEmail valida e grava o e-mail, mantendo o índice de unicidade coerente:
// trocar para um valor já usado por outro trabalhador falha sem alterar nada;
// trocar para o mesmo valor (ignorando caixa) é um no-op que não libera a
// vaga; uma troca válida libera o valor antigo e registra o novo.
func (w *Worker) SetEmail(email string, emails *uniqueness.Index) error {
	if email == "" {
		return apperror.NewValidationError(apperror.KindEmptyEmail,
			"O e-mail não pode ser vazio.")
	}
	if w.Email != "" && strings.EqualFold(w.Email, email) {
		return nil
	}
	if emails.Contains(email) {
		return apperror.NewConflictError(apperror.KindDuplicateEmail,
			fmt.Sprintf("O e-mail '%s' já está registrado.", email))
	}
	if w.Email != "" {
		emails.Release(w.Email)
	}
	emails.Register(email)
	w.Email = email
	return nil
}

// Summary produz o resumo textual de várias linhas do trabalhador.
// Projeção pura, sem efeitos colaterais; a idade é recalculada contra a data
// atual e impressa como "?" quando a data guardada não é parseável.
func (w *Worker) Summary() string {
	age := "?"
	if y, m, d, err := dateutil.ParseDate(w.BirthDate); err == nil {
		age = strconv.Itoa(dateutil.AgeInYears(y, m, d, time.Now()))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Carnet: %s\n", w.ID)
	fmt.Fprintf(&b, "Nome: %s\n", w.Name)
	fmt.Fprintf(&b, "Data de nascimento: %s (idade aprox: %s)\n", w.BirthDate, age)
	fmt.Fprintf(&b, "Categoria: %s\n", w.Category)
	fmt.Fprintf(&b, "Salário: %s\n", strconv.FormatFloat(w.Salary, 'f', -1, 64))
	fmt.Fprintf(&b, "Endereço: %s\n", w.Address)
	fmt.Fprintf(&b, "Telefone: %s\n", w.Phone)
	fmt.Fprintf(&b, "E-mail: %s\n", w.Email)
	return b.String()
}

// WorkerRegistration representa o payload de entrada para a criação de um
// trabalhador. Salary nulo seleciona a forma com salário padrão.
type WorkerRegistration struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date"`
	Category  string   `json:"category"`
	Salary    *float64 `json:"salary,omitempty"`
	Address   string   `json:"address"`
	Phone     string   `json:"phone"`
	Email     string   `json:"email"`
}

// WorkerUpdate representa o payload de atualização parcial de um trabalhador.
// Apenas os campos não nulos são aplicados, na mesma ordem de validação da
// criação; a primeira falha interrompe a aplicação.
type WorkerUpdate struct {
	Name      *string  `json:"name,omitempty"`
	BirthDate *string  `json:"birth_date,omitempty"`
	Category  *string  `json:"category,omitempty"`
	Salary    *float64 `json:"salary,omitempty"`
	Address   *string  `json:"address,omitempty"`
	Phone     *string  `json:"phone,omitempty"`
	Email     *string  `json:"email,omitempty"`
}
