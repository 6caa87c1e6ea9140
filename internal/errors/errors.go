package errors

import (
	"fmt"
	"net/http"
)

// Kinds de erro de negócio. Cada falha de validação ou de consulta carrega
// exatamente um destes identificadores, para que o chamador possa distinguir
// o motivo sem interpretar a mensagem.
const (
	KindMalformedDate       = "MALFORMED_DATE"
	KindAgeBelowMinimum     = "AGE_BELOW_MINIMUM"
	KindInvalidCategory     = "INVALID_CATEGORY"
	KindSalaryOutOfRange    = "SALARY_OUT_OF_RANGE"
	KindEmptyEmail          = "EMPTY_EMAIL"
	KindDuplicateEmail      = "DUPLICATE_EMAIL"
	KindEmptyName           = "EMPTY_NAME"
	KindDuplicateName       = "DUPLICATE_NAME"
	KindDuplicateID         = "DUPLICATE_ID"
	KindWorkerNotFound      = "WORKER_NOT_FOUND"
	KindProjectNotFound     = "PROJECT_NOT_FOUND"
	KindDuplicateAssignment = "DUPLICATE_ASSIGNMENT"
	KindInternal            = "INTERNAL"
)

// AppError é a interface central para todos os erros customizados do GoCrew.
// Ela permite que o código externo (Handler) acesse o Kind, a Categoria e a
// Mensagem do erro.
type AppError interface {
	Error() string    // Implementa a interface error padrão do Go
	Kind() string     // Identificador estável do motivo da falha (e.g., "DUPLICATE_EMAIL")
	Category() string // Categoria do erro (e.g., "VALIDATION", "NOT_FOUND", "CONFLICT")
	HTTPStatus() int  // Código HTTP sugerido para o Handler
	Unwrap() error    // Permite encapsular erros subjacentes (original error)
}

// --- Tipos de Erro Específicos (Erros de Domínio) ---

// ValidationError representa falhas de validação de dados de entrada.
type ValidationError struct {
	ErrKind string
	Msg     string
}

func (e *ValidationError) Error() string    { return fmt.Sprintf("Erro de Validação: %s", e.Msg) }
func (e *ValidationError) Kind() string     { return e.ErrKind }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) HTTPStatus() int  { return http.StatusBadRequest } // 400
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError cria um novo erro de validação com o kind informado.
func NewValidationError(kind, msg string) AppError {
	return &ValidationError{ErrKind: kind, Msg: msg}
}

// NotFoundError representa a ausência de um recurso solicitado.
type NotFoundError struct {
	ErrKind string
	Msg     string
}

func (e *NotFoundError) Error() string    { return fmt.Sprintf("Recurso não encontrado: %s", e.Msg) }
func (e *NotFoundError) Kind() string     { return e.ErrKind }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) HTTPStatus() int  { return http.StatusNotFound } // 404
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError cria um novo erro de recurso não encontrado.
func NewNotFoundError(kind, msg string) AppError {
	return &NotFoundError{ErrKind: kind, Msg: msg}
}

// ConflictError representa um conflito na regra de negócio (e.g., registro
// duplicado, unicidade violada).
type ConflictError struct {
	ErrKind string
	Msg     string
}

func (e *ConflictError) Error() string    { return fmt.Sprintf("Conflito de estado: %s", e.Msg) }
func (e *ConflictError) Kind() string     { return e.ErrKind }
func (e *ConflictError) Category() string { return "CONFLICT" }
func (e *ConflictError) HTTPStatus() int  { return http.StatusConflict } // 409
func (e *ConflictError) Unwrap() error    { return nil }

// NewConflictError cria um novo erro de conflito.
func NewConflictError(kind, msg string) AppError {
	return &ConflictError{ErrKind: kind, Msg: msg}
}

// --- Tipos de Erro de Infraestrutura (Encapsulamento) ---

// InternalError representa falhas inesperadas no servidor, serviço ou repositório.
type InternalError struct {
	Msg string
	Err error // Erro original subjacente
}

func (e *InternalError) Error() string    { return fmt.Sprintf("Erro Interno: %s", e.Msg) }
func (e *InternalError) Kind() string     { return KindInternal }
func (e *InternalError) Category() string { return "INTERNAL_ERROR" }
func (e *InternalError) HTTPStatus() int  { return http.StatusInternalServerError } // 500
func (e *InternalError) Unwrap() error    { return e.Err }

// NewInternalError cria um erro de servidor (para falhas de lógica ou código não esperado).
func NewInternalError(msg string, err error) AppError {
	return &InternalError{Msg: msg, Err: err}
}

// --- Helpers para o Handler e para os chamadores ---

// KindOf extrai o kind de um erro qualquer; retorna vazio se o erro não for
// um AppError.
func KindOf(err error) string {
	if appErr, ok := err.(AppError); ok {
		return appErr.Kind()
	}
	return ""
}

// MapToHTTPStatus recebe um erro e o traduz para o código HTTP, o kind, a
// categoria e a mensagem de resposta.
func MapToHTTPStatus(err error) (int, string, string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.HTTPStatus(), appErr.Kind(), appErr.Category(), appErr.Error()
	}

	// Erro não tipado (e.g., erro simples de pacote Go que não implementa AppError)
	return http.StatusInternalServerError, KindInternal, "UNKNOWN_ERROR", "Ocorreu um erro inesperado."
}
