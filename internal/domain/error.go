package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int    `json:"code" example:"409"`
	Kind     string `json:"kind" example:"DUPLICATE_EMAIL"`
	Category string `json:"category" example:"CONFLICT"`
	Message  string `json:"message" example:"O e-mail 'ana@avance.cr' já está registrado."`
}
