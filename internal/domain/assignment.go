package domain

// Assignment representa o vínculo datado entre um trabalhador e um projeto.
// A data de atribuição é sempre carimbada pelo servidor ("hoje"), nunca
// fornecida pelo cliente. O par (WorkerID, ProjectCode) é único no livro de
// atribuições; as entradas são apenas anexadas, não há remoção.
type Assignment struct {
	ID          string `json:"id"`
	WorkerID    string `json:"worker_id"`
	ProjectCode string `json:"project_code"`
	AssignedAt  string `json:"assigned_at"` // "YYYY-MM-DD"
}

// AssignmentRequest é o payload esperado para criar uma atribuição.
type AssignmentRequest struct {
	WorkerID    string `json:"worker_id"`
	ProjectCode string `json:"project_code"`
}

// ProjectWorker é uma linha da consulta "trabalhadores de um projeto":
// identificação do trabalhador e a data em que foi atribuído.
type ProjectWorker struct {
	WorkerID   string   `json:"worker_id"`
	Name       string   `json:"name"`
	Category   Category `json:"category"`
	AssignedAt string   `json:"assigned_at"`
}

// WorkerProject é uma linha da consulta "projetos de um trabalhador".
type WorkerProject struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	AssignedAt string `json:"assigned_at"`
}
