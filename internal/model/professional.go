package model

// Professional is the profile row for a clinical staff member; it belongs to
// exactly one care unit.
type Professional struct {
	ID                  int64  `db:"id"`
	UserID              int64  `db:"usuario_id"`
	CPF                 string `db:"cpf"`
	CouncilRegistration string `db:"registro_conselho"`
	CouncilType         string `db:"tipo_conselho"`
	Specialty           string `db:"especialidade"`
	UnitID              int64  `db:"unidade_id"`
}

type ProfessionalView struct {
	ID                  int64  `json:"id"`
	UserID              int64  `json:"usuario_id"`
	FullName            string `json:"nome_completo"`
	Email               string `json:"email"`
	CPF                 string `json:"cpf"`
	CouncilRegistration string `json:"registro_conselho"`
	CouncilType         string `json:"tipo_conselho"`
	Specialty           string `json:"especialidade"`
	UnitID              int64  `json:"unidade_id"`
}

type CreateProfessionalRequest struct {
	FullName            string `json:"nome_completo" binding:"required"`
	Email               string `json:"email" binding:"required,email"`
	Senha               string `json:"senha" binding:"required,min=6"`
	CPF                 string `json:"cpf" binding:"required,cpf"`
	CouncilRegistration string `json:"registro_conselho" binding:"required"`
	CouncilType         string `json:"tipo_conselho" binding:"required"`
	Specialty           string `json:"especialidade" binding:"required"`
	UnitID              int64  `json:"unidade_id" binding:"required"`
}

type UpdateProfessionalRequest struct {
	CouncilRegistration *string `json:"registro_conselho"`
	CouncilType         *string `json:"tipo_conselho"`
	Specialty           *string `json:"especialidade"`
	UnitID              *int64  `json:"unidade_id"`
}
