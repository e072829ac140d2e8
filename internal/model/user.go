package model

import "time"

// User roles
const (
	UserTypePatient      = "PACIENTE"
	UserTypeProfessional = "PROFISSIONAL"
	UserTypeAdmin        = "ADMIN"
)

// User is the root identity for login. Patients and professionals are
// profile rows backed by exactly one user each.
type User struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"nome_completo" db:"nome_completo"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"senha_hash"`
	Type         string    `json:"tipo" db:"tipo"`
	CreatedAt    time.Time `json:"criado_em" db:"criado_em"`
	UpdatedAt    time.Time `json:"atualizado_em" db:"atualizado_em"`
}
