package model

import "time"

// Patient is the profile row; identity fields live on the backing User.
type Patient struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"usuario_id"`
	CPF              string    `db:"cpf"`
	BirthDate        time.Time `db:"data_nascimento"`
	Phone            string    `db:"telefone"`
	Address          string    `db:"endereco"`
	HealthPlan       *string   `db:"plano_saude"`
	MembershipNumber *string   `db:"numero_carteirinha"`
}

// PatientView combines patient and user fields for API responses.
type PatientView struct {
	ID               int64   `json:"id"`
	UserID           int64   `json:"usuario_id"`
	FullName         string  `json:"nome_completo"`
	Email            string  `json:"email"`
	CPF              string  `json:"cpf"`
	BirthDate        string  `json:"data_nascimento"`
	Phone            string  `json:"telefone"`
	Address          string  `json:"endereco"`
	HealthPlan       *string `json:"plano_saude"`
	MembershipNumber *string `json:"numero_carteirinha"`
}

type CreatePatientRequest struct {
	FullName         string  `json:"nome_completo" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Senha            string  `json:"senha" binding:"required,min=6"`
	CPF              string  `json:"cpf" binding:"required,cpf"`
	BirthDate        string  `json:"data_nascimento" binding:"required,datetime=2006-01-02"`
	Phone            string  `json:"telefone" binding:"required"`
	Address          string  `json:"endereco" binding:"required"`
	HealthPlan       *string `json:"plano_saude"`
	MembershipNumber *string `json:"numero_carteirinha"`
}

// UpdatePatientRequest applies only the fields present in the payload.
type UpdatePatientRequest struct {
	Phone            *string `json:"telefone"`
	Address          *string `json:"endereco"`
	HealthPlan       *string `json:"plano_saude"`
	MembershipNumber *string `json:"numero_carteirinha"`
}

// DateLayout is the wire format for date-only fields.
const DateLayout = "2006-01-02"
