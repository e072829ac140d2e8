package model

import "time"

// Audit action codes
const (
	AuditLoginSuccess             = "LOGIN_SUCESSO"
	AuditLoginFailure             = "LOGIN_FALHA"
	AuditCreateConsultation       = "CRIAR_CONSULTA"
	AuditUpdateConsultation       = "ATUALIZAR_CONSULTA"
	AuditUpdateConsultationStatus = "ATUALIZAR_STATUS_CONSULTA"
	AuditCreateMedicalRecord      = "CRIAR_PRONTUARIO"
)

// SystemLog is an append-only audit record. UserID is null for actions without
// an authenticated principal, such as failed logins.
type SystemLog struct {
	ID        int64     `json:"id" db:"id"`
	UserID    *int64    `json:"usuario_id" db:"usuario_id"`
	Action    string    `json:"acao" db:"acao"`
	Details   *string   `json:"detalhes" db:"detalhes"`
	CreatedAt time.Time `json:"criado_em" db:"criado_em"`
}
