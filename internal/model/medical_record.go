package model

import "time"

// MedicalRecord ("prontuário") is an immutable clinical entry. RecordedAt is
// server-assigned and never updated.
type MedicalRecord struct {
	ID             int64     `json:"id" db:"id"`
	PatientID      int64     `json:"paciente_id" db:"paciente_id"`
	ProfessionalID int64     `json:"profissional_id" db:"profissional_id"`
	ConsultationID *int64    `json:"consulta_id" db:"consulta_id"`
	RecordedAt     time.Time `json:"data_registro" db:"data_registro"`
	Description    string    `json:"descricao" db:"descricao"`
	RecordType     string    `json:"tipo_registro" db:"tipo_registro"`
}

type CreateMedicalRecordRequest struct {
	PatientID      int64  `json:"paciente_id" binding:"required"`
	ProfessionalID int64  `json:"profissional_id" binding:"required"`
	ConsultationID *int64 `json:"consulta_id"`
	Description    string `json:"descricao" binding:"required"`
	RecordType     string `json:"tipo_registro" binding:"required"`
}
