package model

import "time"

// Attendance modes
const (
	AttendanceInPerson     = "PRESENCIAL"
	AttendanceTelemedicine = "TELEMEDICINA"
)

// Consultation statuses. The closed set is an enforcement added on top of the
// documented lifecycle: rows always start as AGENDADA and move through the
// status-update operation.
const (
	StatusScheduled = "AGENDADA"
	StatusConfirmed = "CONFIRMADA"
	StatusCompleted = "CONCLUIDA"
	StatusCancelled = "CANCELADA"
)

// ValidConsultationStatus reports whether s belongs to the closed status set.
func ValidConsultationStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

type Consultation struct {
	ID             int64     `json:"id" db:"id"`
	PatientID      int64     `json:"paciente_id" db:"paciente_id"`
	ProfessionalID int64     `json:"profissional_id" db:"profissional_id"`
	UnitID         int64     `json:"unidade_id" db:"unidade_id"`
	ScheduledAt    time.Time `json:"data_hora" db:"data_hora"`
	Mode           string    `json:"tipo_atendimento" db:"tipo_atendimento"`
	Status         string    `json:"status" db:"status"`
	Notes          *string   `json:"observacoes" db:"observacoes"`
	CreatedAt      time.Time `json:"criada_em" db:"criada_em"`
	UpdatedAt      time.Time `json:"atualizada_em" db:"atualizada_em"`
}

type CreateConsultationRequest struct {
	PatientID      int64     `json:"paciente_id" binding:"required"`
	ProfessionalID int64     `json:"profissional_id" binding:"required"`
	UnitID         int64     `json:"unidade_id" binding:"required"`
	ScheduledAt    time.Time `json:"data_hora" binding:"required"`
	Mode           string    `json:"tipo_atendimento" binding:"required,oneof=PRESENCIAL TELEMEDICINA"`
	Notes          *string   `json:"observacoes"`
}

type UpdateConsultationRequest struct {
	PatientID      *int64     `json:"paciente_id"`
	ProfessionalID *int64     `json:"profissional_id"`
	UnitID         *int64     `json:"unidade_id"`
	ScheduledAt    *time.Time `json:"data_hora"`
	Mode           *string    `json:"tipo_atendimento" binding:"omitempty,oneof=PRESENCIAL TELEMEDICINA"`
	Notes          *string    `json:"observacoes"`
}

type ConsultationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
