package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

const consultationNotFound = "consulta não encontrada"

type consultationRepository struct {
	BaseRepository
}

func NewConsultationRepository(db *sqlx.DB) repository.ConsultationRepository {
	return &consultationRepository{NewBaseRepository(db)}
}

func (r *consultationRepository) Create(ctx context.Context, consultation *model.Consultation) error {
	err := r.GetDB().QueryRowxContext(ctx, `
		INSERT INTO consultas (paciente_id, profissional_id, unidade_id, data_hora, tipo_atendimento, status, observacoes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, criada_em, atualizada_em
	`, consultation.PatientID, consultation.ProfessionalID, consultation.UnitID,
		consultation.ScheduledAt, consultation.Mode, consultation.Status, consultation.Notes).
		Scan(&consultation.ID, &consultation.CreatedAt, &consultation.UpdatedAt)
	return translateError(err, consultationNotFound, "")
}

func (r *consultationRepository) Get(ctx context.Context, id int64) (*model.Consultation, error) {
	var consultation model.Consultation
	err := r.GetDB().GetContext(ctx, &consultation, `SELECT * FROM consultas WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, consultationNotFound, "")
	}
	return &consultation, nil
}

func (r *consultationRepository) List(ctx context.Context) ([]*model.Consultation, error) {
	var consultations []*model.Consultation
	err := r.GetDB().SelectContext(ctx, &consultations, `SELECT * FROM consultas ORDER BY data_hora`)
	if err != nil {
		return nil, translateError(err, consultationNotFound, "")
	}
	return consultations, nil
}

func (r *consultationRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Consultation, error) {
	var consultations []*model.Consultation
	err := r.GetDB().SelectContext(ctx, &consultations,
		`SELECT * FROM consultas WHERE paciente_id = $1 ORDER BY data_hora`, patientID)
	if err != nil {
		return nil, translateError(err, consultationNotFound, "")
	}
	return consultations, nil
}

func (r *consultationRepository) ListByProfessional(ctx context.Context, professionalID int64) ([]*model.Consultation, error) {
	var consultations []*model.Consultation
	err := r.GetDB().SelectContext(ctx, &consultations,
		`SELECT * FROM consultas WHERE profissional_id = $1 ORDER BY data_hora`, professionalID)
	if err != nil {
		return nil, translateError(err, consultationNotFound, "")
	}
	return consultations, nil
}

func (r *consultationRepository) Update(ctx context.Context, consultation *model.Consultation) error {
	err := r.GetDB().QueryRowxContext(ctx, `
		UPDATE consultas
		SET paciente_id = $1, profissional_id = $2, unidade_id = $3,
		    data_hora = $4, tipo_atendimento = $5, observacoes = $6, atualizada_em = NOW()
		WHERE id = $7
		RETURNING atualizada_em
	`, consultation.PatientID, consultation.ProfessionalID, consultation.UnitID,
		consultation.ScheduledAt, consultation.Mode, consultation.Notes, consultation.ID).
		Scan(&consultation.UpdatedAt)
	return translateError(err, consultationNotFound, "")
}

func (r *consultationRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.GetDB().ExecContext(ctx,
		`UPDATE consultas SET status = $1, atualizada_em = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return translateError(err, consultationNotFound, "")
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return translateError(errNoRows(), consultationNotFound, "")
	}
	return nil
}

func (r *consultationRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.GetDB().GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM consultas WHERE id = $1)`, id)
	if err != nil {
		return false, translateError(err, consultationNotFound, "")
	}
	return exists, nil
}
