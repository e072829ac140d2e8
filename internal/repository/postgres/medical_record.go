package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

const medicalRecordNotFound = "prontuário não encontrado"

type medicalRecordRepository struct {
	BaseRepository
}

func NewMedicalRecordRepository(db *sqlx.DB) repository.MedicalRecordRepository {
	return &medicalRecordRepository{NewBaseRepository(db)}
}

func (r *medicalRecordRepository) Create(ctx context.Context, record *model.MedicalRecord) error {
	err := r.GetDB().QueryRowxContext(ctx, `
		INSERT INTO prontuarios (paciente_id, profissional_id, consulta_id, descricao, tipo_registro)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, data_registro
	`, record.PatientID, record.ProfessionalID, record.ConsultationID,
		record.Description, record.RecordType).
		Scan(&record.ID, &record.RecordedAt)
	return translateError(err, medicalRecordNotFound, "")
}

func (r *medicalRecordRepository) Get(ctx context.Context, id int64) (*model.MedicalRecord, error) {
	var record model.MedicalRecord
	err := r.GetDB().GetContext(ctx, &record, `SELECT * FROM prontuarios WHERE id = $1`, id)
	if err != nil {
		return nil, translateError(err, medicalRecordNotFound, "")
	}
	return &record, nil
}

func (r *medicalRecordRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	var records []*model.MedicalRecord
	err := r.GetDB().SelectContext(ctx, &records,
		`SELECT * FROM prontuarios WHERE paciente_id = $1 ORDER BY data_registro DESC`, patientID)
	if err != nil {
		return nil, translateError(err, medicalRecordNotFound, "")
	}
	return records, nil
}
