package medicalrecord

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	"github.com/vidaplus/sghss-api/internal/service/audit"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
	"github.com/vidaplus/sghss-api/pkg/logger"
)

type fakeRecordRepo struct {
	nextID  int64
	records map[int64]*model.MedicalRecord
}

func newFakeRecordRepo() *fakeRecordRepo {
	return &fakeRecordRepo{records: make(map[int64]*model.MedicalRecord)}
}

func (r *fakeRecordRepo) Create(_ context.Context, record *model.MedicalRecord) error {
	r.nextID++
	record.ID = r.nextID
	record.RecordedAt = time.Now()
	copied := *record
	r.records[record.ID] = &copied
	return nil
}

func (r *fakeRecordRepo) Get(_ context.Context, id int64) (*model.MedicalRecord, error) {
	rec, ok := r.records[id]
	if !ok {
		return nil, apperrors.NewNotFound("prontuário não encontrado")
	}
	copied := *rec
	return &copied, nil
}

func (r *fakeRecordRepo) ListByPatient(_ context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	var out []*model.MedicalRecord
	for _, rec := range r.records {
		if rec.PatientID == patientID {
			copied := *rec
			out = append(out, &copied)
		}
	}
	return out, nil
}

type patientExistsRepo struct {
	repository.PatientRepository
	ids map[int64]bool
}

func (r patientExistsRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.ids[id], nil
}

type professionalExistsRepo struct {
	repository.ProfessionalRepository
	ids map[int64]bool
}

func (r professionalExistsRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.ids[id], nil
}

type consultationExistsRepo struct {
	repository.ConsultationRepository
	ids map[int64]bool
}

func (r consultationExistsRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.ids[id], nil
}

type capturingAuditRepo struct {
	logs []*model.SystemLog
}

func (r *capturingAuditRepo) Create(_ context.Context, log *model.SystemLog) error {
	r.logs = append(r.logs, log)
	return nil
}

func (r *capturingAuditRepo) List(_ context.Context, _ int) ([]*model.SystemLog, error) {
	return r.logs, nil
}

type fixture struct {
	svc       *Service
	repo      *fakeRecordRepo
	auditRepo *capturingAuditRepo
}

func newFixture() *fixture {
	repo := newFakeRecordRepo()
	auditRepo := &capturingAuditRepo{}
	auditor := audit.NewService(auditRepo,
		logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard}))
	svc := NewService(repo,
		patientExistsRepo{ids: map[int64]bool{1: true}},
		professionalExistsRepo{ids: map[int64]bool{2: true}},
		consultationExistsRepo{ids: map[int64]bool{3: true}},
		auditor)
	return &fixture{svc: svc, repo: repo, auditRepo: auditRepo}
}

func createRequest() *model.CreateMedicalRecordRequest {
	return &model.CreateMedicalRecordRequest{
		PatientID:      1,
		ProfessionalID: 2,
		Description:    "Paciente apresenta quadro estável.",
		RecordType:     "EVOLUCAO",
	}
}

func TestCreate(t *testing.T) {
	f := newFixture()

	record, err := f.svc.Create(context.Background(), createRequest(), 7)

	require.NoError(t, err)
	assert.NotZero(t, record.ID)
	assert.False(t, record.RecordedAt.IsZero())
	assert.Nil(t, record.ConsultationID)

	require.Len(t, f.auditRepo.logs, 1)
	log := f.auditRepo.logs[0]
	assert.Equal(t, model.AuditCreateMedicalRecord, log.Action)
	require.NotNil(t, log.Details)
	assert.Contains(t, *log.Details, fmt.Sprintf("prontuário id=%d", record.ID))
}

func TestCreateWithConsultation(t *testing.T) {
	f := newFixture()

	req := createRequest()
	consultationID := int64(3)
	req.ConsultationID = &consultationID
	record, err := f.svc.Create(context.Background(), req, 7)

	require.NoError(t, err)
	require.NotNil(t, record.ConsultationID)
	assert.Equal(t, consultationID, *record.ConsultationID)
}

func TestCreateUnknownPatient(t *testing.T) {
	f := newFixture()

	req := createRequest()
	req.PatientID = 99
	_, err := f.svc.Create(context.Background(), req, 7)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "paciente não encontrado", apperrors.MessageOf(err))
	assert.Empty(t, f.repo.records)
}

func TestCreateUnknownConsultation(t *testing.T) {
	f := newFixture()

	req := createRequest()
	badID := int64(99)
	req.ConsultationID = &badID
	_, err := f.svc.Create(context.Background(), req, 7)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "consulta não encontrada", apperrors.MessageOf(err))
}

func TestListByPatient(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), createRequest(), 7)
	require.NoError(t, err)

	records, err := f.svc.ListByPatient(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListByUnknownPatient(t *testing.T) {
	f := newFixture()

	_, err := f.svc.ListByPatient(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}
