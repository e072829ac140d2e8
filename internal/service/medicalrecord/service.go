package medicalrecord

import (
	"context"
	"fmt"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	"github.com/vidaplus/sghss-api/internal/service/audit"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

type Service struct {
	repo             repository.MedicalRecordRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	consultationRepo repository.ConsultationRepository
	auditor          *audit.Service
}

func NewService(repo repository.MedicalRecordRepository, patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository, consultationRepo repository.ConsultationRepository,
	auditor *audit.Service) *Service {
	return &Service{
		repo:             repo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		consultationRepo: consultationRepo,
		auditor:          auditor,
	}
}

// Create appends a clinical entry. The consultation reference is optional;
// when present it is existence-checked like the mandatory ones.
func (s *Service) Create(ctx context.Context, req *model.CreateMedicalRecordRequest, actorID int64) (*model.MedicalRecord, error) {
	exists, err := s.patientRepo.Exists(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewValidation("paciente não encontrado")
	}

	exists, err = s.professionalRepo.Exists(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewValidation("profissional não encontrado")
	}

	if req.ConsultationID != nil {
		exists, err = s.consultationRepo.Exists(ctx, *req.ConsultationID)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, apperrors.NewValidation("consulta não encontrada")
		}
	}

	record := &model.MedicalRecord{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		ConsultationID: req.ConsultationID,
		Description:    req.Description,
		RecordType:     req.RecordType,
	}
	if err := s.repo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, model.AuditCreateMedicalRecord, &actorID,
		fmt.Sprintf("prontuário id=%d criado para o paciente id=%d", record.ID, record.PatientID))

	return record, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.MedicalRecord, error) {
	return s.repo.Get(ctx, id)
}

// ListByPatient returns the patient's history, newest entries first. A patient
// that does not exist is reported rather than answered with an empty list.
func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*model.MedicalRecord, error) {
	exists, err := s.patientRepo.Exists(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewNotFound("paciente não encontrado")
	}
	return s.repo.ListByPatient(ctx, patientID)
}
