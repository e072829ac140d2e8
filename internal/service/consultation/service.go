package consultation

import (
	"context"
	"fmt"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	"github.com/vidaplus/sghss-api/internal/service/audit"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

type Service struct {
	repo             repository.ConsultationRepository
	patientRepo      repository.PatientRepository
	professionalRepo repository.ProfessionalRepository
	unitRepo         repository.UnitRepository
	auditor          *audit.Service
}

func NewService(repo repository.ConsultationRepository, patientRepo repository.PatientRepository,
	professionalRepo repository.ProfessionalRepository, unitRepo repository.UnitRepository,
	auditor *audit.Service) *Service {
	return &Service{
		repo:             repo,
		patientRepo:      patientRepo,
		professionalRepo: professionalRepo,
		unitRepo:         unitRepo,
		auditor:          auditor,
	}
}

// Create schedules a consultation. Every referenced entity is looked up at
// write time; rows always start as AGENDADA.
func (s *Service) Create(ctx context.Context, req *model.CreateConsultationRequest, actorID int64) (*model.Consultation, error) {
	if err := s.checkPatient(ctx, req.PatientID); err != nil {
		return nil, err
	}
	if err := s.checkProfessional(ctx, req.ProfessionalID); err != nil {
		return nil, err
	}
	if err := s.checkUnit(ctx, req.UnitID); err != nil {
		return nil, err
	}

	consultation := &model.Consultation{
		PatientID:      req.PatientID,
		ProfessionalID: req.ProfessionalID,
		UnitID:         req.UnitID,
		ScheduledAt:    req.ScheduledAt,
		Mode:           req.Mode,
		Status:         model.StatusScheduled,
		Notes:          req.Notes,
	}
	if err := s.repo.Create(ctx, consultation); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, model.AuditCreateConsultation, &actorID,
		fmt.Sprintf("consulta id=%d criada pelo usuário id=%d", consultation.ID, actorID))

	return consultation, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Consultation, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.Consultation, error) {
	return s.repo.List(ctx)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64) ([]*model.Consultation, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *Service) ListByProfessional(ctx context.Context, professionalID int64) ([]*model.Consultation, error) {
	return s.repo.ListByProfessional(ctx, professionalID)
}

// Update applies the fields present in the payload. A changed foreign key is
// existence-checked before anything is written.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateConsultationRequest, actorID int64) (*model.Consultation, error) {
	consultation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PatientID != nil {
		if err := s.checkPatient(ctx, *req.PatientID); err != nil {
			return nil, err
		}
		consultation.PatientID = *req.PatientID
	}
	if req.ProfessionalID != nil {
		if err := s.checkProfessional(ctx, *req.ProfessionalID); err != nil {
			return nil, err
		}
		consultation.ProfessionalID = *req.ProfessionalID
	}
	if req.UnitID != nil {
		if err := s.checkUnit(ctx, *req.UnitID); err != nil {
			return nil, err
		}
		consultation.UnitID = *req.UnitID
	}
	if req.ScheduledAt != nil {
		consultation.ScheduledAt = *req.ScheduledAt
	}
	if req.Mode != nil {
		consultation.Mode = *req.Mode
	}
	if req.Notes != nil {
		consultation.Notes = req.Notes
	}

	if err := s.repo.Update(ctx, consultation); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, model.AuditUpdateConsultation, &actorID,
		fmt.Sprintf("consulta id=%d atualizada pelo usuário id=%d", consultation.ID, actorID))

	return consultation, nil
}

// UpdateStatus moves a consultation through the closed status set.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string, actorID int64) (*model.Consultation, error) {
	if !model.ValidConsultationStatus(status) {
		return nil, apperrors.NewValidation("status inválido")
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	consultation, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, model.AuditUpdateConsultationStatus, &actorID,
		fmt.Sprintf("status da consulta id=%d atualizado para %s pelo usuário id=%d",
			consultation.ID, consultation.Status, actorID))

	return consultation, nil
}

func (s *Service) checkPatient(ctx context.Context, id int64) error {
	exists, err := s.patientRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidation("paciente não encontrado")
	}
	return nil
}

func (s *Service) checkProfessional(ctx context.Context, id int64) error {
	exists, err := s.professionalRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidation("profissional não encontrado")
	}
	return nil
}

func (s *Service) checkUnit(ctx context.Context, id int64) error {
	exists, err := s.unitRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewValidation("unidade não encontrada")
	}
	return nil
}
