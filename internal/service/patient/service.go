package patient

import (
	"context"
	"time"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
	"github.com/vidaplus/sghss-api/pkg/security"
)

type Service struct {
	repo     repository.PatientRepository
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
}

func NewService(repo repository.PatientRepository, userRepo repository.UserRepository,
	hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, userRepo: userRepo, hasher: hasher}
}

// Create writes the backing user (tipo PACIENTE) and the patient profile as
// one transaction; neither row survives a failure of the other. The
// email/CPF pre-checks give friendly messages, the unique indexes settle
// races.
func (s *Service) Create(ctx context.Context, req *model.CreatePatientRequest) (*model.PatientView, error) {
	emailTaken, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.NewConflict("e-mail já cadastrado")
	}

	cpfTaken, err := s.repo.CPFExists(ctx, req.CPF)
	if err != nil {
		return nil, err
	}
	if cpfTaken {
		return nil, apperrors.NewConflict("CPF já cadastrado")
	}

	birthDate, err := time.Parse(model.DateLayout, req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidation("data_nascimento inválida")
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return nil, apperrors.NewValidation("senha inválida")
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Type:         model.UserTypePatient,
	}
	patient := &model.Patient{
		CPF:              req.CPF,
		BirthDate:        birthDate,
		Phone:            req.Phone,
		Address:          req.Address,
		HealthPlan:       req.HealthPlan,
		MembershipNumber: req.MembershipNumber,
	}

	if err := s.repo.CreateWithUser(ctx, user, patient); err != nil {
		return nil, err
	}

	return s.repo.GetView(ctx, patient.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.PatientView, error) {
	return s.repo.GetView(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.PatientView, error) {
	return s.repo.ListViews(ctx)
}

// Update applies only the fields present in the payload; absent fields keep
// their stored value.
func (s *Service) Update(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.PatientView, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Phone != nil {
		patient.Phone = *req.Phone
	}
	if req.Address != nil {
		patient.Address = *req.Address
	}
	if req.HealthPlan != nil {
		patient.HealthPlan = req.HealthPlan
	}
	if req.MembershipNumber != nil {
		patient.MembershipNumber = req.MembershipNumber
	}

	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}

	return s.repo.GetView(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
