package professional

import (
	"context"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
	"github.com/vidaplus/sghss-api/pkg/security"
)

type Service struct {
	repo     repository.ProfessionalRepository
	userRepo repository.UserRepository
	unitRepo repository.UnitRepository
	hasher   security.PasswordHasher
}

func NewService(repo repository.ProfessionalRepository, userRepo repository.UserRepository,
	unitRepo repository.UnitRepository, hasher security.PasswordHasher) *Service {
	return &Service{repo: repo, userRepo: userRepo, unitRepo: unitRepo, hasher: hasher}
}

// Create writes the backing user (tipo PROFISSIONAL) and the professional
// profile as one transaction. The referenced unit must exist.
func (s *Service) Create(ctx context.Context, req *model.CreateProfessionalRequest) (*model.ProfessionalView, error) {
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

	unitExists, err := s.unitRepo.Exists(ctx, req.UnitID)
	if err != nil {
		return nil, err
	}
	if !unitExists {
		return nil, apperrors.NewValidation("unidade não encontrada")
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return nil, apperrors.NewValidation("senha inválida")
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Type:         model.UserTypeProfessional,
	}
	professional := &model.Professional{
		CPF:                 req.CPF,
		CouncilRegistration: req.CouncilRegistration,
		CouncilType:         req.CouncilType,
		Specialty:           req.Specialty,
		UnitID:              req.UnitID,
	}

	if err := s.repo.CreateWithUser(ctx, user, professional); err != nil {
		return nil, err
	}

	return s.repo.GetView(ctx, professional.ID)
}

func (s *Service) Get(ctx context.Context, id int64) (*model.ProfessionalView, error) {
	return s.repo.GetView(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*model.ProfessionalView, error) {
	return s.repo.ListViews(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateProfessionalRequest) (*model.ProfessionalView, error) {
	professional, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CouncilRegistration != nil {
		professional.CouncilRegistration = *req.CouncilRegistration
	}
	if req.CouncilType != nil {
		professional.CouncilType = *req.CouncilType
	}
	if req.Specialty != nil {
		professional.Specialty = *req.Specialty
	}
	if req.UnitID != nil {
		unitExists, err := s.unitRepo.Exists(ctx, *req.UnitID)
		if err != nil {
			return nil, err
		}
		if !unitExists {
			return nil, apperrors.NewValidation("unidade não encontrada")
		}
		professional.UnitID = *req.UnitID
	}

	if err := s.repo.Update(ctx, professional); err != nil {
		return nil, err
	}

	return s.repo.GetView(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
