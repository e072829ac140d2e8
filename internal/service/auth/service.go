package auth

import (
	"context"
	"fmt"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	"github.com/vidaplus/sghss-api/internal/service/audit"
	"github.com/vidaplus/sghss-api/pkg/auth"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
	"github.com/vidaplus/sghss-api/pkg/security"
)

type Service struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
	jwtSvc   auth.JWTService
	auditor  *audit.Service
}

func NewService(userRepo repository.UserRepository, hasher security.PasswordHasher,
	jwtSvc auth.JWTService, auditor *audit.Service) *Service {
	return &Service{
		userRepo: userRepo,
		hasher:   hasher,
		jwtSvc:   jwtSvc,
		auditor:  auditor,
	}
}

func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.NewConflict("e-mail já cadastrado")
	}

	hash, err := s.hasher.Hash(req.Senha)
	if err != nil {
		return nil, apperrors.NewValidation("senha inválida")
	}

	user := &model.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: hash,
		Type:         req.Type,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and issues an access token. A missing user and a
// wrong password produce the same error so callers cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, email, senha string) (*model.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		// Only an absent user is a credential failure; store errors keep
		// their own code so an outage is not reported as a bad password.
		if !apperrors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		s.auditor.Record(ctx, model.AuditLoginFailure, nil, fmt.Sprintf("tentativa de login para %s", email))
		return nil, apperrors.NewInvalidCredentials()
	}

	if err := s.hasher.Compare(user.PasswordHash, senha); err != nil {
		s.auditor.Record(ctx, model.AuditLoginFailure, nil, fmt.Sprintf("tentativa de login para %s", email))
		return nil, apperrors.NewInvalidCredentials()
	}

	token, err := s.jwtSvc.GenerateAccessToken(user.ID, user.Type)
	if err != nil {
		return nil, apperrors.NewPersistence(err)
	}

	s.auditor.Record(ctx, model.AuditLoginSuccess, &user.ID, fmt.Sprintf("login do usuário id=%d", user.ID))

	return &model.TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}

// ValidateToken resolves the principal encoded in a bearer token.
func (s *Service) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	claims, err := s.jwtSvc.ValidateToken(token)
	if err != nil {
		return nil, apperrors.NewInvalidCredentials()
	}
	return claims, nil
}
