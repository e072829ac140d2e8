package audit

import (
	"context"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	"github.com/vidaplus/sghss-api/pkg/logger"
)

// Service appends audit rows. Writes happen after the primary mutation has
// committed and are best-effort: a failed audit write is logged but never
// surfaces to the caller, so it cannot mask the primary result.
type Service struct {
	repo   repository.AuditRepository
	logger *logger.Logger
}

func NewService(repo repository.AuditRepository, logger *logger.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// Record writes one system log row. userID is nil for actions without an
// authenticated principal (e.g. a failed login). The write is detached from
// request cancellation: once the primary mutation committed, a client
// disconnect must not lose its log entry.
func (s *Service) Record(ctx context.Context, action string, userID *int64, details string) {
	log := &model.SystemLog{
		UserID: userID,
		Action: action,
	}
	if details != "" {
		log.Details = &details
	}

	if err := s.repo.Create(context.WithoutCancel(ctx), log); err != nil {
		s.logger.Error(err, "failed to write audit log", "action", action)
	}
}

func (s *Service) List(ctx context.Context, limit int) ([]*model.SystemLog, error) {
	return s.repo.List(ctx, limit)
}
