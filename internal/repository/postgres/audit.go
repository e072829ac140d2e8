package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
)

type auditRepository struct {
	BaseRepository
}

func NewAuditRepository(db *sqlx.DB) repository.AuditRepository {
	return &auditRepository{NewBaseRepository(db)}
}

func (r *auditRepository) Create(ctx context.Context, log *model.SystemLog) error {
	err := r.GetDB().QueryRowxContext(ctx, `
		INSERT INTO logs_sistema (usuario_id, acao, detalhes)
		VALUES ($1, $2, $3)
		RETURNING id, criado_em
	`, log.UserID, log.Action, log.Details).Scan(&log.ID, &log.CreatedAt)
	return translateError(err, "log não encontrado", "")
}

func (r *auditRepository) List(ctx context.Context, limit int) ([]*model.SystemLog, error) {
	if limit <= 0 {
		limit = 100
	}

	var logs []*model.SystemLog
	err := r.GetDB().SelectContext(ctx, &logs,
		`SELECT * FROM logs_sistema ORDER BY criado_em DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, translateError(err, "log não encontrado", "")
	}
	return logs, nil
}
