package audit

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/pkg/logger"
)

// ctxAwareAuditRepo refuses writes on a canceled context, the way a real
// database driver would.
type ctxAwareAuditRepo struct {
	logs []*model.SystemLog
	err  error
}

func (r *ctxAwareAuditRepo) Create(ctx context.Context, log *model.SystemLog) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if r.err != nil {
		return r.err
	}
	r.logs = append(r.logs, log)
	return nil
}

func (r *ctxAwareAuditRepo) List(_ context.Context, _ int) ([]*model.SystemLog, error) {
	return r.logs, nil
}

func testLogger() *logger.Logger {
	return logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
}

func TestRecord(t *testing.T) {
	repo := &ctxAwareAuditRepo{}
	svc := NewService(repo, testLogger())

	userID := int64(7)
	svc.Record(context.Background(), model.AuditLoginSuccess, &userID, "login do usuário id=7")

	require.Len(t, repo.logs, 1)
	assert.Equal(t, model.AuditLoginSuccess, repo.logs[0].Action)
	require.NotNil(t, repo.logs[0].Details)
	assert.Equal(t, "login do usuário id=7", *repo.logs[0].Details)
}

func TestRecordEmptyDetails(t *testing.T) {
	repo := &ctxAwareAuditRepo{}
	svc := NewService(repo, testLogger())

	svc.Record(context.Background(), model.AuditLoginFailure, nil, "")

	require.Len(t, repo.logs, 1)
	assert.Nil(t, repo.logs[0].Details)
	assert.Nil(t, repo.logs[0].UserID)
}

// A client disconnect right after the primary commit cancels the request
// context; the log entry must still land.
func TestRecordSurvivesCanceledContext(t *testing.T) {
	repo := &ctxAwareAuditRepo{}
	svc := NewService(repo, testLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	userID := int64(7)
	svc.Record(ctx, model.AuditCreateConsultation, &userID, "consulta id=1 criada pelo usuário id=7")

	require.Len(t, repo.logs, 1)
	assert.Equal(t, model.AuditCreateConsultation, repo.logs[0].Action)
}

// Write failures are logged, never surfaced to the caller.
func TestRecordSwallowsWriteFailure(t *testing.T) {
	repo := &ctxAwareAuditRepo{err: errors.New("disk full")}
	svc := NewService(repo, testLogger())

	svc.Record(context.Background(), model.AuditLoginFailure, nil, "tentativa de login")

	assert.Empty(t, repo.logs)
}
