package auth

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/service/audit"
	pkgauth "github.com/vidaplus/sghss-api/pkg/auth"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
	"github.com/vidaplus/sghss-api/pkg/logger"
	"github.com/vidaplus/sghss-api/pkg/security"
)

type fakeUserRepo struct {
	nextID int64
	users  map[string]*model.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *model.User) error {
	r.nextID++
	user.ID = r.nextID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.users[user.Email] = user
	return nil
}

func (r *fakeUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, apperrors.NewNotFound("usuário não encontrado")
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := r.users[email]
	if !ok {
		return nil, apperrors.NewNotFound("usuário não encontrado")
	}
	return u, nil
}

func (r *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	_, ok := r.users[email]
	return ok, nil
}

// failingUserRepo simulates an unreachable store.
type failingUserRepo struct{}

func (failingUserRepo) Create(_ context.Context, _ *model.User) error {
	return apperrors.NewPersistence(errors.New("connection refused"))
}

func (failingUserRepo) Get(_ context.Context, _ int64) (*model.User, error) {
	return nil, apperrors.NewPersistence(errors.New("connection refused"))
}

func (failingUserRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, apperrors.NewPersistence(errors.New("connection refused"))
}

func (failingUserRepo) EmailExists(_ context.Context, _ string) (bool, error) {
	return false, apperrors.NewPersistence(errors.New("connection refused"))
}

type fakeAuditRepo struct {
	logs []*model.SystemLog
}

func (r *fakeAuditRepo) Create(_ context.Context, log *model.SystemLog) error {
	log.ID = int64(len(r.logs) + 1)
	log.CreatedAt = time.Now()
	r.logs = append(r.logs, log)
	return nil
}

func (r *fakeAuditRepo) List(_ context.Context, _ int) ([]*model.SystemLog, error) {
	return r.logs, nil
}

func newTestService() (*Service, *fakeUserRepo, *fakeAuditRepo) {
	userRepo := newFakeUserRepo()
	auditRepo := &fakeAuditRepo{}
	auditor := audit.NewService(auditRepo, testLogger())
	svc := NewService(userRepo, security.NewBcryptHasher(4),
		pkgauth.NewJWTService("test-secret", time.Hour), auditor)
	return svc, userRepo, auditRepo
}

func register(t *testing.T, svc *Service, email, senha string) *model.User {
	t.Helper()
	user, err := svc.Register(context.Background(), &model.RegisterRequest{
		FullName: "Ana Souza",
		Email:    email,
		Senha:    senha,
		Type:     model.UserTypeAdmin,
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService()

	user := register(t, svc, "ana@vidaplus.com", "segredo1")

	assert.NotZero(t, user.ID)
	assert.Equal(t, model.UserTypeAdmin, user.Type)
	assert.NotEqual(t, "segredo1", user.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	register(t, svc, "ana@vidaplus.com", "segredo1")

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		FullName: "Outra Ana",
		Email:    "ana@vidaplus.com",
		Senha:    "outrasenha",
		Type:     model.UserTypePatient,
	})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "e-mail já cadastrado", apperrors.MessageOf(err))
}

func TestLogin(t *testing.T) {
	svc, _, auditRepo := newTestService()
	user := register(t, svc, "ana@vidaplus.com", "segredo1")

	token, err := svc.Login(context.Background(), "ana@vidaplus.com", "segredo1")

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)

	require.Len(t, auditRepo.logs, 1)
	assert.Equal(t, model.AuditLoginSuccess, auditRepo.logs[0].Action)
	require.NotNil(t, auditRepo.logs[0].UserID)
	assert.Equal(t, user.ID, *auditRepo.logs[0].UserID)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresAreUniform(t *testing.T) {
	svc, _, auditRepo := newTestService()
	register(t, svc, "ana@vidaplus.com", "segredo1")

	_, errUnknown := svc.Login(context.Background(), "ninguem@vidaplus.com", "segredo1")
	_, errWrongPwd := svc.Login(context.Background(), "ana@vidaplus.com", "errada")

	require.Error(t, errUnknown)
	require.Error(t, errWrongPwd)
	assert.Equal(t, errUnknown.Error(), errWrongPwd.Error())
	assert.True(t, apperrors.Is(errUnknown, apperrors.ErrInvalidCredentials))
	assert.True(t, apperrors.Is(errWrongPwd, apperrors.ErrInvalidCredentials))

	require.Len(t, auditRepo.logs, 2)
	for _, log := range auditRepo.logs {
		assert.Equal(t, model.AuditLoginFailure, log.Action)
		assert.Nil(t, log.UserID)
	}
}

// A store outage during login must surface as a server error, not as bad
// credentials, and must not leave a failed-login audit row.
func TestLoginStoreFailure(t *testing.T) {
	auditRepo := &fakeAuditRepo{}
	auditor := audit.NewService(auditRepo, testLogger())
	svc := NewService(failingUserRepo{}, security.NewBcryptHasher(4),
		pkgauth.NewJWTService("test-secret", time.Hour), auditor)

	_, err := svc.Login(context.Background(), "ana@vidaplus.com", "segredo1")

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrPersistence))
	assert.False(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
	assert.Empty(t, auditRepo.logs)
}

func TestValidateToken(t *testing.T) {
	svc, _, _ := newTestService()
	user := register(t, svc, "ana@vidaplus.com", "segredo1")

	token, err := svc.Login(context.Background(), "ana@vidaplus.com", "segredo1")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(context.Background(), token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.UserTypeAdmin, claims.Tipo)

	_, err = svc.ValidateToken(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrInvalidCredentials))
}

func testLogger() *logger.Logger {
	return logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, Output: io.Discard})
}
