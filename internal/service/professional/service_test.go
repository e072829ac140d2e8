package professional

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
	"github.com/vidaplus/sghss-api/pkg/security"
)

type fakeProfessionalRepo struct {
	nextID        int64
	professionals map[int64]*model.Professional
	users         map[int64]*model.User
}

func newFakeProfessionalRepo() *fakeProfessionalRepo {
	return &fakeProfessionalRepo{
		professionals: make(map[int64]*model.Professional),
		users:         make(map[int64]*model.User),
	}
}

func (r *fakeProfessionalRepo) CreateWithUser(_ context.Context, user *model.User, professional *model.Professional) error {
	r.nextID++
	user.ID = r.nextID
	professional.ID = r.nextID
	professional.UserID = user.ID
	r.users[user.ID] = user
	r.professionals[professional.ID] = professional
	return nil
}

func (r *fakeProfessionalRepo) Get(_ context.Context, id int64) (*model.Professional, error) {
	p, ok := r.professionals[id]
	if !ok {
		return nil, apperrors.NewNotFound("profissional não encontrado")
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfessionalRepo) GetView(_ context.Context, id int64) (*model.ProfessionalView, error) {
	p, ok := r.professionals[id]
	if !ok {
		return nil, apperrors.NewNotFound("profissional não encontrado")
	}
	u := r.users[p.UserID]
	return &model.ProfessionalView{
		ID:                  p.ID,
		UserID:              p.UserID,
		FullName:            u.FullName,
		Email:               u.Email,
		CPF:                 p.CPF,
		CouncilRegistration: p.CouncilRegistration,
		CouncilType:         p.CouncilType,
		Specialty:           p.Specialty,
		UnitID:              p.UnitID,
	}, nil
}

func (r *fakeProfessionalRepo) ListViews(ctx context.Context) ([]*model.ProfessionalView, error) {
	views := make([]*model.ProfessionalView, 0, len(r.professionals))
	for id := range r.professionals {
		view, _ := r.GetView(ctx, id)
		views = append(views, view)
	}
	return views, nil
}

func (r *fakeProfessionalRepo) Update(_ context.Context, professional *model.Professional) error {
	if _, ok := r.professionals[professional.ID]; !ok {
		return apperrors.NewNotFound("profissional não encontrado")
	}
	copied := *professional
	r.professionals[professional.ID] = &copied
	return nil
}

func (r *fakeProfessionalRepo) Delete(_ context.Context, id int64) error {
	p, ok := r.professionals[id]
	if !ok {
		return apperrors.NewNotFound("profissional não encontrado")
	}
	delete(r.users, p.UserID)
	delete(r.professionals, id)
	return nil
}

func (r *fakeProfessionalRepo) CPFExists(_ context.Context, cpf string) (bool, error) {
	for _, p := range r.professionals {
		if p.CPF == cpf {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfessionalRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.professionals[id]
	return ok, nil
}

func (r *fakeProfessionalRepo) EmailExists(_ context.Context, email string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfessionalRepo) Create(_ context.Context, _ *model.User) error { return nil }

func (r *fakeProfessionalRepo) GetByEmail(_ context.Context, _ string) (*model.User, error) {
	return nil, apperrors.NewNotFound("usuário não encontrado")
}

type unitExistsRepo struct {
	repository.UnitRepository
	ids map[int64]bool
}

func (r unitExistsRepo) Exists(_ context.Context, id int64) (bool, error) {
	return r.ids[id], nil
}

// fakeUserRepo adapts fakeProfessionalRepo to repository.UserRepository, whose
// Get returns *model.User and therefore cannot share the fake's Professional Get.
type fakeUserRepo struct{ *fakeProfessionalRepo }

func (r fakeUserRepo) Get(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.NewNotFound("usuário não encontrado")
	}
	copied := *u
	return &copied, nil
}

func newTestService() (*Service, *fakeProfessionalRepo) {
	repo := newFakeProfessionalRepo()
	units := unitExistsRepo{ids: map[int64]bool{1: true, 2: true}}
	return NewService(repo, fakeUserRepo{repo}, units, security.NewBcryptHasher(4)), repo
}

func createRequest() *model.CreateProfessionalRequest {
	return &model.CreateProfessionalRequest{
		FullName:            "Dra. Maria Lima",
		Email:               "maria@vidaplus.com",
		Senha:               "segredo1",
		CPF:                 "529.982.247-25",
		CouncilRegistration: "CRM-SP 123456",
		CouncilType:         "CRM",
		Specialty:           "Cardiologia",
		UnitID:              1,
	}
}

func TestCreate(t *testing.T) {
	svc, repo := newTestService()

	view, err := svc.Create(context.Background(), createRequest())

	require.NoError(t, err)
	assert.NotZero(t, view.ID)
	assert.Equal(t, "Cardiologia", view.Specialty)
	assert.Equal(t, int64(1), view.UnitID)
	assert.Equal(t, model.UserTypeProfessional, repo.users[view.UserID].Type)
}

func TestCreateUnknownUnit(t *testing.T) {
	svc, repo := newTestService()

	req := createRequest()
	req.UnitID = 99
	_, err := svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
	assert.Equal(t, "unidade não encontrada", apperrors.MessageOf(err))
	assert.Empty(t, repo.professionals)
}

func TestCreateDuplicateCPF(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	req := createRequest()
	req.Email = "maria2@vidaplus.com"
	_, err = svc.Create(context.Background(), req)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "CPF já cadastrado", apperrors.MessageOf(err))
}

func TestUpdateMoveToUnknownUnit(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	badUnit := int64(99)
	_, err = svc.Update(context.Background(), created.ID, &model.UpdateProfessionalRequest{UnitID: &badUnit})

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrValidation))
}

func TestUpdateMoveToExistingUnit(t *testing.T) {
	svc, _ := newTestService()
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	newUnit := int64(2)
	specialty := "Clínica Geral"
	updated, err := svc.Update(context.Background(), created.ID, &model.UpdateProfessionalRequest{
		UnitID:    &newUnit,
		Specialty: &specialty,
	})

	require.NoError(t, err)
	assert.Equal(t, newUnit, updated.UnitID)
	assert.Equal(t, specialty, updated.Specialty)
	assert.Equal(t, created.CouncilRegistration, updated.CouncilRegistration)
}
