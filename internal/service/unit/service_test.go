package unit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidaplus/sghss-api/internal/model"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

type fakeUnitRepo struct {
	nextID     int64
	units      map[int64]*model.Unit
	referenced map[int64]bool

	getCalls  int
	listCalls int
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{
		units:      make(map[int64]*model.Unit),
		referenced: make(map[int64]bool),
	}
}

func (r *fakeUnitRepo) Create(_ context.Context, unit *model.Unit) error {
	r.nextID++
	unit.ID = r.nextID
	copied := *unit
	r.units[unit.ID] = &copied
	return nil
}

func (r *fakeUnitRepo) Get(_ context.Context, id int64) (*model.Unit, error) {
	r.getCalls++
	u, ok := r.units[id]
	if !ok {
		return nil, apperrors.NewNotFound("unidade não encontrada")
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUnitRepo) List(_ context.Context) ([]*model.Unit, error) {
	r.listCalls++
	units := make([]*model.Unit, 0, len(r.units))
	for _, u := range r.units {
		copied := *u
		units = append(units, &copied)
	}
	return units, nil
}

func (r *fakeUnitRepo) Update(_ context.Context, unit *model.Unit) error {
	if _, ok := r.units[unit.ID]; !ok {
		return apperrors.NewNotFound("unidade não encontrada")
	}
	copied := *unit
	r.units[unit.ID] = &copied
	return nil
}

func (r *fakeUnitRepo) Delete(_ context.Context, id int64) error {
	delete(r.units, id)
	return nil
}

func (r *fakeUnitRepo) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.units[id]
	return ok, nil
}

func (r *fakeUnitRepo) HasProfessionals(_ context.Context, id int64) (bool, error) {
	return r.referenced[id], nil
}

func createUnit(t *testing.T, svc *Service) *model.Unit {
	t.Helper()
	unit, err := svc.Create(context.Background(), &model.CreateUnitRequest{
		Name:    "Hospital Central",
		Type:    model.UnitTypeHospital,
		Address: "Av. Brasil, 1000",
		Phone:   "(11) 3000-0000",
	})
	require.NoError(t, err)
	return unit
}

func TestGetUsesCache(t *testing.T) {
	repo := newFakeUnitRepo()
	svc := NewService(repo)
	unit := createUnit(t, svc)

	first, err := svc.Get(context.Background(), unit.ID)
	require.NoError(t, err)
	second, err := svc.Get(context.Background(), unit.ID)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getCalls)
}

func TestListUsesCache(t *testing.T) {
	repo := newFakeUnitRepo()
	svc := NewService(repo)
	createUnit(t, svc)

	_, err := svc.List(context.Background())
	require.NoError(t, err)
	_, err = svc.List(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.listCalls)
}

func TestUpdateFlushesCache(t *testing.T) {
	repo := newFakeUnitRepo()
	svc := NewService(repo)
	unit := createUnit(t, svc)

	_, err := svc.Get(context.Background(), unit.ID)
	require.NoError(t, err)

	name := "Hospital Central Renomeado"
	_, err = svc.Update(context.Background(), unit.ID, &model.UpdateUnitRequest{Name: &name})
	require.NoError(t, err)

	refreshed, err := svc.Get(context.Background(), unit.ID)
	require.NoError(t, err)
	assert.Equal(t, name, refreshed.Name)
}

func TestDelete(t *testing.T) {
	repo := newFakeUnitRepo()
	svc := NewService(repo)
	unit := createUnit(t, svc)

	require.NoError(t, svc.Delete(context.Background(), unit.ID))
	assert.Empty(t, repo.units)
}

func TestDeleteUnknownUnit(t *testing.T) {
	svc := NewService(newFakeUnitRepo())

	err := svc.Delete(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrNotFound))
}

// A unit with professionals attached cannot be removed.
func TestDeleteReferencedUnit(t *testing.T) {
	repo := newFakeUnitRepo()
	svc := NewService(repo)
	unit := createUnit(t, svc)
	repo.referenced[unit.ID] = true

	err := svc.Delete(context.Background(), unit.ID)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrConflict))
	assert.Equal(t, "unidade possui profissionais vinculados", apperrors.MessageOf(err))
	assert.Len(t, repo.units, 1)
}
