package unit

import (
	"context"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/vidaplus/sghss-api/internal/model"
	"github.com/vidaplus/sghss-api/internal/repository"
	apperrors "github.com/vidaplus/sghss-api/pkg/errors"
)

const (
	cacheTTL     = 30 * time.Second
	listCacheKey = "units:all"
)

// Service manages care units. Units are near-static reference data, so reads
// go through a short-lived cache that every mutation flushes. Foreign-key
// existence checks in other services hit the repository directly, never this
// cache.
type Service struct {
	repo  repository.UnitRepository
	cache *gocache.Cache
}

func NewService(repo repository.UnitRepository) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

func unitCacheKey(id int64) string {
	return fmt.Sprintf("units:%d", id)
}

func (s *Service) Create(ctx context.Context, req *model.CreateUnitRequest) (*model.Unit, error) {
	unit := &model.Unit{
		Name:    req.Name,
		Type:    req.Type,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := s.repo.Create(ctx, unit); err != nil {
		return nil, err
	}

	s.cache.Flush()
	return unit, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*model.Unit, error) {
	if cached, ok := s.cache.Get(unitCacheKey(id)); ok {
		return cached.(*model.Unit), nil
	}

	unit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	s.cache.Set(unitCacheKey(id), unit, cacheTTL)
	return unit, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Unit, error) {
	if cached, ok := s.cache.Get(listCacheKey); ok {
		return cached.([]*model.Unit), nil
	}

	units, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(listCacheKey, units, cacheTTL)
	return units, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *model.UpdateUnitRequest) (*model.Unit, error) {
	unit, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		unit.Name = *req.Name
	}
	if req.Type != nil {
		unit.Type = *req.Type
	}
	if req.Address != nil {
		unit.Address = *req.Address
	}
	if req.Phone != nil {
		unit.Phone = *req.Phone
	}

	if err := s.repo.Update(ctx, unit); err != nil {
		return nil, err
	}

	s.cache.Flush()
	return unit, nil
}

// Delete refuses to remove a unit that professionals still reference. The
// ON DELETE RESTRICT constraint enforces the same policy at the store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NewNotFound("unidade não encontrada")
	}

	referenced, err := s.repo.HasProfessionals(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return apperrors.NewConflict("unidade possui profissionais vinculados")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Flush()
	return nil
}
