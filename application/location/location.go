package location

import (
	"context"
	"fmt"
	"strings"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	locationrepo "github.com/halobenaya/storefront/repository/location"
	productrepo "github.com/halobenaya/storefront/repository/product"
	"github.com/halobenaya/storefront/utils/errors"
	"github.com/halobenaya/storefront/utils/logger"
	"go.uber.org/zap"
)

type LocationApp interface {
	CreateLocation(ctx context.Context, req *model.LocationRequest) (*model.LocationEntity, error)
	UpdateLocation(ctx context.Context, id uint64, req *model.LocationRequest) (*model.LocationEntity, error)
	DeleteLocation(ctx context.Context, id uint64) error
	ListLocations(ctx context.Context) ([]model.LocationEntity, error)
	GetLocation(ctx context.Context, id uint64) (*model.LocationEntity, error)
}

type locationAppImpl struct {
	locationRepo locationrepo.LocationRepository
	productRepo  productrepo.ProductRepository
}

func NewLocationApp(locationRepo locationrepo.LocationRepository, productRepo productrepo.ProductRepository) LocationApp {
	return &locationAppImpl{locationRepo: locationRepo, productRepo: productRepo}
}

func (s *locationAppImpl) CreateLocation(ctx context.Context, req *model.LocationRequest) (*model.LocationEntity, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "location name is required")
	}

	entity, err := s.locationRepo.Create(ctx, &model.LocationEntity{Name: name})
	if err != nil {
		logger.Error("[CreateLocation] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *locationAppImpl) UpdateLocation(ctx context.Context, id uint64, req *model.LocationRequest) (*model.LocationEntity, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "location name is required")
	}

	entity, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateLocation] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "location not found")
	}

	entity.Name = name
	if err := s.locationRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateLocation] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *locationAppImpl) DeleteLocation(ctx context.Context, id uint64) error {
	entity, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteLocation] get location", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomErrorMsg(constant.ErrNotFound, "location not found")
	}

	linked, err := s.productRepo.CountByLocation(ctx, id)
	if err != nil {
		logger.Error("[DeleteLocation] count linked products", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if linked > 0 {
		return errors.SetCustomErrorMsg(constant.ErrConflict, fmt.Sprintf("%d product(s) linked to this location", linked))
	}

	if err := s.locationRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteLocation] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *locationAppImpl) ListLocations(ctx context.Context) ([]model.LocationEntity, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		logger.Error("[ListLocations] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return locations, nil
}

func (s *locationAppImpl) GetLocation(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	entity, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetLocation] get location", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "location not found")
	}
	return entity, nil
}
