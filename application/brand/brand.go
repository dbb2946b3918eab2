package brand

import (
	"context"
	"fmt"
	"strings"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	brandrepo "github.com/halobenaya/storefront/repository/brand"
	productrepo "github.com/halobenaya/storefront/repository/product"
	"github.com/halobenaya/storefront/utils/errors"
	"github.com/halobenaya/storefront/utils/logger"
	"go.uber.org/zap"
)

type BrandApp interface {
	CreateBrand(ctx context.Context, req *model.CreateBrandRequest) (*model.BrandEntity, error)
	UpdateBrand(ctx context.Context, id uint64, req *model.UpdateBrandRequest) (*model.BrandEntity, error)
	DeleteBrand(ctx context.Context, id uint64) error
	ListBrands(ctx context.Context) ([]model.BrandEntity, error)
	GetBrand(ctx context.Context, id uint64) (*model.BrandEntity, error)
}

type brandAppImpl struct {
	brandRepo   brandrepo.BrandRepository
	productRepo productrepo.ProductRepository
}

func NewBrandApp(brandRepo brandrepo.BrandRepository, productRepo productrepo.ProductRepository) BrandApp {
	return &brandAppImpl{brandRepo: brandRepo, productRepo: productRepo}
}

func (s *brandAppImpl) CreateBrand(ctx context.Context, req *model.CreateBrandRequest) (*model.BrandEntity, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "brand name is required")
	}
	logo := strings.TrimSpace(req.Logo)
	if logo == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "brand logo is required")
	}

	entity, err := s.brandRepo.Create(ctx, &model.BrandEntity{Name: name, Logo: logo})
	if err != nil {
		logger.Error("[CreateBrand] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *brandAppImpl) UpdateBrand(ctx context.Context, id uint64, req *model.UpdateBrandRequest) (*model.BrandEntity, error) {
	entity, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateBrand] get brand", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "brand not found")
	}

	name := strings.TrimSpace(req.Name)
	logo := strings.TrimSpace(req.Logo)
	if name == "" && logo == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "no valid fields to update")
	}
	if name != "" {
		entity.Name = name
	}
	if logo != "" {
		entity.Logo = logo
	}

	if err := s.brandRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateBrand] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *brandAppImpl) DeleteBrand(ctx context.Context, id uint64) error {
	entity, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteBrand] get brand", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomErrorMsg(constant.ErrNotFound, "brand not found")
	}

	linked, err := s.productRepo.CountByBrand(ctx, id)
	if err != nil {
		logger.Error("[DeleteBrand] count linked products", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if linked > 0 {
		return errors.SetCustomErrorMsg(constant.ErrConflict, fmt.Sprintf("%d product(s) linked to this brand", linked))
	}

	if err := s.brandRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteBrand] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *brandAppImpl) ListBrands(ctx context.Context) ([]model.BrandEntity, error) {
	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		logger.Error("[ListBrands] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return brands, nil
}

func (s *brandAppImpl) GetBrand(ctx context.Context, id uint64) (*model.BrandEntity, error) {
	entity, err := s.brandRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetBrand] get brand", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "brand not found")
	}
	return entity, nil
}
