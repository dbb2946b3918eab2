package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	categoryrepo "github.com/halobenaya/storefront/repository/category"
	productrepo "github.com/halobenaya/storefront/repository/product"
	"github.com/halobenaya/storefront/utils/errors"
	"github.com/halobenaya/storefront/utils/logger"
	"go.uber.org/zap"
)

type CategoryApp interface {
	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error)
	UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.CategoryEntity, error)
	DeleteCategory(ctx context.Context, id uint64) error
	ListCategories(ctx context.Context) ([]model.CategoryEntity, error)
	GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error)
}

type categoryAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
	productRepo  productrepo.ProductRepository
}

func NewCategoryApp(categoryRepo categoryrepo.CategoryRepository, productRepo productrepo.ProductRepository) CategoryApp {
	return &categoryAppImpl{categoryRepo: categoryRepo, productRepo: productRepo}
}

func (s *categoryAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "category name is required")
	}

	entity, err := s.categoryRepo.Create(ctx, &model.CategoryEntity{Name: name})
	if err != nil {
		logger.Error("[CreateCategory] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *categoryAppImpl) UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.CategoryEntity, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "category name is required")
	}

	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateCategory] get category", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "category not found")
	}

	entity.Name = name
	if err := s.categoryRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateCategory] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *categoryAppImpl) DeleteCategory(ctx context.Context, id uint64) error {
	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteCategory] get category", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomErrorMsg(constant.ErrNotFound, "category not found")
	}

	linked, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		logger.Error("[DeleteCategory] count linked products", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if linked > 0 {
		return errors.SetCustomErrorMsg(constant.ErrConflict, fmt.Sprintf("cannot delete this category, %d product(s) still linked to it", linked))
	}

	if err := s.categoryRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteCategory] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *categoryAppImpl) ListCategories(ctx context.Context) ([]model.CategoryEntity, error) {
	categories, err := s.categoryRepo.List(ctx)
	if err != nil {
		logger.Error("[ListCategories] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *categoryAppImpl) GetCategory(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	entity, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCategory] get category", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "category not found")
	}
	return entity, nil
}
