package product

import (
	"context"
	"strings"

	"github.com/halobenaya/storefront/constant"
	"github.com/halobenaya/storefront/model"
	brandrepo "github.com/halobenaya/storefront/repository/brand"
	categoryrepo "github.com/halobenaya/storefront/repository/category"
	locationrepo "github.com/halobenaya/storefront/repository/location"
	productrepo "github.com/halobenaya/storefront/repository/product"
	"github.com/halobenaya/storefront/utils/errors"
	"github.com/halobenaya/storefront/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error)
	DeleteProduct(ctx context.Context, id uint64) error
	ListProducts(ctx context.Context) ([]model.ProductListItem, error)
	GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error)
}

type productAppImpl struct {
	productRepo  productrepo.ProductRepository
	brandRepo    brandrepo.BrandRepository
	categoryRepo categoryrepo.CategoryRepository
	locationRepo locationrepo.LocationRepository
}

func NewProductApp(productRepo productrepo.ProductRepository, brandRepo brandrepo.BrandRepository, categoryRepo categoryrepo.CategoryRepository, locationRepo locationrepo.LocationRepository) ProductApp {
	return &productAppImpl{
		productRepo:  productRepo,
		brandRepo:    brandRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *productAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.ProductEntity, error) {
	stock := constant.ProductStock(req.Stock)
	if !stock.Valid() {
		return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "stock must be either 'ready' or 'preorder'")
	}

	if err := s.checkReferences(ctx, req.BrandID, req.CategoryID, req.LocationID); err != nil {
		return nil, err
	}

	entity := &model.ProductEntity{
		BrandID:     req.BrandID,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		Price:       req.Price,
		Images:      req.Images,
		Stock:       stock,
	}

	entity, err := s.productRepo.Create(ctx, entity)
	if err != nil {
		logger.Error("[CreateProduct] create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *productAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.ProductEntity, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "product not found")
	}

	if req.Stock != nil {
		stock := constant.ProductStock(*req.Stock)
		if !stock.Valid() {
			return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "stock must be either 'ready' or 'preorder'")
		}
		entity.Stock = stock
	}
	if req.Name != nil && strings.TrimSpace(*req.Name) != "" {
		entity.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil && *req.Description != "" {
		entity.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "price must be a positive number")
		}
		entity.Price = *req.Price
	}
	if req.Images != nil && len(*req.Images) > 0 {
		entity.Images = *req.Images
	}
	if req.BrandID != nil {
		entity.BrandID = *req.BrandID
	}
	if req.CategoryID != nil {
		entity.CategoryID = *req.CategoryID
	}
	if req.LocationID != nil {
		entity.LocationID = *req.LocationID
	}

	if req.BrandID != nil || req.CategoryID != nil || req.LocationID != nil {
		if err := s.checkReferences(ctx, entity.BrandID, entity.CategoryID, entity.LocationID); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Update(ctx, entity); err != nil {
		logger.Error("[UpdateProduct] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return entity, nil
}

func (s *productAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeleteProduct] get product", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomErrorMsg(constant.ErrNotFound, "product not found")
	}

	if err := s.productRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *productAppImpl) ListProducts(ctx context.Context) ([]model.ProductListItem, error) {
	items, err := s.productRepo.List(ctx)
	if err != nil {
		logger.Error("[ListProducts] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *productAppImpl) GetProduct(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	entity, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] get product", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomErrorMsg(constant.ErrNotFound, "product not found")
	}
	return entity, nil
}

func (s *productAppImpl) checkReferences(ctx context.Context, brandID, categoryID, locationID uint64) error {
	brand, err := s.brandRepo.GetByID(ctx, brandID)
	if err != nil {
		logger.Error("[Product] get brand", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if brand == nil {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "brand_id does not reference an existing brand")
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		logger.Error("[Product] get category", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "category_id does not reference an existing category")
	}

	location, err := s.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		logger.Error("[Product] get location", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if location == nil {
		return errors.SetCustomErrorMsg(constant.ErrInvalidRequest, "location_id does not reference an existing location")
	}
	return nil
}
