package brand_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	appbrand "github.com/halobenaya/storefront/application/brand"
	"github.com/halobenaya/storefront/constant"
	brandmocks "github.com/halobenaya/storefront/mocks/repository/brand"
	productmocks "github.com/halobenaya/storefront/mocks/repository/product"
	"github.com/halobenaya/storefront/model"
	cerr "github.com/halobenaya/storefront/utils/errors"
	"github.com/stretchr/testify/mock"
)

func TestBrandApp_CreateBrand(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.CreateBrandRequest
		mockCall func(brandRepo *brandmocks.BrandRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: create brand with trimmed name",
			req:  &model.CreateBrandRequest{Name: "  Acme  ", Logo: "https://cdn.example.com/acme.png"},
			mockCall: func(brandRepo *brandmocks.BrandRepository) {
				brandRepo.On("Create", mock.Anything, &model.BrandEntity{
					Name: "Acme",
					Logo: "https://cdn.example.com/acme.png",
				}).Return(&model.BrandEntity{ID: 1, Name: "Acme"}, nil).Once()
			},
		},
		{
			name:    "error: blank name",
			req:     &model.CreateBrandRequest{Name: "   ", Logo: "https://cdn.example.com/acme.png"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name:    "error: missing logo",
			req:     &model.CreateBrandRequest{Name: "Acme"},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			brandRepo := brandmocks.NewBrandRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(brandRepo)
			}
			app := appbrand.NewBrandApp(brandRepo, productmocks.NewProductRepository(t))

			got, err := app.CreateBrand(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateBrand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.ID == 0 {
				t.Fatal("CreateBrand() should return the stored entity")
			}
		})
	}
}

func TestBrandApp_DeleteBrand(t *testing.T) {
	type fields struct {
		brandRepo   *brandmocks.BrandRepository
		productRepo *productmocks.ProductRepository
	}
	tests := []struct {
		name        string
		id          uint64
		mockCall    func(f fields)
		wantErr     bool
		errCode     constant.ErrorType
		errContains string
	}{
		{
			name: "success: delete unreferenced brand",
			id:   1,
			mockCall: func(f fields) {
				f.brandRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.BrandEntity{ID: 1}, nil).Once()
				f.productRepo.On("CountByBrand", mock.Anything, uint64(1)).Return(int64(0), nil).Once()
				f.brandRepo.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()
			},
		},
		{
			name: "error: brand still referenced by products",
			id:   1,
			mockCall: func(f fields) {
				f.brandRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.BrandEntity{ID: 1}, nil).Once()
				f.productRepo.On("CountByBrand", mock.Anything, uint64(1)).Return(int64(3), nil).Once()
			},
			wantErr:     true,
			errCode:     constant.ErrConflict,
			errContains: "3 product(s)",
		},
		{
			name: "error: brand not found",
			id:   404,
			mockCall: func(f fields) {
				f.brandRepo.On("GetByID", mock.Anything, uint64(404)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				brandRepo:   brandmocks.NewBrandRepository(t),
				productRepo: productmocks.NewProductRepository(t),
			}
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			app := appbrand.NewBrandApp(f.brandRepo, f.productRepo)

			err := app.DeleteBrand(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteBrand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Fatalf("error message = %q, want it to mention %q", err.Error(), tt.errContains)
				}
			}
		})
	}
}

func TestBrandApp_UpdateBrand(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		req      *model.UpdateBrandRequest
		mockCall func(brandRepo *brandmocks.BrandRepository)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: rename only",
			id:   1,
			req:  &model.UpdateBrandRequest{Name: "New Acme"},
			mockCall: func(brandRepo *brandmocks.BrandRepository) {
				brandRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.BrandEntity{
					ID: 1, Name: "Acme", Logo: "logo.png",
				}, nil).Once()
				brandRepo.On("Update", mock.Anything, mock.MatchedBy(func(ent *model.BrandEntity) bool {
					return ent.Name == "New Acme" && ent.Logo == "logo.png"
				})).Return(nil).Once()
			},
		},
		{
			name: "error: nothing to update",
			id:   1,
			req:  &model.UpdateBrandRequest{Name: "  ", Logo: ""},
			mockCall: func(brandRepo *brandmocks.BrandRepository) {
				brandRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.BrandEntity{ID: 1}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			brandRepo := brandmocks.NewBrandRepository(t)
			if tt.mockCall != nil {
				tt.mockCall(brandRepo)
			}
			app := appbrand.NewBrandApp(brandRepo, productmocks.NewProductRepository(t))

			_, err := app.UpdateBrand(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateBrand() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
