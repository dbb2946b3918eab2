package model

import (
	"time"

	"github.com/halobenaya/storefront/constant"
)

// ProductEntity represents the product table entity. Price is stored in
// integer currency units; Images is persisted as a JSON array column.
type ProductEntity struct {
	ID          uint64                `db:"id" json:"id"`
	BrandID     uint64                `db:"brand_id" json:"brand_id"`
	CategoryID  uint64                `db:"category_id" json:"category_id"`
	LocationID  uint64                `db:"location_id" json:"location_id"`
	Name        string                `db:"name" json:"name"`
	Description string                `db:"description" json:"description"`
	Price       int64                 `db:"price" json:"price"`
	Images      []string              `db:"-" json:"images"`
	Stock       constant.ProductStock `db:"stock" json:"stock"`
	CreatedAt   time.Time             `db:"created_at" json:"created_at"`
}

// ProductListItem carries the joined brand/category/location names
type ProductListItem struct {
	ID           uint64                `db:"id" json:"id"`
	Name         string                `db:"name" json:"name"`
	Price        int64                 `db:"price" json:"price"`
	Stock        constant.ProductStock `db:"stock" json:"stock"`
	BrandName    string                `db:"brand_name" json:"brand_name"`
	CategoryName string                `db:"category_name" json:"category_name"`
	LocationName string                `db:"location_name" json:"location_name"`
}

// ProductPrice is the authoritative price snapshot used by order placement
type ProductPrice struct {
	ID    uint64 `db:"id"`
	Name  string `db:"name"`
	Price int64  `db:"price"`
}

type CreateProductRequest struct {
	BrandID     uint64   `json:"brand_id" validate:"required"`
	CategoryID  uint64   `json:"category_id" validate:"required"`
	LocationID  uint64   `json:"location_id" validate:"required"`
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Images      []string `json:"images" validate:"required,min=1,dive,required"`
	Stock       string   `json:"stock" validate:"required"`
}

// UpdateProductRequest is partial; nil fields are left untouched
type UpdateProductRequest struct {
	BrandID     *uint64   `json:"brand_id,omitempty"`
	CategoryID  *uint64   `json:"category_id,omitempty"`
	LocationID  *uint64   `json:"location_id,omitempty"`
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int64    `json:"price,omitempty"`
	Images      *[]string `json:"images,omitempty"`
	Stock       *string   `json:"stock,omitempty"`
}
