package model

// BrandEntity represents the brand table entity
type BrandEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
	Logo string `db:"logo" json:"logo"`
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo" validate:"required"`
}

// UpdateBrandRequest is partial; blank fields are left untouched
type UpdateBrandRequest struct {
	Name string `json:"name"`
	Logo string `json:"logo"`
}
