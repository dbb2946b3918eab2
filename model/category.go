package model

// CategoryEntity represents the category table entity
type CategoryEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type CategoryRequest struct {
	Name string `json:"name" validate:"required"`
}
