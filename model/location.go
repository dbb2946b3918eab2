package model

// LocationEntity represents the location table entity
type LocationEntity struct {
	ID   uint64 `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type LocationRequest struct {
	Name string `json:"name" validate:"required"`
}
