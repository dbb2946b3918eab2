package brand

import (
	"context"
	"database/sql"

	"github.com/halobenaya/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type BrandRepository interface {
	Create(ctx context.Context, data *model.BrandEntity) (*model.BrandEntity, error)
	Update(ctx context.Context, data *model.BrandEntity) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.BrandEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.BrandEntity, error)
}

func NewBrandRepository(conn *sqlx.DB) BrandRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Create(ctx context.Context, data *model.BrandEntity) (*model.BrandEntity, error) {
	result, err := s.conn.ExecContext(ctx, "INSERT INTO brand (name, logo) VALUES (?, ?)", data.Name, data.Logo)
	if err != nil {
		return nil, err
	}
	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Update(ctx context.Context, data *model.BrandEntity) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE brand SET name = ?, logo = ? WHERE id = ?", data.Name, data.Logo, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM brand WHERE id = ?", id)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.BrandEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, name, logo FROM brand ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	brands := make([]model.BrandEntity, 0)
	for rows.Next() {
		var b model.BrandEntity
		if err := rows.StructScan(&b); err != nil {
			return nil, err
		}
		brands = append(brands, b)
	}
	return brands, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.BrandEntity, error) {
	var b model.BrandEntity
	if err := s.conn.QueryRowxContext(ctx, "SELECT id, name, logo FROM brand WHERE id = ?", id).StructScan(&b); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &b, nil
}
