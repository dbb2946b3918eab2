package location

import (
	"context"
	"database/sql"

	"github.com/halobenaya/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type LocationRepository interface {
	Create(ctx context.Context, data *model.LocationEntity) (*model.LocationEntity, error)
	Update(ctx context.Context, data *model.LocationEntity) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.LocationEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.LocationEntity, error)
}

func NewLocationRepository(conn *sqlx.DB) LocationRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Create(ctx context.Context, data *model.LocationEntity) (*model.LocationEntity, error) {
	result, err := s.conn.ExecContext(ctx, "INSERT INTO location (name) VALUES (?)", data.Name)
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

func (s *SQL) Update(ctx context.Context, data *model.LocationEntity) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE location SET name = ? WHERE id = ?", data.Name, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM location WHERE id = ?", id)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.LocationEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, name FROM location ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	locations := make([]model.LocationEntity, 0)
	for rows.Next() {
		var l model.LocationEntity
		if err := rows.StructScan(&l); err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.LocationEntity, error) {
	var l model.LocationEntity
	if err := s.conn.QueryRowxContext(ctx, "SELECT id, name FROM location WHERE id = ?", id).StructScan(&l); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}
