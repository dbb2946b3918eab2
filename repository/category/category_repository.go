package category

import (
	"context"
	"database/sql"

	"github.com/halobenaya/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type CategoryRepository interface {
	Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error)
	Update(ctx context.Context, data *model.CategoryEntity) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.CategoryEntity, error)
	GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error)
}

func NewCategoryRepository(conn *sqlx.DB) CategoryRepository {
	return &SQL{conn: conn}
}

func (s *SQL) Create(ctx context.Context, data *model.CategoryEntity) (*model.CategoryEntity, error) {
	result, err := s.conn.ExecContext(ctx, "INSERT INTO category (name) VALUES (?)", data.Name)
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

func (s *SQL) Update(ctx context.Context, data *model.CategoryEntity) error {
	_, err := s.conn.ExecContext(ctx, "UPDATE category SET name = ? WHERE id = ?", data.Name, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM category WHERE id = ?", id)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.CategoryEntity, error) {
	rows, err := s.conn.QueryxContext(ctx, "SELECT id, name FROM category ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]model.CategoryEntity, 0)
	for rows.Next() {
		var c model.CategoryEntity
		if err := rows.StructScan(&c); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.CategoryEntity, error) {
	var c model.CategoryEntity
	if err := s.conn.QueryRowxContext(ctx, "SELECT id, name FROM category WHERE id = ?", id).StructScan(&c); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}
