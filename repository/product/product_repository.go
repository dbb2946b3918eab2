package product

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/halobenaya/storefront/model"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error)
	Update(ctx context.Context, data *model.ProductEntity) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context) ([]model.ProductListItem, error)
	GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetByIDs(ctx context.Context, ids []uint64) ([]model.ProductPrice, error)
	CountByBrand(ctx context.Context, brandID uint64) (int64, error)
	CountByCategory(ctx context.Context, categoryID uint64) (int64, error)
	CountByLocation(ctx context.Context, locationID uint64) (int64, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	insertProductQuery = `INSERT INTO product (brand_id, category_id, location_id, name, description, price, images, stock, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateProductQuery = `UPDATE product SET brand_id = ?, category_id = ?, location_id = ?, name = ?, description = ?, price = ?, images = ?, stock = ? WHERE id = ?`

	listProductsQuery = `SELECT p.id, p.name, p.price, p.stock, b.name as brand_name, c.name as category_name, l.name as location_name
FROM product p
JOIN brand b ON p.brand_id = b.id
JOIN category c ON p.category_id = c.id
JOIN location l ON p.location_id = l.id
ORDER BY p.id`

	getProductQuery = `SELECT id, brand_id, category_id, location_id, name, description, price, images, stock, created_at FROM product WHERE id = ?`

	getProductPricesBase = `SELECT id, name, price FROM product WHERE id IN (?)`
)

// productRow scans the raw images JSON column alongside the entity fields
type productRow struct {
	model.ProductEntity
	ImagesRaw []byte `db:"images"`
}

func (s *SQL) Create(ctx context.Context, data *model.ProductEntity) (*model.ProductEntity, error) {
	images, err := json.Marshal(data.Images)
	if err != nil {
		return nil, err
	}

	result, err := s.conn.ExecContext(ctx, insertProductQuery,
		data.BrandID, data.CategoryID, data.LocationID, data.Name, data.Description, data.Price, images, data.Stock)
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

func (s *SQL) Update(ctx context.Context, data *model.ProductEntity) error {
	images, err := json.Marshal(data.Images)
	if err != nil {
		return err
	}

	_, err = s.conn.ExecContext(ctx, updateProductQuery,
		data.BrandID, data.CategoryID, data.LocationID, data.Name, data.Description, data.Price, images, data.Stock, data.ID)
	return err
}

func (s *SQL) Delete(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, "DELETE FROM product WHERE id = ?", id)
	return err
}

func (s *SQL) List(ctx context.Context) ([]model.ProductListItem, error) {
	rows, err := s.conn.QueryxContext(ctx, listProductsQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.ProductListItem, 0)
	for rows.Next() {
		var it model.ProductListItem
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var row productRow
	if err := s.conn.QueryRowxContext(ctx, getProductQuery, id).StructScan(&row); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	entity := row.ProductEntity
	if len(row.ImagesRaw) > 0 {
		if err := json.Unmarshal(row.ImagesRaw, &entity.Images); err != nil {
			return nil, err
		}
	}
	return &entity, nil
}

// GetByIDs returns the authoritative price snapshot for the given product
// ids in one batch. Unknown ids are simply omitted from the result.
func (s *SQL) GetByIDs(ctx context.Context, ids []uint64) ([]model.ProductPrice, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(getProductPricesBase, ids)
	if err != nil {
		return nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, s.conn.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	prices := make([]model.ProductPrice, 0, len(ids))
	for rows.Next() {
		var p model.ProductPrice
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		prices = append(prices, p)
	}
	return prices, rows.Err()
}

func (s *SQL) CountByBrand(ctx context.Context, brandID uint64) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM product WHERE brand_id = ?", brandID)
}

func (s *SQL) CountByCategory(ctx context.Context, categoryID uint64) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM product WHERE category_id = ?", categoryID)
}

func (s *SQL) CountByLocation(ctx context.Context, locationID uint64) (int64, error) {
	return s.count(ctx, "SELECT COUNT(*) FROM product WHERE location_id = ?", locationID)
}

func (s *SQL) count(ctx context.Context, query string, arg uint64) (int64, error) {
	var total int64
	if err := s.conn.GetContext(ctx, &total, query, arg); err != nil {
		return 0, err
	}
	return total, nil
}
