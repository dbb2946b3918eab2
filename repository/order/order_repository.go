package order

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/halobenaya/storefront/model"
	"github.com/jmoiron/sqlx"
)

// ErrDuplicateCode is returned when the order insert hits the unique
// constraint on the code column, so the caller can retry with a fresh code.
var ErrDuplicateCode = errors.New("order code already exists")

const mysqlDuplicateEntry = 1062

type SQL struct {
	conn *sqlx.DB
}

type OrderFilter struct {
	UserID uint64
}

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error)
	InsertOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, detail *model.OrderDetailRequest) error
	InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.InsertOrderItemTx) error
	GetOrderByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error)
	GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetailEntity, error)
	GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error)
	ListOrders(ctx context.Context, filter *OrderFilter) ([]model.OrderEntity, error)
	UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error
	UpdateOrderStatusIf(ctx context.Context, orderID uint64, from, to string) (bool, error)
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

const (
	insertOrderQuery = "INSERT INTO `order` (user_id, code, total, status, created_at) VALUES (?, ?, ?, ?, NOW())"

	insertOrderDetailQuery = `INSERT INTO order_detail (order_id, name, phone, address, city, postal_code, notes) VALUES (?, ?, ?, ?, ?, ?, ?)`

	insertOrderItemQuery = `INSERT INTO order_item (order_id, product_id, quantity, sub_total) VALUES (?, ?, ?, ?)`

	getOrderQuery = "SELECT id, user_id, code, total, status, created_at FROM `order` WHERE id = ?"

	getOrderDetailQuery = `SELECT order_id, name, phone, address, city, postal_code, notes FROM order_detail WHERE order_id = ?`

	getOrderItemsQuery = `SELECT oi.id, oi.order_id, oi.product_id, p.name as product_name, oi.quantity, oi.sub_total
FROM order_item oi
JOIN product p ON oi.product_id = p.id
WHERE oi.order_id = ?
ORDER BY oi.id`

	listOrdersBase = "SELECT id, user_id, code, total, status, created_at FROM `order` WHERE true"
)

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, req *model.InsertOrderTxItem) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertOrderQuery, req.UserID, req.Code, req.Total, req.Status)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return 0, ErrDuplicateCode
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderDetailTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, detail *model.OrderDetailRequest) error {
	var notes any
	if detail.Notes != "" {
		notes = detail.Notes
	}
	_, err := tx.ExecContext(ctx, insertOrderDetailQuery,
		orderID, detail.Name, detail.Phone, detail.Address, detail.City, detail.PostalCode, notes)
	return err
}

func (r *SQL) InsertOrderItemsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, items []model.InsertOrderItemTx) error {
	for _, it := range items {
		if _, err := tx.ExecContext(ctx, insertOrderItemQuery, orderID, it.ProductID, it.Quantity, it.SubTotal); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQL) GetOrderByID(ctx context.Context, orderID uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	if err := r.conn.QueryRowxContext(ctx, getOrderQuery, orderID).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetailEntity, error) {
	var detail model.OrderDetailEntity
	if err := r.conn.QueryRowxContext(ctx, getOrderDetailQuery, orderID).StructScan(&detail); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *SQL) GetOrderItems(ctx context.Context, orderID uint64) ([]model.OrderItemEntity, error) {
	rows, err := r.conn.QueryxContext(ctx, getOrderItemsQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.OrderItemEntity, 0)
	for rows.Next() {
		var it model.OrderItemEntity
		if err := rows.StructScan(&it); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *SQL) ListOrders(ctx context.Context, filter *OrderFilter) ([]model.OrderEntity, error) {
	query := listOrdersBase
	args := make([]any, 0, 1)

	if filter != nil && filter.UserID != 0 {
		query += " AND user_id = ?"
		args = append(args, filter.UserID)
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]model.OrderEntity, 0)
	for rows.Next() {
		var o model.OrderEntity
		if err := rows.StructScan(&o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *SQL) UpdateOrderStatus(ctx context.Context, orderID uint64, status string) error {
	_, err := r.conn.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, orderID)
	return err
}

// UpdateOrderStatusIf transitions the status only when the current value
// matches, reporting whether a row actually changed.
func (r *SQL) UpdateOrderStatusIf(ctx context.Context, orderID uint64, from, to string) (bool, error) {
	res, err := r.conn.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ? AND status = ?", to, orderID, from)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
