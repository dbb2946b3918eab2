package model

import (
	"strconv"
	"time"

	"github.com/halobenaya/storefront/constant"
)

type OrderItemRequest struct {
	ProductID uint64 `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type OrderDetailRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Notes      string `json:"notes,omitempty"`
}

type OrderRequest struct {
	Items  []OrderItemRequest  `json:"items"`
	Detail *OrderDetailRequest `json:"detail"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderEntity represents the order table entity
type OrderEntity struct {
	ID        uint64               `db:"id"`
	UserID    uint64               `db:"user_id"`
	Code      string               `db:"code"`
	Total     int64                `db:"total"`
	Status    constant.OrderStatus `db:"status"`
	CreatedAt time.Time            `db:"created_at"`
}

// OrderDetailEntity is the 1:1 shipping/contact record of an order
type OrderDetailEntity struct {
	OrderID    uint64  `db:"order_id" json:"-"`
	Name       string  `db:"name" json:"name"`
	Phone      string  `db:"phone" json:"phone"`
	Address    string  `db:"address" json:"address"`
	City       string  `db:"city" json:"city"`
	PostalCode string  `db:"postal_code" json:"postal_code"`
	Notes      *string `db:"notes" json:"notes,omitempty"`
}

// OrderItemEntity is one product/quantity line with its price snapshot
type OrderItemEntity struct {
	ID          uint64 `db:"id"`
	OrderID     uint64 `db:"order_id"`
	ProductID   uint64 `db:"product_id"`
	ProductName string `db:"product_name"`
	Quantity    int    `db:"quantity"`
	SubTotal    int64  `db:"sub_total"`
}

// InsertOrderTxItem carries the order row fields for the transactional insert
type InsertOrderTxItem struct {
	UserID uint64
	Code   string
	Total  int64
	Status constant.OrderStatus
}

// InsertOrderItemTx is one precomputed line for the transactional insert
type InsertOrderItemTx struct {
	ProductID uint64
	Quantity  int
	SubTotal  int64
}

// OrderItemResponse serializes the sub-total as a decimal string so the
// BIGINT money column survives transport without precision loss.
type OrderItemResponse struct {
	ID          uint64 `json:"id"`
	ProductID   uint64 `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	SubTotal    string `json:"sub_total"`
}

type OrderResponse struct {
	ID        uint64               `json:"id"`
	UserID    uint64               `json:"user_id"`
	Code      string               `json:"code"`
	Total     string               `json:"total"`
	Status    constant.OrderStatus `json:"status"`
	CreatedAt time.Time            `json:"created_at"`
	Detail    *OrderDetailEntity   `json:"detail,omitempty"`
	Items     []OrderItemResponse  `json:"items"`
	User      *UserSummary         `json:"user,omitempty"`
}

// NewOrderResponse assembles the transport shape of an order aggregate
func NewOrderResponse(order *OrderEntity, detail *OrderDetailEntity, items []OrderItemEntity, user *UserSummary) *OrderResponse {
	resp := &OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Code:      order.Code,
		Total:     strconv.FormatInt(order.Total, 10),
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		Detail:    detail,
		Items:     make([]OrderItemResponse, 0, len(items)),
		User:      user,
	}
	for _, it := range items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			SubTotal:    strconv.FormatInt(it.SubTotal, 10),
		})
	}
	return resp
}
