package constant

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
	OrderStatusSuccess OrderStatus = "success"
	OrderStatusFailed  OrderStatus = "failed"
)

// OrderCodePrefix is the fixed prefix of the human-facing order code.
const OrderCodePrefix = "ID"

// OrderCodeMaxAttempts bounds how many times a fresh code is generated when
// the insert hits the unique constraint on order.code.
const OrderCodeMaxAttempts = 3

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusSuccess, OrderStatusFailed:
		return true
	}
	return false
}
