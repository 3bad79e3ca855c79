package model

import "time"

// OrderStatus describes delivery lifecycle.
type OrderStatus string

const (
	OrderStatusConfirmed      OrderStatus = "confirmed"
	OrderStatusPreparing      OrderStatus = "preparing"
	OrderStatusReady          OrderStatus = "ready"
	OrderStatusOutForDelivery OrderStatus = "out-for-delivery"
	OrderStatusDelivered      OrderStatus = "delivered"
)

// Rank returns the position of the status in the forward-only lifecycle.
// Unknown statuses rank lowest.
func (s OrderStatus) Rank() int {
	switch s {
	case OrderStatusConfirmed:
		return 1
	case OrderStatusPreparing:
		return 2
	case OrderStatusReady:
		return 3
	case OrderStatusOutForDelivery:
		return 4
	case OrderStatusDelivered:
		return 5
	}
	return 0
}

// OrderItem is a single dish line inside an order.
type OrderItem struct {
	ID       int64
	Name     string
	Quantity int
	Price    float64
}

// Order describes a placed order. ID is opaque and unique once created;
// status only moves forward through the lifecycle.
type Order struct {
	ID            string
	UserID        int64
	Items         []OrderItem
	Total         float64
	Address       string
	PaymentMethod string
	Status        OrderStatus
	CreatedAt     time.Time
}
