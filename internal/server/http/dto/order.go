package dto

import (
	"time"

	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/tracking"
)

// PlaceOrderRequest describes checkout parameters. Address is optional; the
// default saved address is used when empty.
type PlaceOrderRequest struct {
	Address       string `json:"address,omitempty"`
	PaymentMethod string `json:"payment_method"`
}

// OrderItemResponse describes an order line.
type OrderItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// OrderResponse describes an order decorated with live tracking state.
type OrderResponse struct {
	ID              string              `json:"id"`
	Items           []OrderItemResponse `json:"items"`
	Total           float64             `json:"total"`
	Address         string              `json:"address,omitempty"`
	PaymentMethod   string              `json:"payment_method,omitempty"`
	Status          model.OrderStatus   `json:"status"`
	CreatedAt       time.Time           `json:"created_at"`
	EtaMinutes      int                 `json:"eta_minutes"`
	DeliveryPartner string              `json:"delivery_partner"`
	Progress        int                 `json:"progress"`
}

// NewOrderResponse converts a domain order to its API view, deriving ETA,
// courier and progress from the current status.
func NewOrderResponse(order model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return OrderResponse{
		ID:              order.ID,
		Items:           items,
		Total:           order.Total,
		Address:         order.Address,
		PaymentMethod:   order.PaymentMethod,
		Status:          order.Status,
		CreatedAt:       order.CreatedAt,
		EtaMinutes:      tracking.ETAMinutes(order),
		DeliveryPartner: tracking.DeliveryPartner(order),
		Progress:        tracking.ProgressPercent(order.Status),
	}
}

// NewOrderResponses converts an order list.
func NewOrderResponses(orders []model.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		out = append(out, NewOrderResponse(order))
	}
	return out
}
