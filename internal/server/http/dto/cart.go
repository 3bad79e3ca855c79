package dto

import "github.com/snacksprint/storefront/internal/domain/model"

// AddCartItemRequest describes a dish added to the cart.
type AddCartItemRequest struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UpdateCartItemRequest changes a cart line's quantity.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// PromoRequest applies a promo code to the cart.
type PromoRequest struct {
	Code string `json:"code"`
}

// CartItemResponse describes a cart line.
type CartItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// CartResponse is the derived cart view returned by all cart endpoints.
type CartResponse struct {
	Items         []CartItemResponse `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	DeliveryFee   float64            `json:"delivery_fee"`
	PromoCode     string             `json:"promo_code,omitempty"`
	PromoDiscount float64            `json:"promo_discount,omitempty"`
	Total         float64            `json:"total"`
}

// NewCartResponse converts a cart snapshot to its API view.
func NewCartResponse(snapshot model.CartSnapshot) CartResponse {
	items := make([]CartItemResponse, 0, len(snapshot.Items))
	for _, item := range snapshot.Items {
		items = append(items, CartItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
		})
	}
	return CartResponse{
		Items:         items,
		Subtotal:      snapshot.Subtotal,
		DeliveryFee:   snapshot.DeliveryFee,
		PromoCode:     snapshot.PromoCode,
		PromoDiscount: snapshot.PromoDiscount,
		Total:         snapshot.Total,
	}
}
