package dto

import "github.com/snacksprint/storefront/internal/domain/model"

// RestaurantResponse describes a catalog entry.
type RestaurantResponse struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	Cuisines     []string `json:"cuisines"`
	DeliveryTime string   `json:"delivery_time"`
	CostForTwo   int      `json:"cost_for_two"`
	PureVeg      bool     `json:"pure_veg"`
}

// NewRestaurantResponse converts a domain restaurant to its API view.
func NewRestaurantResponse(r model.Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:           r.ID,
		Name:         r.Name,
		Rating:       r.Rating,
		Cuisines:     r.Cuisines,
		DeliveryTime: r.DeliveryTime,
		CostForTwo:   r.CostForTwo,
		PureVeg:      r.PureVeg,
	}
}

// NewRestaurantResponses converts a restaurant list.
func NewRestaurantResponses(restaurants []model.Restaurant) []RestaurantResponse {
	out := make([]RestaurantResponse, 0, len(restaurants))
	for _, r := range restaurants {
		out = append(out, NewRestaurantResponse(r))
	}
	return out
}
