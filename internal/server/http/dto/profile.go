package dto

import "github.com/snacksprint/storefront/internal/domain/model"

// FavoriteRequest toggles a restaurant in the favourites list.
type FavoriteRequest struct {
	RestaurantID int64 `json:"restaurant_id"`
}

// FavoriteResponse reports whether the restaurant is a favourite after a
// toggle.
type FavoriteResponse struct {
	RestaurantID int64 `json:"restaurant_id"`
	Favorite     bool  `json:"favorite"`
}

// AddressRequest describes a delivery address to save.
type AddressRequest struct {
	Label   string `json:"label,omitempty"`
	Address string `json:"address"`
}

// AddressResponse describes a saved address. The first address in a list is
// the default one.
type AddressResponse struct {
	ID      int64  `json:"id"`
	Label   string `json:"label,omitempty"`
	Address string `json:"address"`
	Default bool   `json:"default"`
}

// NewAddressResponses converts a saved-address list, marking the default.
func NewAddressResponses(addresses []model.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(addresses))
	for i, addr := range addresses {
		out = append(out, AddressResponse{
			ID:      addr.ID,
			Label:   addr.Label,
			Address: addr.FullAddress,
			Default: i == 0,
		})
	}
	return out
}
