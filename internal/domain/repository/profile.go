package repository

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// ProfileRepository describes storage for favorites and saved addresses.
type ProfileRepository interface {
	Favorites(ctx context.Context, userID int64) ([]model.Restaurant, error)
	ToggleFavorite(ctx context.Context, userID int64, restaurant model.Restaurant) (bool, error)
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	SaveAddress(ctx context.Context, userID int64, address model.Address) (*model.Address, error)
	SetDefaultAddress(ctx context.Context, userID, addressID int64) error
}
