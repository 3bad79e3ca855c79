package repository

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// CartRepository describes storage operations for per-user carts.
type CartRepository interface {
	Items(ctx context.Context, userID int64) ([]model.CartItem, error)
	SetItem(ctx context.Context, userID int64, item model.CartItem) error
	RemoveItem(ctx context.Context, userID, itemID int64) error
	Clear(ctx context.Context, userID int64) error
	SetPromo(ctx context.Context, userID int64, code string) error
	Promo(ctx context.Context, userID int64) (string, error)
}
