package repository

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// OrderRepository describes storage operations for orders. Orders are
// append-only; status updates must never move backwards.
type OrderRepository interface {
	Append(ctx context.Context, order model.Order) (*model.Order, error)
	ListByUser(ctx context.Context, userID int64) ([]model.Order, error)
	Latest(ctx context.Context, userID int64) (*model.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	SelectActive(ctx context.Context, limit int) ([]model.Order, error)
}
