package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// OrderUseCase manages order placement and status progression.
type OrderUseCase struct {
	orders repository.OrderRepository
	now    func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// Place turns a cart snapshot into a confirmed order. The caller is
// responsible for clearing the cart afterwards.
func (u *OrderUseCase) Place(ctx context.Context, userID int64, address, paymentMethod string, cart model.CartSnapshot) (*model.Order, error) {
	if len(cart.Items) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, model.OrderItem{
			ID:       line.ID,
			Name:     line.Name,
			Quantity: line.Quantity,
			Price:    line.Price,
		})
	}

	order := model.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		Items:         items,
		Total:         cart.Total,
		Address:       address,
		PaymentMethod: paymentMethod,
		Status:        model.OrderStatusConfirmed,
		CreatedAt:     u.now(),
	}

	return u.orders.Append(ctx, order)
}

// ListByUser returns the user's orders in placement order, oldest first.
func (u *OrderUseCase) ListByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	return u.orders.ListByUser(ctx, userID)
}

// Latest returns the user's most recent order.
func (u *OrderUseCase) Latest(ctx context.Context, userID int64) (*model.Order, error) {
	return u.orders.Latest(ctx, userID)
}

// UpdateStatus advances an order to the given status. Regressions are
// rejected by the repository.
func (u *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	return u.orders.UpdateStatus(ctx, orderID, status)
}

// SelectActive returns up to limit orders that have not been delivered yet.
func (u *OrderUseCase) SelectActive(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectActive(ctx, limit)
}
