package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// Promo codes accepted at checkout.
const (
	PromoFirst50 = "FIRST50"
	PromoSnack10 = "SNACK10"
)

// CartUseCase encapsulates cart mutations and snapshot computation.
type CartUseCase struct {
	carts       repository.CartRepository
	deliveryFee float64
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, deliveryFee float64) *CartUseCase {
	return &CartUseCase{carts: carts, deliveryFee: deliveryFee}
}

// AddItem adds a dish to the cart, merging quantities for repeated adds.
func (u *CartUseCase) AddItem(ctx context.Context, userID int64, item model.CartItem) error {
	if item.Quantity <= 0 {
		return domainErrors.ErrInvalidQuantity
	}

	items, err := u.carts.Items(ctx, userID)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == item.ID {
			existing.Quantity += item.Quantity
			return u.carts.SetItem(ctx, userID, existing)
		}
	}
	return u.carts.SetItem(ctx, userID, item)
}

// UpdateQuantity sets the quantity of a cart line; zero or less removes it.
func (u *CartUseCase) UpdateQuantity(ctx context.Context, userID, itemID int64, quantity int) error {
	if quantity <= 0 {
		return u.carts.RemoveItem(ctx, userID, itemID)
	}

	items, err := u.carts.Items(ctx, userID)
	if err != nil {
		return err
	}
	for _, existing := range items {
		if existing.ID == itemID {
			existing.Quantity = quantity
			return u.carts.SetItem(ctx, userID, existing)
		}
	}
	return domainErrors.ErrNotFound
}

// RemoveItem drops a cart line.
func (u *CartUseCase) RemoveItem(ctx context.Context, userID, itemID int64) error {
	return u.carts.RemoveItem(ctx, userID, itemID)
}

// Clear empties the cart, promo code included.
func (u *CartUseCase) Clear(ctx context.Context, userID int64) error {
	return u.carts.Clear(ctx, userID)
}

// ApplyPromo validates and stores a promo code for the cart.
func (u *CartUseCase) ApplyPromo(ctx context.Context, userID int64, code string) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code != PromoFirst50 && code != PromoSnack10 {
		return domainErrors.ErrInvalidPromoCode
	}

	items, err := u.carts.Items(ctx, userID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return domainErrors.ErrEmptyCart
	}
	return u.carts.SetPromo(ctx, userID, code)
}

// Snapshot computes the derived cart view: subtotal, delivery fee, promo
// discount and total. An empty cart reports zero fees and no promo.
func (u *CartUseCase) Snapshot(ctx context.Context, userID int64) (model.CartSnapshot, error) {
	items, err := u.carts.Items(ctx, userID)
	if err != nil {
		return model.CartSnapshot{}, err
	}

	snapshot := model.CartSnapshot{Items: items}
	if len(items) == 0 {
		return snapshot, nil
	}

	for _, item := range items {
		snapshot.Subtotal += float64(item.Quantity) * item.Price
	}
	snapshot.DeliveryFee = u.deliveryFee

	code, err := u.carts.Promo(ctx, userID)
	if err != nil {
		return model.CartSnapshot{}, err
	}
	snapshot.PromoCode = code
	snapshot.PromoDiscount = promoDiscount(code, snapshot.Subtotal)

	snapshot.Total = snapshot.Subtotal + snapshot.DeliveryFee - snapshot.PromoDiscount
	if snapshot.Total < 0 {
		snapshot.Total = 0
	}
	return snapshot, nil
}

// promoDiscount computes the rupee discount for a code against a subtotal:
// FIRST50 is a flat ₹50 off, SNACK10 is 10% capped at ₹100.
func promoDiscount(code string, subtotal float64) float64 {
	switch code {
	case PromoFirst50:
		if subtotal < 50 {
			return subtotal
		}
		return 50
	case PromoSnack10:
		discount := subtotal * 0.10
		if discount > 100 {
			discount = 100
		}
		return discount
	}
	return 0
}
