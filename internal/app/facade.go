package app

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/usecase"
)

// StorefrontFacade is the single entry point for handlers and the courier
// worker, composing the individual use cases.
type StorefrontFacade struct {
	auth    *usecase.AuthUseCase
	catalog *usecase.CatalogUseCase
	cart    *usecase.CartUseCase
	orders  *usecase.OrderUseCase
	profile *usecase.ProfileUseCase
	chat    *usecase.ChatUseCase
}

func NewStorefrontFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	orders *usecase.OrderUseCase,
	profile *usecase.ProfileUseCase,
	chat *usecase.ChatUseCase,
) *StorefrontFacade {
	return &StorefrontFacade{
		auth:    auth,
		catalog: catalog,
		cart:    cart,
		orders:  orders,
		profile: profile,
		chat:    chat,
	}
}

func (f *StorefrontFacade) Register(ctx context.Context, login, name, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, name, password)
	return token, err
}

func (f *StorefrontFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *StorefrontFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

func (f *StorefrontFacade) CurrentUser(ctx context.Context, userID int64) (*model.User, error) {
	return f.auth.GetByID(ctx, userID)
}

func (f *StorefrontFacade) Restaurants(ctx context.Context, query usecase.CatalogQuery) ([]model.Restaurant, error) {
	return f.catalog.List(ctx, query)
}

func (f *StorefrontFacade) Cart(ctx context.Context, userID int64) (model.CartSnapshot, error) {
	return f.cart.Snapshot(ctx, userID)
}

func (f *StorefrontFacade) AddToCart(ctx context.Context, userID int64, item model.CartItem) (model.CartSnapshot, error) {
	if err := f.cart.AddItem(ctx, userID, item); err != nil {
		return model.CartSnapshot{}, err
	}
	return f.cart.Snapshot(ctx, userID)
}

func (f *StorefrontFacade) UpdateCartItem(ctx context.Context, userID, itemID int64, quantity int) (model.CartSnapshot, error) {
	if err := f.cart.UpdateQuantity(ctx, userID, itemID, quantity); err != nil {
		return model.CartSnapshot{}, err
	}
	return f.cart.Snapshot(ctx, userID)
}

func (f *StorefrontFacade) RemoveCartItem(ctx context.Context, userID, itemID int64) (model.CartSnapshot, error) {
	if err := f.cart.RemoveItem(ctx, userID, itemID); err != nil {
		return model.CartSnapshot{}, err
	}
	return f.cart.Snapshot(ctx, userID)
}

func (f *StorefrontFacade) ClearCart(ctx context.Context, userID int64) error {
	return f.cart.Clear(ctx, userID)
}

func (f *StorefrontFacade) ApplyPromo(ctx context.Context, userID int64, code string) (model.CartSnapshot, error) {
	if err := f.cart.ApplyPromo(ctx, userID, code); err != nil {
		return model.CartSnapshot{}, err
	}
	return f.cart.Snapshot(ctx, userID)
}

// PlaceOrder turns the current cart into an order and clears the cart. When
// no address is supplied the user's default saved address is used.
func (f *StorefrontFacade) PlaceOrder(ctx context.Context, userID int64, address, paymentMethod string) (*model.Order, error) {
	snapshot, err := f.cart.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	address = strings.TrimSpace(address)
	if address == "" {
		saved, err := f.profile.DefaultAddress(ctx, userID)
		if err != nil {
			return nil, err
		}
		if saved != nil {
			address = saved.String()
		}
	}

	order, err := f.orders.Place(ctx, userID, address, paymentMethod, snapshot)
	if err != nil {
		return nil, err
	}

	if err := f.cart.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return order, nil
}

func (f *StorefrontFacade) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	return f.orders.ListByUser(ctx, userID)
}

// LatestOrder returns the newest order, or nil when the user has none.
func (f *StorefrontFacade) LatestOrder(ctx context.Context, userID int64) (*model.Order, error) {
	order, err := f.orders.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return order, nil
}

func (f *StorefrontFacade) Favorites(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	return f.profile.Favorites(ctx, userID)
}

func (f *StorefrontFacade) ToggleFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	return f.profile.ToggleFavorite(ctx, userID, restaurantID)
}

func (f *StorefrontFacade) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return f.profile.Addresses(ctx, userID)
}

func (f *StorefrontFacade) SaveAddress(ctx context.Context, userID int64, label, fullAddress string) (*model.Address, error) {
	return f.profile.SaveAddress(ctx, userID, label, fullAddress)
}

func (f *StorefrontFacade) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	return f.profile.SetDefaultAddress(ctx, userID, addressID)
}

// Ask assembles the user's current app state and resolves the question.
func (f *StorefrontFacade) Ask(ctx context.Context, userID int64, question string) (*model.ChatMessage, error) {
	snapshot, err := f.cart.Snapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	app, err := f.appSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	restaurants, err := f.catalog.List(ctx, usecase.CatalogQuery{})
	if err != nil {
		return nil, err
	}

	return f.chat.Ask(ctx, userID, question, snapshot, app, restaurants)
}

func (f *StorefrontFacade) ChatHistory(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	return f.chat.History(ctx, userID)
}

// OrdersForDispatch feeds the courier simulator with undelivered orders.
func (f *StorefrontFacade) OrdersForDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectActive(ctx, limit)
}

// AdvanceOrderStatus moves an order forward in its lifecycle.
func (f *StorefrontFacade) AdvanceOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	return f.orders.UpdateStatus(ctx, orderID, status)
}

func (f *StorefrontFacade) appSnapshot(ctx context.Context, userID int64) (model.AppSnapshot, error) {
	var app model.AppSnapshot

	usr, err := f.auth.GetByID(ctx, userID)
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return model.AppSnapshot{}, err
	}
	if usr != nil {
		app.User = &model.UserInfo{Name: usr.Name, Email: usr.Login}
	}

	if app.Favorites, err = f.profile.Favorites(ctx, userID); err != nil {
		return model.AppSnapshot{}, err
	}
	if app.Addresses, err = f.profile.Addresses(ctx, userID); err != nil {
		return model.AppSnapshot{}, err
	}
	if app.Orders, err = f.orders.ListByUser(ctx, userID); err != nil {
		return model.AppSnapshot{}, err
	}
	return app, nil
}
