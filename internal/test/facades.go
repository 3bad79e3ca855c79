package test

import (
	"context"
	"sync"

	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/usecase"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string, string) (string, error)
	AuthenticateFn func(context.Context, string, string) (string, error)
	ParseTokenFn   func(string) (int64, error)
}

// Register delegates to the provided function or returns a default token.
func (s AuthFacadeStub) Register(ctx context.Context, login, name, password string) (string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, login, name, password)
	}
	return "token", nil
}

// Authenticate delegates to the provided function or returns a default token.
func (s AuthFacadeStub) Authenticate(ctx context.Context, login, password string) (string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, login, password)
	}
	return "token", nil
}

// ParseToken resolves the token to a user ID.
func (s AuthFacadeStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return 1, nil
}

// CatalogFacadeStub serves a fixed restaurant list.
type CatalogFacadeStub struct {
	RestaurantsFn func(context.Context, usecase.CatalogQuery) ([]model.Restaurant, error)
}

// Restaurants returns the configured list.
func (s CatalogFacadeStub) Restaurants(ctx context.Context, query usecase.CatalogQuery) ([]model.Restaurant, error) {
	if s.RestaurantsFn != nil {
		return s.RestaurantsFn(ctx, query)
	}
	return []model.Restaurant{{ID: 1, Name: "Stub Kitchen", Rating: 4.2}}, nil
}

// CartFacadeStub provides controllable behaviour for cart endpoints.
type CartFacadeStub struct {
	CartFn       func(context.Context, int64) (model.CartSnapshot, error)
	AddFn        func(context.Context, int64, model.CartItem) (model.CartSnapshot, error)
	UpdateFn     func(context.Context, int64, int64, int) (model.CartSnapshot, error)
	RemoveFn     func(context.Context, int64, int64) (model.CartSnapshot, error)
	ClearFn      func(context.Context, int64) error
	ApplyPromoFn func(context.Context, int64, string) (model.CartSnapshot, error)
}

// Cart returns the configured snapshot.
func (s CartFacadeStub) Cart(ctx context.Context, userID int64) (model.CartSnapshot, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, userID)
	}
	return model.CartSnapshot{}, nil
}

// AddToCart delegates to the provided function.
func (s CartFacadeStub) AddToCart(ctx context.Context, userID int64, item model.CartItem) (model.CartSnapshot, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, userID, item)
	}
	return model.CartSnapshot{Items: []model.CartItem{item}}, nil
}

// UpdateCartItem delegates to the provided function.
func (s CartFacadeStub) UpdateCartItem(ctx context.Context, userID, itemID int64, quantity int) (model.CartSnapshot, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, userID, itemID, quantity)
	}
	return model.CartSnapshot{}, nil
}

// RemoveCartItem delegates to the provided function.
func (s CartFacadeStub) RemoveCartItem(ctx context.Context, userID, itemID int64) (model.CartSnapshot, error) {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, userID, itemID)
	}
	return model.CartSnapshot{}, nil
}

// ClearCart delegates to the provided function.
func (s CartFacadeStub) ClearCart(ctx context.Context, userID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, userID)
	}
	return nil
}

// ApplyPromo delegates to the provided function.
func (s CartFacadeStub) ApplyPromo(ctx context.Context, userID int64, code string) (model.CartSnapshot, error) {
	if s.ApplyPromoFn != nil {
		return s.ApplyPromoFn(ctx, userID, code)
	}
	return model.CartSnapshot{PromoCode: code}, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn  func(context.Context, int64, string, string) (*model.Order, error)
	OrdersFn func(context.Context, int64) ([]model.Order, error)
	LatestFn func(context.Context, int64) (*model.Order, error)
}

// PlaceOrder delegates to the provided function or returns a default order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, userID int64, address, paymentMethod string) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, userID, address, paymentMethod)
	}
	return &model.Order{ID: "order-1", UserID: userID, Status: model.OrderStatusConfirmed}, nil
}

// Orders returns predefined orders for the given user.
func (s OrderFacadeStub) Orders(ctx context.Context, userID int64) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, userID)
	}
	return nil, nil
}

// LatestOrder returns the configured latest order.
func (s OrderFacadeStub) LatestOrder(ctx context.Context, userID int64) (*model.Order, error) {
	if s.LatestFn != nil {
		return s.LatestFn(ctx, userID)
	}
	return nil, nil
}

// ProfileFacadeStub provides controllable behaviour for profile endpoints.
type ProfileFacadeStub struct {
	FavoritesFn      func(context.Context, int64) ([]model.Restaurant, error)
	ToggleFavoriteFn func(context.Context, int64, int64) (bool, error)
	AddressesFn      func(context.Context, int64) ([]model.Address, error)
	SaveAddressFn    func(context.Context, int64, string, string) (*model.Address, error)
	SetDefaultFn     func(context.Context, int64, int64) error
}

// Favorites returns the configured favourites list.
func (s ProfileFacadeStub) Favorites(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	if s.FavoritesFn != nil {
		return s.FavoritesFn(ctx, userID)
	}
	return nil, nil
}

// ToggleFavorite delegates to the provided function.
func (s ProfileFacadeStub) ToggleFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	if s.ToggleFavoriteFn != nil {
		return s.ToggleFavoriteFn(ctx, userID, restaurantID)
	}
	return true, nil
}

// Addresses returns the configured address list.
func (s ProfileFacadeStub) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	if s.AddressesFn != nil {
		return s.AddressesFn(ctx, userID)
	}
	return nil, nil
}

// SaveAddress delegates to the provided function.
func (s ProfileFacadeStub) SaveAddress(ctx context.Context, userID int64, label, fullAddress string) (*model.Address, error) {
	if s.SaveAddressFn != nil {
		return s.SaveAddressFn(ctx, userID, label, fullAddress)
	}
	return &model.Address{ID: 1, Label: label, FullAddress: fullAddress}, nil
}

// SetDefaultAddress delegates to the provided function.
func (s ProfileFacadeStub) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	if s.SetDefaultFn != nil {
		return s.SetDefaultFn(ctx, userID, addressID)
	}
	return nil
}

// ChatFacadeStub provides controllable behaviour for chat endpoints.
type ChatFacadeStub struct {
	AskFn     func(context.Context, int64, string) (*model.ChatMessage, error)
	HistoryFn func(context.Context, int64) ([]model.ChatMessage, error)
}

// Ask delegates to the provided function or echoes the question.
func (s ChatFacadeStub) Ask(ctx context.Context, userID int64, question string) (*model.ChatMessage, error) {
	if s.AskFn != nil {
		return s.AskFn(ctx, userID, question)
	}
	return &model.ChatMessage{ID: 1, UserID: userID, Question: question, Answer: "stub answer"}, nil
}

// ChatHistory returns the configured transcript.
func (s ChatFacadeStub) ChatHistory(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	if s.HistoryFn != nil {
		return s.HistoryFn(ctx, userID)
	}
	return nil, nil
}

// FacadeStub aggregates all facade stubs for router-level tests.
type FacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	OrderFacadeStub
	ProfileFacadeStub
	ChatFacadeStub
}

// StatusAdvanceCall stores information about AdvanceOrderStatus invocations.
type StatusAdvanceCall struct {
	OrderID string
	Status  model.OrderStatus
}

// CourierFacadeStub feeds the courier simulator in tests.
type CourierFacadeStub struct {
	mu       sync.Mutex
	OrdersFn func(context.Context, int) ([]model.Order, error)
	FailWith error
	calls    []StatusAdvanceCall
}

// OrdersForDispatch returns orders configured via OrdersFn.
func (s *CourierFacadeStub) OrdersForDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, limit)
	}
	return nil, nil
}

// AdvanceOrderStatus records the call and returns the configured error.
func (s *CourierFacadeStub) AdvanceOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, StatusAdvanceCall{OrderID: orderID, Status: status})
	return s.FailWith
}

// AdvanceCalls returns a copy of recorded status updates.
func (s *CourierFacadeStub) AdvanceCalls() []StatusAdvanceCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StatusAdvanceCall, len(s.calls))
	copy(out, s.calls)
	return out
}
