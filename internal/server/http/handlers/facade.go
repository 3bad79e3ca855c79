package handlers

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, name, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CatalogFacade serves the restaurant list.
type CatalogFacade interface {
	Restaurants(ctx context.Context, query usecase.CatalogQuery) ([]model.Restaurant, error)
}

// CartFacade encapsulates cart operations exposed via HTTP.
type CartFacade interface {
	Cart(ctx context.Context, userID int64) (model.CartSnapshot, error)
	AddToCart(ctx context.Context, userID int64, item model.CartItem) (model.CartSnapshot, error)
	UpdateCartItem(ctx context.Context, userID, itemID int64, quantity int) (model.CartSnapshot, error)
	RemoveCartItem(ctx context.Context, userID, itemID int64) (model.CartSnapshot, error)
	ClearCart(ctx context.Context, userID int64) error
	ApplyPromo(ctx context.Context, userID int64, code string) (model.CartSnapshot, error)
}

// OrderFacade encapsulates checkout and order history.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, userID int64, address, paymentMethod string) (*model.Order, error)
	Orders(ctx context.Context, userID int64) ([]model.Order, error)
	LatestOrder(ctx context.Context, userID int64) (*model.Order, error)
}

// ProfileFacade manages favourites and saved addresses.
type ProfileFacade interface {
	Favorites(ctx context.Context, userID int64) ([]model.Restaurant, error)
	ToggleFavorite(ctx context.Context, userID, restaurantID int64) (bool, error)
	Addresses(ctx context.Context, userID int64) ([]model.Address, error)
	SaveAddress(ctx context.Context, userID int64, label, fullAddress string) (*model.Address, error)
	SetDefaultAddress(ctx context.Context, userID, addressID int64) error
}

// ChatFacade resolves support questions.
type ChatFacade interface {
	Ask(ctx context.Context, userID int64, question string) (*model.ChatMessage, error)
	ChatHistory(ctx context.Context, userID int64) ([]model.ChatMessage, error)
}

// StorefrontFacade aggregates the full set of operations used across handlers.
type StorefrontFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	OrderFacade
	ProfileFacade
	ChatFacade
}
