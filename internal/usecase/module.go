package usecase

import (
	"go.uber.org/fx"

	"github.com/snacksprint/storefront/internal/config"
	"github.com/snacksprint/storefront/internal/domain/repository"
	pkgAuth "github.com/snacksprint/storefront/internal/pkg/auth"
)

// Module provides the business use cases.
var Module = fx.Provide(
	func(users repository.UserRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy, cfg *config.Config) *AuthUseCase {
		return NewAuthUseCase(users, hasher, strategy, cfg.AuthLatency)
	},
	func(carts repository.CartRepository, cfg *config.Config) *CartUseCase {
		return NewCartUseCase(carts, cfg.DeliveryFee)
	},
	NewOrderUseCase,
	NewCatalogUseCase,
	NewProfileUseCase,
	NewChatUseCase,
)
