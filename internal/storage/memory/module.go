package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/snacksprint/storefront/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.UserRepository { return s.Users() },
		func(s *Storage) repository.CartRepository { return s.Carts() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.CatalogRepository { return s.Catalog() },
		func(s *Storage) repository.ProfileRepository { return s.Profiles() },
		func(s *Storage) repository.ChatRepository { return s.ChatLog() },
	),
)

type storageParams struct {
	fx.In

	Logger *slog.Logger
}

func newStorage(p storageParams) *Storage {
	return New(p.Logger)
}
