package repository

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// UserRepository describes storage operations for accounts.
type UserRepository interface {
	Create(ctx context.Context, login, name, passwordHash string) (*model.User, error)
	GetByLogin(ctx context.Context, login string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
}
