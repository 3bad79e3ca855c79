package repository

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// CatalogRepository describes the read-mostly restaurant catalog.
type CatalogRepository interface {
	List(ctx context.Context) ([]model.Restaurant, error)
	Replace(ctx context.Context, restaurants []model.Restaurant) error
}
