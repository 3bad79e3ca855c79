package catalog

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/snacksprint/storefront/internal/config"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// Module wires the catalog loader into the application lifecycle.
var Module = fx.Options(
	fx.Provide(newLoader),
	fx.Invoke(registerLifecycle),
)

type loaderParams struct {
	fx.In

	Config *config.Config
	Repo   repository.CatalogRepository
	Logger *slog.Logger
}

func newLoader(p loaderParams) (*Loader, error) {
	var client Client
	if p.Config.CatalogURL != "" {
		httpClient, err := NewHTTPClient(p.Config.CatalogURL, p.Logger)
		if err != nil {
			return nil, err
		}
		client = httpClient
	}
	return NewLoader(client, p.Repo, p.Logger), nil
}

func registerLifecycle(lc fx.Lifecycle, loader *Loader) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return loader.Load(ctx)
		},
	})
}
