package catalog

import (
	"context"
	"log/slog"

	"github.com/snacksprint/storefront/internal/domain/repository"
)

// Loader seeds the catalog repository at startup, preferring the remote
// endpoint when one is configured and falling back to the built-in seed.
type Loader struct {
	client Client
	repo   repository.CatalogRepository
	logger *slog.Logger
}

// NewLoader constructs Loader. client may be nil when no catalog URL is set.
func NewLoader(client Client, repo repository.CatalogRepository, logger *slog.Logger) *Loader {
	return &Loader{client: client, repo: repo, logger: logger}
}

// Load fills the catalog repository. Remote failures degrade to the seed
// list so the storefront always has restaurants to show.
func (l *Loader) Load(ctx context.Context) error {
	restaurants := Seed()

	if l.client != nil {
		fetched, err := l.client.Fetch(ctx)
		switch {
		case err != nil:
			l.logger.Warn("catalog fetch failed, using built-in seed", slog.String("error", err.Error()))
		case len(fetched) == 0:
			l.logger.Warn("catalog endpoint returned no restaurants, using built-in seed")
		default:
			restaurants = fetched
		}
	}

	if err := l.repo.Replace(ctx, restaurants); err != nil {
		return err
	}
	l.logger.Info("catalog loaded", slog.Int("restaurants", len(restaurants)))
	return nil
}
