package usecase

import (
	"context"
	"sort"
	"strings"
	"unicode"

	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// Sort orders accepted by CatalogQuery.SortBy.
const (
	SortByRating   = "rating"
	SortByCost     = "cost"
	SortByDelivery = "delivery"
)

// CatalogQuery narrows and orders the restaurant list.
type CatalogQuery struct {
	Search    string
	MinRating float64
	PureVeg   bool
	SortBy    string
}

// CatalogUseCase serves the restaurant list with filtering and sorting.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List returns restaurants matching the query. The default order is by
// rating, best first.
func (u *CatalogUseCase) List(ctx context.Context, query CatalogQuery) ([]model.Restaurant, error) {
	all, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}

	search := strings.ToLower(strings.TrimSpace(query.Search))
	filtered := make([]model.Restaurant, 0, len(all))
	for _, r := range all {
		if query.PureVeg && !r.PureVeg {
			continue
		}
		if r.Rating < query.MinRating {
			continue
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		filtered = append(filtered, r)
	}

	switch query.SortBy {
	case SortByCost:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CostForTwo < filtered[j].CostForTwo
		})
	case SortByDelivery:
		sort.SliceStable(filtered, func(i, j int) bool {
			return deliveryMinutes(filtered[i].DeliveryTime) < deliveryMinutes(filtered[j].DeliveryTime)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Rating > filtered[j].Rating
		})
	}

	return filtered, nil
}

// Get returns a single restaurant by ID, or nil when absent.
func (u *CatalogUseCase) Get(ctx context.Context, id int64) (*model.Restaurant, error) {
	all, err := u.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range all {
		if r.ID == id {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

func matchesSearch(r model.Restaurant, search string) bool {
	if strings.Contains(strings.ToLower(r.Name), search) {
		return true
	}
	for _, cuisine := range r.Cuisines {
		if strings.Contains(strings.ToLower(cuisine), search) {
			return true
		}
	}
	return false
}

// deliveryMinutes parses the leading number out of labels like "30-40 mins".
// Labels with no digits sort last.
func deliveryMinutes(label string) int {
	minutes := 0
	started := false
	for _, r := range label {
		if unicode.IsDigit(r) {
			minutes = minutes*10 + int(r-'0')
			started = true
			continue
		}
		if started {
			break
		}
	}
	if !started {
		return 1 << 30
	}
	return minutes
}
