package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// ProfileUseCase manages favourites and saved addresses.
type ProfileUseCase struct {
	profiles repository.ProfileRepository
	catalog  repository.CatalogRepository
}

// NewProfileUseCase constructs ProfileUseCase.
func NewProfileUseCase(profiles repository.ProfileRepository, catalog repository.CatalogRepository) *ProfileUseCase {
	return &ProfileUseCase{profiles: profiles, catalog: catalog}
}

// Favorites returns the user's favourite restaurants.
func (u *ProfileUseCase) Favorites(ctx context.Context, userID int64) ([]model.Restaurant, error) {
	return u.profiles.Favorites(ctx, userID)
}

// ToggleFavorite adds or removes a restaurant from favourites and reports
// whether it is a favourite after the call.
func (u *ProfileUseCase) ToggleFavorite(ctx context.Context, userID, restaurantID int64) (bool, error) {
	all, err := u.catalog.List(ctx)
	if err != nil {
		return false, err
	}
	for _, r := range all {
		if r.ID == restaurantID {
			return u.profiles.ToggleFavorite(ctx, userID, r)
		}
	}
	return false, domainErrors.ErrNotFound
}

// Addresses returns the user's saved addresses, default first.
func (u *ProfileUseCase) Addresses(ctx context.Context, userID int64) ([]model.Address, error) {
	return u.profiles.Addresses(ctx, userID)
}

// SaveAddress stores a new delivery address.
func (u *ProfileUseCase) SaveAddress(ctx context.Context, userID int64, label, fullAddress string) (*model.Address, error) {
	fullAddress = strings.TrimSpace(fullAddress)
	if fullAddress == "" {
		return nil, domainErrors.ErrNotFound
	}
	return u.profiles.SaveAddress(ctx, userID, model.Address{
		Label:       strings.TrimSpace(label),
		FullAddress: fullAddress,
	})
}

// SetDefaultAddress marks an address as the default delivery target.
func (u *ProfileUseCase) SetDefaultAddress(ctx context.Context, userID, addressID int64) error {
	return u.profiles.SetDefaultAddress(ctx, userID, addressID)
}

// DefaultAddress returns the default address, or nil when none is saved.
func (u *ProfileUseCase) DefaultAddress(ctx context.Context, userID int64) (*model.Address, error) {
	addresses, err := u.profiles.Addresses(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(addresses) == 0 {
		return nil, nil
	}
	first := addresses[0]
	return &first, nil
}
