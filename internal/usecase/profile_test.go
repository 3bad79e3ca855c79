package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/storage/memory"
)

func newProfileUseCase(t *testing.T) (*ProfileUseCase, *memory.Storage) {
	t.Helper()
	storage := newTestStorage()
	err := storage.Catalog().Replace(context.Background(), []model.Restaurant{
		{ID: 1, Name: "Biryani Mahal", Rating: 4.6},
		{ID: 2, Name: "Dosa Dock", Rating: 4.5},
	})
	if err != nil {
		t.Fatalf("seed catalog failed: %v", err)
	}
	return NewProfileUseCase(storage.Profiles(), storage.Catalog()), storage
}

func TestProfileUseCaseToggleFavorite(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	added, err := uc.ToggleFavorite(ctx, 1, 1)
	if err != nil || !added {
		t.Fatalf("expected favourite added: %v %v", added, err)
	}
	favs, err := uc.Favorites(ctx, 1)
	if err != nil || len(favs) != 1 || favs[0].Name != "Biryani Mahal" {
		t.Fatalf("unexpected favourites: %v %v", favs, err)
	}

	removed, err := uc.ToggleFavorite(ctx, 1, 1)
	if err != nil || removed {
		t.Fatalf("expected favourite removed: %v %v", removed, err)
	}

	if _, err := uc.ToggleFavorite(ctx, 1, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown restaurant, got %v", err)
	}
}

func TestProfileUseCaseAddresses(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	ctx := context.Background()

	if _, err := uc.SaveAddress(ctx, 1, "Home", "   "); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected rejection of blank address, got %v", err)
	}

	home, err := uc.SaveAddress(ctx, 1, " Home ", " 12 MG Road ")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if home.Label != "Home" || home.FullAddress != "12 MG Road" {
		t.Fatalf("expected trimmed fields, got %+v", home)
	}

	office, err := uc.SaveAddress(ctx, 1, "Office", "Tech Park")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	def, err := uc.DefaultAddress(ctx, 1)
	if err != nil || def.ID != home.ID {
		t.Fatalf("expected first address as default: %v %v", def, err)
	}

	if err := uc.SetDefaultAddress(ctx, 1, office.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}
	def, _ = uc.DefaultAddress(ctx, 1)
	if def.ID != office.ID {
		t.Fatalf("default not switched: %v", def)
	}
}

func TestProfileUseCaseDefaultAddressNone(t *testing.T) {
	uc, _ := newProfileUseCase(t)
	def, err := uc.DefaultAddress(context.Background(), 1)
	if err != nil || def != nil {
		t.Fatalf("expected nil default for fresh user, got %v %v", def, err)
	}
}
