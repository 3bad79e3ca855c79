package memory

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
)

func newTestStorage() *Storage {
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestUserRepositoryCreateAndLookup(t *testing.T) {
	s := newTestStorage()
	repo := s.Users()
	ctx := context.Background()

	user, err := repo.Create(ctx, "alice", "Alice", "hash")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("expected user ID assigned")
	}

	if _, err := repo.Create(ctx, "alice", "Other", "hash2"); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	byLogin, err := repo.GetByLogin(ctx, "alice")
	if err != nil || byLogin.ID != user.ID {
		t.Fatalf("GetByLogin mismatch: %v %v", byLogin, err)
	}
	byID, err := repo.GetByID(ctx, user.ID)
	if err != nil || byID.Login != "alice" {
		t.Fatalf("GetByID mismatch: %v %v", byID, err)
	}
	if _, err := repo.GetByID(ctx, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCartRepositoryLifecycle(t *testing.T) {
	s := newTestStorage()
	repo := s.Carts()
	ctx := context.Background()

	items, err := repo.Items(ctx, 1)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty cart, got %v %v", items, err)
	}

	if err := repo.SetItem(ctx, 1, model.CartItem{ID: 10, Name: "Dosa", Price: 120, Quantity: 1}); err != nil {
		t.Fatalf("set item failed: %v", err)
	}
	if err := repo.SetItem(ctx, 1, model.CartItem{ID: 10, Name: "Dosa", Price: 120, Quantity: 3}); err != nil {
		t.Fatalf("replace item failed: %v", err)
	}
	items, _ = repo.Items(ctx, 1)
	if len(items) != 1 || items[0].Quantity != 3 {
		t.Fatalf("expected single line with quantity 3, got %v", items)
	}

	if err := repo.SetPromo(ctx, 1, "FIRST50"); err != nil {
		t.Fatalf("set promo failed: %v", err)
	}
	code, _ := repo.Promo(ctx, 1)
	if code != "FIRST50" {
		t.Fatalf("unexpected promo %q", code)
	}

	if err := repo.RemoveItem(ctx, 1, 11); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing item, got %v", err)
	}
	if err := repo.RemoveItem(ctx, 1, 10); err != nil {
		t.Fatalf("remove item failed: %v", err)
	}

	if err := repo.Clear(ctx, 1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	code, _ = repo.Promo(ctx, 1)
	if code != "" {
		t.Fatalf("clear kept promo %q", code)
	}
}

func TestCartRepositoryIsolatedPerUser(t *testing.T) {
	s := newTestStorage()
	repo := s.Carts()
	ctx := context.Background()

	if err := repo.SetItem(ctx, 1, model.CartItem{ID: 1, Name: "Roll", Quantity: 1}); err != nil {
		t.Fatalf("set item failed: %v", err)
	}
	items, _ := repo.Items(ctx, 2)
	if len(items) != 0 {
		t.Fatalf("user 2 sees user 1 cart: %v", items)
	}
}

func TestOrderRepositoryAppendAndList(t *testing.T) {
	s := newTestStorage()
	repo := s.Orders()
	ctx := context.Background()

	if _, err := repo.Append(ctx, model.Order{ID: "o1", UserID: 1, Status: model.OrderStatusConfirmed}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if _, err := repo.Append(ctx, model.Order{ID: "o1", UserID: 1}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists for duplicate id, got %v", err)
	}
	if _, err := repo.Append(ctx, model.Order{ID: "o2", UserID: 1, Status: model.OrderStatusConfirmed}); err != nil {
		t.Fatalf("append failed: %v", err)
	}
	if _, err := repo.Append(ctx, model.Order{ID: "o3", UserID: 2, Status: model.OrderStatusConfirmed}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	orders, err := repo.ListByUser(ctx, 1)
	if err != nil || len(orders) != 2 {
		t.Fatalf("expected 2 orders for user 1, got %v %v", orders, err)
	}

	latest, err := repo.Latest(ctx, 1)
	if err != nil || latest.ID != "o2" {
		t.Fatalf("expected latest o2, got %v %v", latest, err)
	}
	if _, err := repo.Latest(ctx, 3); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for user without orders, got %v", err)
	}
}

func TestOrderRepositoryStatusMonotonic(t *testing.T) {
	s := newTestStorage()
	repo := s.Orders()
	ctx := context.Background()

	if _, err := repo.Append(ctx, model.Order{ID: "o1", UserID: 1, Status: model.OrderStatusConfirmed}); err != nil {
		t.Fatalf("append failed: %v", err)
	}

	if err := repo.UpdateStatus(ctx, "o1", model.OrderStatusOutForDelivery); err != nil {
		t.Fatalf("forward update failed: %v", err)
	}
	// Repeating the current status is a no-op.
	if err := repo.UpdateStatus(ctx, "o1", model.OrderStatusOutForDelivery); err != nil {
		t.Fatalf("same-status update should be a no-op: %v", err)
	}
	if err := repo.UpdateStatus(ctx, "o1", model.OrderStatusPreparing); !errors.Is(err, domainErrors.ErrStatusRegression) {
		t.Fatalf("expected ErrStatusRegression, got %v", err)
	}
	if err := repo.UpdateStatus(ctx, "o1", model.OrderStatusDelivered); err != nil {
		t.Fatalf("delivery update failed: %v", err)
	}
	if err := repo.UpdateStatus(ctx, "missing", model.OrderStatusDelivered); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown order, got %v", err)
	}
}

func TestOrderRepositorySelectActive(t *testing.T) {
	s := newTestStorage()
	repo := s.Orders()
	ctx := context.Background()

	for _, o := range []model.Order{
		{ID: "a", UserID: 1, Status: model.OrderStatusConfirmed},
		{ID: "b", UserID: 1, Status: model.OrderStatusDelivered},
		{ID: "c", UserID: 2, Status: model.OrderStatusOutForDelivery},
		{ID: "d", UserID: 3, Status: model.OrderStatusPreparing},
	} {
		if _, err := repo.Append(ctx, o); err != nil {
			t.Fatalf("append %s failed: %v", o.ID, err)
		}
	}

	active, err := repo.SelectActive(ctx, 0)
	if err != nil || len(active) != 3 {
		t.Fatalf("expected 3 active orders, got %v %v", active, err)
	}
	for _, o := range active {
		if o.Status == model.OrderStatusDelivered {
			t.Fatalf("delivered order %s selected as active", o.ID)
		}
	}

	limited, err := repo.SelectActive(ctx, 2)
	if err != nil || len(limited) != 2 {
		t.Fatalf("expected limit respected, got %v %v", limited, err)
	}
}

func TestCatalogRepositoryReplace(t *testing.T) {
	s := newTestStorage()
	repo := s.Catalog()
	ctx := context.Background()

	if err := repo.Replace(ctx, []model.Restaurant{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}); err != nil {
		t.Fatalf("replace failed: %v", err)
	}
	list, err := repo.List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("expected 2 restaurants, got %v %v", list, err)
	}

	// Mutating the returned slice must not affect stored data.
	list[0].Name = "mutated"
	fresh, _ := repo.List(ctx)
	if fresh[0].Name != "A" {
		t.Fatalf("stored catalog mutated: %v", fresh)
	}
}

func TestProfileRepositoryFavorites(t *testing.T) {
	s := newTestStorage()
	repo := s.Profiles()
	ctx := context.Background()
	rest := model.Restaurant{ID: 7, Name: "Chaat Chowk"}

	added, err := repo.ToggleFavorite(ctx, 1, rest)
	if err != nil || !added {
		t.Fatalf("expected first toggle to add: %v %v", added, err)
	}
	favs, _ := repo.Favorites(ctx, 1)
	if len(favs) != 1 || favs[0].ID != 7 {
		t.Fatalf("unexpected favourites %v", favs)
	}

	removed, err := repo.ToggleFavorite(ctx, 1, rest)
	if err != nil || removed {
		t.Fatalf("expected second toggle to remove: %v %v", removed, err)
	}
	favs, _ = repo.Favorites(ctx, 1)
	if len(favs) != 0 {
		t.Fatalf("favourite not removed: %v", favs)
	}
}

func TestProfileRepositoryAddresses(t *testing.T) {
	s := newTestStorage()
	repo := s.Profiles()
	ctx := context.Background()

	home, err := repo.SaveAddress(ctx, 1, model.Address{Label: "Home", FullAddress: "12 MG Road"})
	if err != nil || home.ID == 0 {
		t.Fatalf("save failed: %v %v", home, err)
	}
	office, err := repo.SaveAddress(ctx, 1, model.Address{Label: "Office", FullAddress: "Tech Park"})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if err := repo.SetDefaultAddress(ctx, 1, office.ID); err != nil {
		t.Fatalf("set default failed: %v", err)
	}
	addrs, _ := repo.Addresses(ctx, 1)
	if len(addrs) != 2 || addrs[0].ID != office.ID {
		t.Fatalf("expected office promoted to default, got %v", addrs)
	}

	if err := repo.SetDefaultAddress(ctx, 1, 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown address, got %v", err)
	}
}

func TestChatRepositoryTranscript(t *testing.T) {
	s := newTestStorage()
	repo := s.ChatLog()
	ctx := context.Background()

	first, err := repo.Append(ctx, model.ChatMessage{UserID: 1, Question: "hi", Answer: "hello"})
	if err != nil || first.ID == 0 {
		t.Fatalf("append failed: %v %v", first, err)
	}
	if first.AskedAt.IsZero() {
		t.Fatalf("expected AskedAt assigned")
	}
	second, err := repo.Append(ctx, model.ChatMessage{UserID: 1, Question: "cart total", Answer: "₹0"})
	if err != nil || second.ID <= first.ID {
		t.Fatalf("expected increasing IDs, got %v %v", second, err)
	}

	log, err := repo.ListByUser(ctx, 1)
	if err != nil || len(log) != 2 {
		t.Fatalf("expected 2 messages, got %v %v", log, err)
	}
	if log[0].Question != "hi" || log[1].Question != "cart total" {
		t.Fatalf("transcript out of order: %v", log)
	}

	other, _ := repo.ListByUser(ctx, 2)
	if len(other) != 0 {
		t.Fatalf("transcripts leaked across users: %v", other)
	}
}
