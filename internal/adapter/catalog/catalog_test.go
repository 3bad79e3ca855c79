package catalog

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/storage/memory"
)

type clientStub struct {
	restaurants []model.Restaurant
	err         error
}

func (c clientStub) Fetch(context.Context) ([]model.Restaurant, error) {
	return c.restaurants, c.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedCatalog(t *testing.T) {
	restaurants := Seed()
	if len(restaurants) != 8 {
		t.Fatalf("unexpected seed size: %d", len(restaurants))
	}
	veg := 0
	for _, r := range restaurants {
		if r.ID == 0 || r.Name == "" || r.Rating == 0 {
			t.Fatalf("incomplete seed entry: %+v", r)
		}
		if r.PureVeg {
			veg++
		}
	}
	if veg == 0 {
		t.Fatal("expected at least one pure veg restaurant in seed")
	}
}

func TestLoaderWithoutClientUsesSeed(t *testing.T) {
	storage := memory.New(discardLogger())
	loader := NewLoader(nil, storage.Catalog(), discardLogger())

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	listed, err := storage.Catalog().List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != len(Seed()) {
		t.Fatalf("expected seed catalog, got %d restaurants", len(listed))
	}
}

func TestLoaderPrefersRemoteCatalog(t *testing.T) {
	remote := []model.Restaurant{{ID: 100, Name: "Remote Rasoi", Rating: 4.9}}
	storage := memory.New(discardLogger())
	loader := NewLoader(clientStub{restaurants: remote}, storage.Catalog(), discardLogger())

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	listed, err := storage.Catalog().List(context.Background())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].Name != "Remote Rasoi" {
		t.Fatalf("expected remote catalog, got %v", listed)
	}
}

func TestLoaderFallsBackOnFetchError(t *testing.T) {
	storage := memory.New(discardLogger())
	loader := NewLoader(clientStub{err: errors.New("unreachable")}, storage.Catalog(), discardLogger())

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	listed, _ := storage.Catalog().List(context.Background())
	if len(listed) != len(Seed()) {
		t.Fatalf("expected seed fallback, got %d restaurants", len(listed))
	}
}

func TestLoaderFallsBackOnEmptyRemote(t *testing.T) {
	storage := memory.New(discardLogger())
	loader := NewLoader(clientStub{}, storage.Catalog(), discardLogger())

	if err := loader.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	listed, _ := storage.Catalog().List(context.Background())
	if len(listed) != len(Seed()) {
		t.Fatalf("expected seed fallback, got %d restaurants", len(listed))
	}
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("/catalog", discardLogger()); err == nil {
		t.Fatal("expected error for relative URL")
	}
}

func TestHTTPClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Accept") != "application/json" {
			t.Fatalf("unexpected accept header %q", r.Header.Get("Accept"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":1,"name":"Idli House","rating":4.7,"cuisines":["South Indian"],"delivery_time":"20-30 mins","cost_for_two":200,"pure_veg":true}]`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}

	restaurants, err := client.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(restaurants) != 1 {
		t.Fatalf("unexpected restaurant count %d", len(restaurants))
	}
	got := restaurants[0]
	if got.Name != "Idli House" || got.Rating != 4.7 || !got.PureVeg || got.CostForTwo != 200 {
		t.Fatalf("unexpected restaurant %+v", got)
	}
}

func TestHTTPClientFetchNonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected error for non-OK status")
	}
}

func TestHTTPClientFetchBadJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, discardLogger())
	if err != nil {
		t.Fatalf("new client failed: %v", err)
	}
	if _, err := client.Fetch(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
