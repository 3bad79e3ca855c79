package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// Client exposes operations to fetch the restaurant catalog.
type Client interface {
	Fetch(ctx context.Context) ([]model.Restaurant, error)
}

// HTTPClient implements Client via a JSON-over-HTTP catalog endpoint.
type HTTPClient struct {
	endpoint   *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// restaurantPayload mirrors the JSON shape served by the catalog endpoint.
type restaurantPayload struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	Rating       float64  `json:"rating"`
	Cuisines     []string `json:"cuisines"`
	DeliveryTime string   `json:"delivery_time"`
	CostForTwo   int      `json:"cost_for_two"`
	PureVeg      bool     `json:"pure_veg"`
}

// NewHTTPClient creates HTTP catalog client with default timeout.
func NewHTTPClient(rawURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse catalog url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("catalog url must be absolute")
	}
	return &HTTPClient{
		endpoint: parsed,
		logger:   logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Fetch downloads the restaurant list.
func (c *HTTPClient) Fetch(ctx context.Context) ([]model.Restaurant, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog endpoint returned status %d", resp.StatusCode)
	}

	var payload []restaurantPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	restaurants := make([]model.Restaurant, 0, len(payload))
	for _, p := range payload {
		restaurants = append(restaurants, model.Restaurant{
			ID:           p.ID,
			Name:         p.Name,
			Rating:       p.Rating,
			Cuisines:     p.Cuisines,
			DeliveryTime: p.DeliveryTime,
			CostForTwo:   p.CostForTwo,
			PureVeg:      p.PureVeg,
		})
	}
	return restaurants, nil
}
