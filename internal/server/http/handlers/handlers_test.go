package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/snacksprint/storefront/internal/domain/errors"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/server/http/dto"
	"github.com/snacksprint/storefront/internal/server/http/middleware"
	testhelpers "github.com/snacksprint/storefront/internal/test"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	pattern := path
	if i := strings.Index(pattern, "?"); i >= 0 {
		pattern = pattern[:i]
	}
	return performPatternRequest(t, method, pattern, path, handler, setup, body, headers)
}

func performPatternRequest(t *testing.T, method, pattern, path string, handler gin.HandlerFunc, setup func(*gin.Context), body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, pattern, func(c *gin.Context) {
		if setup != nil {
			setup(c)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func asUser(id int64) func(*gin.Context) {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDContextKey, id)
	}
}

func jsonHeaders() map[string]string {
	return map[string]string{"Content-Type": "application/json"}
}

func TestCurrentUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUserID(c); got != 0 {
		t.Fatalf("expected 0 when not set, got %d", got)
	}

	c.Set(middleware.UserIDContextKey, int64(42))
	if got := CurrentUserID(c); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
}

func TestAuthHandlerRegister(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Name: "User", Password: "pass"})
	resp := performRequest(t, http.MethodPost, "/register", NewAuthHandler(testhelpers.AuthFacadeStub{}).Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if resp.Header().Get("Authorization") == "" {
		t.Fatalf("expected auth header to be set")
	}
}

func TestAuthHandlerRegisterPassesCredentials(t *testing.T) {
	login := testhelpers.RandomASCIIString(7, 14)
	password := testhelpers.RandomASCIIString(16, 32)
	body, _ := json.Marshal(dto.AuthRequest{Login: login, Name: "N", Password: password})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(ctx context.Context, gotLogin, gotName, gotPassword string) (string, error) {
		if gotLogin != login || gotPassword != password {
			t.Fatalf("unexpected credentials passed to facade: %q %q", gotLogin, gotPassword)
		}
		return "token", nil
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerRegisterConflict(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "pass"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{RegisterFn: func(context.Context, string, string, string) (string, error) {
		return "", domainErrors.ErrAlreadyExists
	}})
	resp := performRequest(t, http.MethodPost, "/register", handler.Register, nil, body, jsonHeaders())
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestAuthHandlerLoginUnauthorized(t *testing.T) {
	body, _ := json.Marshal(dto.AuthRequest{Login: "user", Password: "bad"})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{AuthenticateFn: func(context.Context, string, string) (string, error) {
		return "", domainErrors.ErrInvalidCredentials
	}})
	resp := performRequest(t, http.MethodPost, "/login", handler.Login, nil, body, jsonHeaders())
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestCatalogHandlerList(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/restaurants", handler.List, nil, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var restaurants []dto.RestaurantResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &restaurants); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(restaurants) != 1 || restaurants[0].Name != "Stub Kitchen" {
		t.Fatalf("unexpected payload %v", restaurants)
	}
}

func TestCatalogHandlerListBadRating(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/restaurants?min_rating=abc", handler.List, nil, nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCartHandlerAddItem(t *testing.T) {
	body, _ := json.Marshal(dto.AddCartItemRequest{ID: 1, Name: "Biryani", Price: 250, Quantity: 1})
	handler := NewCartHandler(testhelpers.CartFacadeStub{AddFn: func(ctx context.Context, userID int64, item model.CartItem) (model.CartSnapshot, error) {
		if userID != 7 || item.Name != "Biryani" {
			t.Fatalf("unexpected call: %d %+v", userID, item)
		}
		return model.CartSnapshot{
			Items:       []model.CartItem{item},
			Subtotal:    250,
			DeliveryFee: 40,
			Total:       290,
		}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/cart/items", handler.AddItem, asUser(7), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var cart dto.CartResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &cart); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if cart.Total != 290 || len(cart.Items) != 1 {
		t.Fatalf("unexpected cart %+v", cart)
	}
}

func TestCartHandlerAddItemInvalidQuantity(t *testing.T) {
	body, _ := json.Marshal(dto.AddCartItemRequest{ID: 1, Quantity: 0})
	handler := NewCartHandler(testhelpers.CartFacadeStub{AddFn: func(context.Context, int64, model.CartItem) (model.CartSnapshot, error) {
		return model.CartSnapshot{}, domainErrors.ErrInvalidQuantity
	}})
	resp := performRequest(t, http.MethodPost, "/cart/items", handler.AddItem, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestCartHandlerUpdateItemNotFound(t *testing.T) {
	body, _ := json.Marshal(dto.UpdateCartItemRequest{Quantity: 2})
	handler := NewCartHandler(testhelpers.CartFacadeStub{UpdateFn: func(context.Context, int64, int64, int) (model.CartSnapshot, error) {
		return model.CartSnapshot{}, domainErrors.ErrNotFound
	}})
	resp := performPatternRequest(t, http.MethodPatch, "/cart/items/:id", "/cart/items/5", handler.UpdateItem, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestCartHandlerClear(t *testing.T) {
	handler := NewCartHandler(testhelpers.CartFacadeStub{})
	resp := performRequest(t, http.MethodDelete, "/cart", handler.Clear, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestCartHandlerApplyPromoInvalid(t *testing.T) {
	body, _ := json.Marshal(dto.PromoRequest{Code: "NOPE"})
	handler := NewCartHandler(testhelpers.CartFacadeStub{ApplyPromoFn: func(context.Context, int64, string) (model.CartSnapshot, error) {
		return model.CartSnapshot{}, domainErrors.ErrInvalidPromoCode
	}})
	resp := performRequest(t, http.MethodPost, "/cart/promo", handler.ApplyPromo, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status 422, got %d", resp.Code)
	}
}

func TestOrderHandlerPlace(t *testing.T) {
	body, _ := json.Marshal(dto.PlaceOrderRequest{PaymentMethod: "upi"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(ctx context.Context, userID int64, address, payment string) (*model.Order, error) {
		return &model.Order{ID: "o1", UserID: userID, Status: model.OrderStatusConfirmed, Total: 440}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Place, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if order.Progress != 25 || order.EtaMinutes != 20 {
		t.Fatalf("expected tracking decoration, got %+v", order)
	}
}

func TestOrderHandlerPlaceEmptyCart(t *testing.T) {
	body, _ := json.Marshal(dto.PlaceOrderRequest{PaymentMethod: "upi"})
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{PlaceFn: func(context.Context, int64, string, string) (*model.Order, error) {
		return nil, domainErrors.ErrEmptyCart
	}})
	resp := performRequest(t, http.MethodPost, "/orders", handler.Place, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", resp.Code)
	}
}

func TestOrderHandlerLatestNoContent(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/orders/latest", handler.Latest, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}

func TestOrderHandlerListDecoratesTracking(t *testing.T) {
	handler := NewOrderHandler(testhelpers.OrderFacadeStub{OrdersFn: func(context.Context, int64) ([]model.Order, error) {
		return []model.Order{{ID: "order-0", Status: model.OrderStatusOutForDelivery}}, nil
	}})
	resp := performRequest(t, http.MethodGet, "/orders", handler.List, asUser(1), nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if orders[0].DeliveryPartner != "Kunal S." || orders[0].EtaMinutes != 5 || orders[0].Progress != 80 {
		t.Fatalf("unexpected tracking fields %+v", orders[0])
	}
}

func TestProfileHandlerToggleFavorite(t *testing.T) {
	body, _ := json.Marshal(dto.FavoriteRequest{RestaurantID: 3})
	handler := NewProfileHandler(testhelpers.ProfileFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/favorites", handler.ToggleFavorite, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var fav dto.FavoriteResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &fav); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if fav.RestaurantID != 3 || !fav.Favorite {
		t.Fatalf("unexpected payload %+v", fav)
	}
}

func TestProfileHandlerSaveAddress(t *testing.T) {
	body, _ := json.Marshal(dto.AddressRequest{Label: "Home", Address: "12 MG Road"})
	handler := NewProfileHandler(testhelpers.ProfileFacadeStub{})
	resp := performRequest(t, http.MethodPost, "/addresses", handler.SaveAddress, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestProfileHandlerSetDefaultBadID(t *testing.T) {
	handler := NewProfileHandler(testhelpers.ProfileFacadeStub{})
	resp := performRequest(t, http.MethodPatch, "/addresses/abc/default", handler.SetDefaultAddress, asUser(1), nil, nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestChatHandlerAsk(t *testing.T) {
	body, _ := json.Marshal(dto.ChatRequest{Question: "track my order"})
	handler := NewChatHandler(testhelpers.ChatFacadeStub{AskFn: func(ctx context.Context, userID int64, question string) (*model.ChatMessage, error) {
		return &model.ChatMessage{ID: 1, UserID: userID, Question: question, Answer: "on its way", Action: model.ChatActionOpenOrders}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/chat", handler.Ask, asUser(1), body, jsonHeaders())
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var msg dto.ChatMessageResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &msg); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if msg.Answer != "on its way" || msg.Action != model.ChatActionOpenOrders {
		t.Fatalf("unexpected payload %+v", msg)
	}
}

func TestChatHandlerHistoryNoContent(t *testing.T) {
	handler := NewChatHandler(testhelpers.ChatFacadeStub{})
	resp := performRequest(t, http.MethodGet, "/chat/history", handler.History, asUser(1), nil, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
}
