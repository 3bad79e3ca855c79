package tracking

import (
	"testing"

	"github.com/snacksprint/storefront/internal/domain/model"
)

func TestETAMinutes(t *testing.T) {
	cases := []struct {
		status model.OrderStatus
		want   int
	}{
		{model.OrderStatusDelivered, 0},
		{model.OrderStatusOutForDelivery, 5},
		{model.OrderStatusConfirmed, 20},
		{model.OrderStatusPreparing, 20},
		{model.OrderStatusReady, 20},
		{model.OrderStatus("weird"), 20},
	}
	for _, tc := range cases {
		if got := ETAMinutes(model.Order{Status: tc.status}); got != tc.want {
			t.Fatalf("ETAMinutes(%s) = %d, want %d", tc.status, got, tc.want)
		}
	}
}

func TestDeliveryPartnerDeterministic(t *testing.T) {
	order := model.Order{ID: "abc-42f"}
	first := DeliveryPartner(order)
	for i := 0; i < 10; i++ {
		if got := DeliveryPartner(order); got != first {
			t.Fatalf("partner changed between calls: %q vs %q", got, first)
		}
	}
}

func TestDeliveryPartnerSelection(t *testing.T) {
	// '0' is byte 48, 48 % 5 = 3.
	if got := DeliveryPartner(model.Order{ID: "order-0"}); got != "Kunal S." {
		t.Fatalf("unexpected partner %q", got)
	}
	// '2' is byte 50, 50 % 5 = 0.
	if got := DeliveryPartner(model.Order{ID: "order-2"}); got != "Rahul Sharma" {
		t.Fatalf("unexpected partner %q", got)
	}
	if got := DeliveryPartner(model.Order{}); got != "Rahul Sharma" {
		t.Fatalf("empty id should map to first partner, got %q", got)
	}
}

func TestProgressPercent(t *testing.T) {
	cases := []struct {
		status model.OrderStatus
		want   int
	}{
		{model.OrderStatusConfirmed, 25},
		{model.OrderStatusPreparing, 40},
		{model.OrderStatusReady, 60},
		{model.OrderStatusOutForDelivery, 80},
		{model.OrderStatusDelivered, 100},
		{model.OrderStatus("unknown"), 20},
		{model.OrderStatus(""), 20},
	}
	for _, tc := range cases {
		if got := ProgressPercent(tc.status); got != tc.want {
			t.Fatalf("ProgressPercent(%q) = %d, want %d", tc.status, got, tc.want)
		}
	}
}
