// Package tracking derives synthetic delivery details from an order.
//
// There is no real delivery integration: the partner assignment, ETA and
// progress are deterministic functions of the order id and status. Every
// surface that shows these values must go through this package so two views
// of the same order can never disagree.
package tracking

import "github.com/snacksprint/storefront/internal/domain/model"

var deliveryPartners = [...]string{
	"Rahul Sharma",
	"Priya Singh",
	"Aman Verma",
	"Kunal S.",
	"Neha T.",
}

// ETAMinutes returns the fake arrival estimate for the order.
func ETAMinutes(order model.Order) int {
	switch order.Status {
	case model.OrderStatusDelivered:
		return 0
	case model.OrderStatusOutForDelivery:
		return 5
	default:
		return 20
	}
}

// DeliveryPartner assigns a partner from a fixed roster by hashing the last
// byte of the order id. Deterministic for a given id.
func DeliveryPartner(order model.Order) string {
	if order.ID == "" {
		return deliveryPartners[0]
	}
	last := order.ID[len(order.ID)-1]
	return deliveryPartners[int(last)%len(deliveryPartners)]
}

// ProgressPercent maps a status to a coarse completion percentage.
// Unrecognized statuses report 20 so a new lifecycle stage degrades to
// "barely started" instead of failing.
func ProgressPercent(status model.OrderStatus) int {
	switch status {
	case model.OrderStatusConfirmed:
		return 25
	case model.OrderStatusPreparing:
		return 40
	case model.OrderStatusReady:
		return 60
	case model.OrderStatusOutForDelivery:
		return 80
	case model.OrderStatusDelivered:
		return 100
	}
	return 20
}
