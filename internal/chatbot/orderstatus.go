package chatbot

import (
	"fmt"
	"strings"

	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/tracking"
)

// flavorLines holds per-status chatty one-liners. One is picked via the
// resolver's injectable picker, the only nondeterministic output in the engine.
var flavorLines = map[model.OrderStatus][]string{
	model.OrderStatusConfirmed: {
		"Your order is being queued up in the kitchen.",
		"The restaurant has locked in your order — cooking soon.",
		"Your food prep is about to begin. 🔥",
	},
	model.OrderStatusPreparing: {
		"The kitchen is seasoning things up for you 🌶️",
		"Your food is currently being cooked with care.",
	},
	model.OrderStatusOutForDelivery: {
		"Rider is on the road heading your way 🛵💨",
		"Your food is literally moving closer every minute.",
		"Delivery partner picked it up and is rushing towards you.",
	},
	model.OrderStatusDelivered: {
		"Your food has reached home. Enjoy your meal! 🍽️",
		"Delivered successfully — hope it tasted amazing!",
	},
}

// orderStatusReply builds the rich tracking answer for the latest order:
// status line, ETA, progress, a flavor line, and a three-step timeline. All
// numbers come from the tracking package so the chat answer can never
// disagree with the orders view.
func orderStatusReply(r *Resolver, req request) model.ChatReply {
	last := req.app.LatestOrder()
	if last == nil {
		return model.ChatReply{Answer: "You haven't placed any orders yet — nothing to track at the moment."}
	}

	eta := tracking.ETAMinutes(*last)
	partner := tracking.DeliveryPartner(*last)
	progress := tracking.ProgressPercent(last.Status)
	timeline := orderTimeline(last.Status)

	var answer string
	switch last.Status {
	case model.OrderStatusDelivered:
		answer = fmt.Sprintf("Your order has already been delivered. 🎉\nProgress: 100%%\n%s\n%s",
			r.flavorLine(last.Status), timeline)
	case model.OrderStatusOutForDelivery:
		answer = fmt.Sprintf("Your order is out for delivery!\nRider: %s\nETA: approx. %d minutes\nProgress: %d%%\n%s\n%s",
			partner, eta, progress, r.flavorLine(last.Status), timeline)
	case model.OrderStatusConfirmed:
		answer = fmt.Sprintf("Your order is confirmed and the restaurant is preparing it.\nETA: ~%d minutes\nProgress: %d%%\n%s\n%s",
			eta, progress, r.flavorLine(last.Status), timeline)
	default:
		lines := []string{
			fmt.Sprintf("Your order status: %s", last.Status),
			fmt.Sprintf("ETA: ~%d minutes", eta),
			fmt.Sprintf("Progress: %d%%", progress),
		}
		if flavor := r.flavorLine(last.Status); flavor != "" {
			lines = append(lines, flavor)
		}
		lines = append(lines, timeline)
		answer = strings.Join(lines, "\n")
	}

	return model.ChatReply{Answer: answer, Action: model.ChatActionOpenOrders}
}

// flavorLine picks one chatty line for the status, or "" when the status has
// no flavor list.
func (r *Resolver) flavorLine(status model.OrderStatus) string {
	lines := flavorLines[status]
	if len(lines) == 0 {
		return ""
	}
	return lines[r.pick(len(lines))]
}

// orderTimeline renders the three-step checklist. Steps are checked off by
// progress thresholds so a later status never unchecks an earlier step; the
// out-for-delivery row shows an arrow while that leg is in flight.
func orderTimeline(status model.OrderStatus) string {
	progress := tracking.ProgressPercent(status)

	delivered := "○ Delivered"
	if progress >= 100 {
		delivered = "✔ Delivered"
	}

	outForDelivery := "○ Out for Delivery"
	switch {
	case status == model.OrderStatusOutForDelivery:
		outForDelivery = "➡ Out for Delivery"
	case progress >= 100:
		outForDelivery = "✔ Out for Delivery"
	}

	confirmed := "○ Confirmed"
	if progress >= 25 {
		confirmed = "✔ Confirmed"
	}

	return strings.Join([]string{"Order Timeline:", delivered, outForDelivery, confirmed}, "\n")
}
