package chatbot

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// cascade returns the rule list in precedence order. First match wins and no
// further predicates run, so a question matching several categories resolves
// to the earliest one. The order-tracking rule casts the widest net and must
// stay on top or it would be shadowed by narrower rules below it.
func cascade() []rule {
	return []rule{
		{
			name: "order-status",
			match: func(q string) bool {
				return containsAny(q,
					"status", "track", "eta", "kaha", "kab",
					"update", "progress", "latest", "live",
					"how long", "kitna time", "abhi ka", "bacha",
					"where is my order", "mera order",
					"is it delivered", "delivered hua", "when will it arrive",
				)
			},
			respond: orderStatusReply,
		},
		{
			name: "delivery-partner-contact",
			match: func(q string) bool {
				return containsAny(q, "delivery boy", "driver number", "rider contact")
			},
			respond: staticReply("Once your order is out for delivery, the rider's contact number becomes visible in the order details. Check the My Orders page.", model.ChatActionNone),
		},
		{
			name: "payment-methods",
			match: func(q string) bool {
				return containsAny(q, "payment", "pay kaise", "methods", "options")
			},
			respond: staticReply("We support UPI, wallets, credit/debit cards, and Cash on Delivery. Pick your method during checkout.", model.ChatActionNone),
		},
		{
			name: "cash-on-delivery",
			match: func(q string) bool {
				return hasWord(q, "cod") || strings.Contains(q, "cash on delivery")
			},
			respond: staticReply("Yes, Cash on Delivery is available in most areas. If COD isn't shown at checkout, the restaurant or zone doesn't support it.", model.ChatActionNone),
		},
		{
			name: "refunds",
			match: func(q string) bool {
				return containsAny(q, "refund", "money back")
			},
			respond: staticReply("Refunds usually take 2-5 business days depending on your bank. We notify you as soon as one is processed.", model.ChatActionNone),
		},
		{
			name: "cancel-order",
			match: func(q string) bool {
				return strings.Contains(q, "cancel") && strings.Contains(q, "order")
			},
			respond: staticReply("If the restaurant hasn't accepted your order yet, you can cancel it instantly from the My Orders page.", model.ChatActionOpenOrders),
		},
		{
			name: "edit-order",
			match: func(q string) bool {
				return strings.Contains(q, "edit") && strings.Contains(q, "order")
			},
			respond: staticReply("Orders can't be edited once placed, but you can cancel before confirmation and reorder with changes.", model.ChatActionNone),
		},
		{
			name: "restaurant-hours",
			match: func(q string) bool {
				return strings.Contains(q, "open") && strings.Contains(q, "restaurant")
			},
			respond: staticReply("Restaurant timings vary. Each restaurant card shows its current state — open, closing soon, or temporarily unavailable.", model.ChatActionNone),
		},
		{
			name: "spice-level",
			match: func(q string) bool {
				return containsAny(q, "spicy", "spice level")
			},
			respond: staticReply("Most restaurants mention spice levels in their dish descriptions. When they don't, medium spice is the usual default.", model.ChatActionNone),
		},
		{
			name: "fastest-delivery",
			match: func(q string) bool {
				return containsAny(q, "fastest", "quick delivery")
			},
			respond: staticReply("Fastest delivery depends on distance and kitchen load. Restaurants tagged Fast Delivery are your best bet.", model.ChatActionNone),
		},
		{
			name: "budget-food",
			match: func(q string) bool {
				return containsAny(q, "cheap", "budget", "low price")
			},
			respond: staticReply("For budget-friendly meals, filter restaurants by price range. Many offer combo deals for maximum value.", model.ChatActionNone),
		},
		{
			name: "high-protein",
			match: func(q string) bool {
				return containsAny(q, "protein", "healthy", "gym food")
			},
			respond: staticReply("High-protein meals are usually tagged Healthy or Fitness Meals. Look under health-focused restaurants or use the veg/non-veg filter.", model.ChatActionNone),
		},
		{
			name: "contact-support",
			match: func(q string) bool {
				return containsAny(q, "contact support", "help karo", "support number")
			},
			respond: staticReply("Our support team is available 24/7 inside the app. Open the Help section for chat or quick issue reporting.", model.ChatActionOpenSupport),
		},
		{
			name: "gst-tax",
			match: func(q string) bool {
				return containsAny(q, "gst", "tax", "charges")
			},
			respond: staticReply("GST and restaurant charges are shown transparently on the checkout page before payment.", model.ChatActionNone),
		},
		{
			name: "delivery-fee",
			match: func(q string) bool {
				return containsAny(q, "delivery fee", "why charge")
			},
			respond: staticReply("The delivery fee depends on demand, distance, and time of day. It adjusts automatically to keep delivery fast and available.", model.ChatActionNone),
		},
		{
			name: "vegan",
			match: func(q string) bool {
				return strings.Contains(q, "vegan")
			},
			respond: staticReply("Some restaurants offer vegan options, listed clearly in their menus. Search for 'vegan' to see available dishes.", model.ChatActionNone),
		},
		{
			name: "halal",
			match: func(q string) bool {
				return strings.Contains(q, "halal")
			},
			respond: staticReply("Halal-certified restaurants mention their certification in the details. Verify on the restaurant page to be sure.", model.ChatActionNone),
		},
		{
			name: "best-biryani",
			match: func(q string) bool {
				return strings.Contains(q, "biryani") && strings.Contains(q, "best")
			},
			respond: staticReply("Top-rated biryani spots show up first in the list. Places above 4.3⭐ are the safest bet for authentic taste.", model.ChatActionNone),
		},
		{
			name: "food-safety",
			match: func(q string) bool {
				return containsAny(q, "safe", "hygiene", "clean", "quality")
			},
			respond: staticReply("Most restaurants follow strict hygiene guidelines. Check ratings, reviews, and hygiene badges on restaurant pages.", model.ChatActionNone),
		},
		{
			name: "clear-cart",
			match: func(q string) bool {
				return containsAny(q, "clear cart", "empty cart", "saara hata", "sab hata")
			},
			respond: clearCartReply,
		},
		{
			name:    "greeting-help",
			match:   greetingMatch,
			respond: staticReply("Hi! I'm the SnackSprint bot. Ask me about your cart total, items, promo codes, favourites, saved addresses, orders, delivery time, veg options, or restaurant ratings.", model.ChatActionNone),
		},
		{
			name: "cart-total",
			match: func(q string) bool {
				return strings.Contains(q, "cart") && containsAny(q, "total", "amount", "bill", "price")
			},
			respond: cartTotalReply,
		},
		{
			name: "cart-subtotal",
			match: func(q string) bool {
				return containsAny(q, "subtotal", "only items", "items total") && strings.Contains(q, "cart")
			},
			respond: cartSubtotalReply,
		},
		{
			name: "cart-item-count",
			match: func(q string) bool {
				return strings.Contains(q, "cart") && containsAny(q, "items", "item", "kitne", "how many")
			},
			respond: cartItemCountReply,
		},
		{
			name: "cart-item-list",
			match: func(q string) bool {
				return strings.Contains(q, "cart") && containsAny(q, "show", "list", "kya hai")
			},
			respond: cartItemListReply,
		},
		{
			name: "promo-codes",
			match: func(q string) bool {
				return containsAny(q, "promo", "coupon", "discount")
			},
			respond: promoReply,
		},
		{
			name: "favorites",
			match: func(q string) bool {
				return strings.Contains(q, "fav")
			},
			respond: favoritesReply,
		},
		{
			name: "saved-addresses",
			match: func(q string) bool {
				return strings.Contains(q, "address")
			},
			respond: addressesReply,
		},
		{
			name: "order-history",
			match: func(q string) bool {
				return containsAny(q, "order history", "orders", "previous orders", "last order", "pichla order")
			},
			respond: orderHistoryReply,
		},
		{
			name: "delivery-time-range",
			match: func(q string) bool {
				return strings.Contains(q, "delivery") && containsAny(q, "time", "kitna", "when")
			},
			respond: deliveryTimeReply,
		},
		{
			name: "veg-filter",
			match: func(q string) bool {
				return strings.Contains(q, "veg")
			},
			respond: staticReply("If you want Pure Veg only, switch on the Pure Veg Only filter and the restaurant list narrows down automatically.", model.ChatActionNone),
		},
		{
			name: "top-rated",
			match: func(q string) bool {
				return containsAny(q, "best", "top rated", "rating", "suggest", "recommend")
			},
			respond: topRatedReply,
		},
		{
			name: "login-account",
			match: func(q string) bool {
				return containsAny(q, "login", "account", "profile")
			},
			respond: loginReply,
		},
		{
			name: "cart-generic",
			match: func(q string) bool {
				return strings.Contains(q, "cart")
			},
			respond: cartGenericReply,
		},
	}
}

func staticReply(answer string, action model.ChatAction) func(*Resolver, request) model.ChatReply {
	return func(*Resolver, request) model.ChatReply {
		return model.ChatReply{Answer: answer, Action: action}
	}
}

func greetingMatch(q string) bool {
	for _, w := range []string{"hi", "hello", "hey"} {
		if isGreetingWord(q, w) {
			return true
		}
	}
	return containsAny(q, "who are you", "what can you do", "help")
}

func clearCartReply(_ *Resolver, req request) model.ChatReply {
	if len(req.cart.Items) == 0 {
		return model.ChatReply{Answer: "Your cart is already empty."}
	}
	return model.ChatReply{Answer: "Done, your cart has been cleared.", Action: model.ChatActionClearCart}
}

func cartTotalReply(_ *Resolver, req request) model.ChatReply {
	if len(req.cart.Items) == 0 {
		return model.ChatReply{Answer: "Your cart is empty right now — add some items and I'll total them up."}
	}
	answer := fmt.Sprintf("Your cart total is %s right now, including a %s delivery fee.",
		rupees(req.cart.Total), rupees(req.cart.DeliveryFee))
	return model.ChatReply{Answer: answer}
}

func cartSubtotalReply(_ *Resolver, req request) model.ChatReply {
	if len(req.cart.Items) == 0 {
		return model.ChatReply{Answer: "Your cart is empty, so the subtotal is zero."}
	}
	answer := fmt.Sprintf("The items subtotal is %s; a %s delivery fee applies on top.",
		rupees(req.cart.Subtotal), rupees(req.cart.DeliveryFee))
	return model.ChatReply{Answer: answer}
}

func cartItemCountReply(_ *Resolver, req request) model.ChatReply {
	count := req.cart.ItemCount()
	if count == 0 {
		return model.ChatReply{Answer: "Your cart has no items yet."}
	}
	answer := fmt.Sprintf("You have %d items in your cart (%d different dishes).", count, len(req.cart.Items))
	return model.ChatReply{Answer: answer}
}

func cartItemListReply(_ *Resolver, req request) model.ChatReply {
	if len(req.cart.Items) == 0 {
		return model.ChatReply{Answer: "Your cart is empty right now."}
	}
	names := make([]string, 0, len(req.cart.Items))
	for _, item := range req.cart.Items {
		names = append(names, fmt.Sprintf("%s x%d", item.Name, item.Quantity))
	}
	return model.ChatReply{Answer: "Your cart has: " + strings.Join(names, ", ") + "."}
}

func promoReply(_ *Resolver, req request) model.ChatReply {
	if req.cart.PromoCode != "" {
		answer := fmt.Sprintf("You have %s applied for %s off. Also worth trying: FIRST50 or SNACK10.",
			req.cart.PromoCode, rupees(req.cart.PromoDiscount))
		return model.ChatReply{Answer: answer}
	}
	return model.ChatReply{Answer: "No promo code is applied right now. Try FIRST50 (₹50 off) or SNACK10 (10% off up to ₹100)."}
}

func favoritesReply(_ *Resolver, req request) model.ChatReply {
	favs := req.app.Favorites
	if len(favs) == 0 {
		return model.ChatReply{Answer: "Your favourites list is empty so far."}
	}
	limit := len(favs)
	if limit > 5 {
		limit = 5
	}
	names := make([]string, 0, limit)
	for _, r := range favs[:limit] {
		names = append(names, r.Name)
	}
	answer := fmt.Sprintf("You have %d favourite restaurants. Top: %s.", len(favs), strings.Join(names, ", "))
	return model.ChatReply{Answer: answer}
}

func addressesReply(_ *Resolver, req request) model.ChatReply {
	if hasWord(req.q, "add") || hasWord(req.q, "save") {
		return model.ChatReply{Answer: "To add a new address, open the Address section in your profile and use the Add Address button."}
	}
	addrs := req.app.Addresses
	if len(addrs) == 0 {
		return model.ChatReply{Answer: "You haven't saved any addresses yet."}
	}
	if containsAny(req.q, "default", "primary", "main") {
		return model.ChatReply{Answer: fmt.Sprintf("Your default address: %s.", addrs[0].String())}
	}
	answer := fmt.Sprintf("You have %d saved addresses. First: %s.", len(addrs), addrs[0].String())
	return model.ChatReply{Answer: answer}
}

func orderHistoryReply(_ *Resolver, req request) model.ChatReply {
	orders := req.app.Orders
	if len(orders) == 0 {
		return model.ChatReply{Answer: "You haven't placed any orders yet."}
	}
	if containsAny(req.q, "last", "recent", "pichla") {
		last := orders[len(orders)-1]
		address := last.Address
		if address == "" {
			address = "saved address"
		}
		answer := fmt.Sprintf("Your last order came to %s with %d items, delivered to %q.",
			rupees(last.Total), len(last.Items), address)
		return model.ChatReply{Answer: answer}
	}
	answer := fmt.Sprintf("You've placed %d orders so far. Full details are in the My Orders section.", len(orders))
	return model.ChatReply{Answer: answer}
}

func deliveryTimeReply(_ *Resolver, req request) model.ChatReply {
	if len(req.restaurants) == 0 {
		return model.ChatReply{Answer: "Restaurant data is still loading, try again in a moment."}
	}
	times := make([]int, 0, len(req.restaurants))
	for _, r := range req.restaurants {
		if minutes := leadingMinutes(r.DeliveryTime); minutes > 0 {
			times = append(times, minutes)
		}
	}
	if len(times) == 0 {
		return model.ChatReply{Answer: "Exact delivery times aren't available right now."}
	}
	min, max := times[0], times[0]
	for _, t := range times[1:] {
		if t < min {
			min = t
		}
		if t > max {
			max = t
		}
	}
	answer := fmt.Sprintf("Most restaurants deliver within %d–%d minutes. The exact time shows on each restaurant card.", min, max)
	return model.ChatReply{Answer: answer}
}

func topRatedReply(_ *Resolver, req request) model.ChatReply {
	if len(req.restaurants) == 0 {
		return model.ChatReply{Answer: "Restaurants are still loading — give me a moment and I'll suggest the best ones."}
	}
	sorted := make([]model.Restaurant, len(req.restaurants))
	copy(sorted, req.restaurants)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	limit := len(sorted)
	if limit > 3 {
		limit = 3
	}
	top := make([]string, 0, limit)
	for _, r := range sorted[:limit] {
		top = append(top, fmt.Sprintf("%s (%s⭐)", r.Name, strconv.FormatFloat(r.Rating, 'f', -1, 64)))
	}
	answer := fmt.Sprintf("Top rated options right now: %s. Use filters to refine further.", strings.Join(top, ", "))
	return model.ChatReply{Answer: answer}
}

func loginReply(_ *Resolver, req request) model.ChatReply {
	if req.app.User != nil && req.app.User.Name != "" {
		return model.ChatReply{Answer: fmt.Sprintf("You're logged in as %s. Head to the Account section to update your details.", req.app.User.Name)}
	}
	return model.ChatReply{Answer: "You're not logged in yet. Use the Login button in the navbar to sign in or sign up."}
}

func cartGenericReply(_ *Resolver, req request) model.ChatReply {
	if len(req.cart.Items) == 0 {
		return model.ChatReply{Answer: "Your cart is empty. Add any dish to the cart and I can report totals."}
	}
	answer := fmt.Sprintf("Your cart has %d different items. Ask me for the total, the item list, promo codes, or to clear the cart.", len(req.cart.Items))
	return model.ChatReply{Answer: answer}
}

// rupees renders an amount the way the UI does: rounded to whole rupees.
func rupees(amount float64) string {
	return "₹" + strconv.FormatFloat(amount, 'f', 0, 64)
}

// leadingMinutes extracts the first run of digits from a delivery-time label
// like "30-40 mins". Labels without digits fall back to 40; a parsed zero is
// treated as missing data.
func leadingMinutes(label string) int {
	start := -1
	for i, r := range label {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			n, _ := strconv.Atoi(label[start:i])
			return n
		}
	}
	if start >= 0 {
		n, _ := strconv.Atoi(label[start:])
		return n
	}
	return 40
}
