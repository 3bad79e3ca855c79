// Package chatbot implements the rule-based FAQ engine behind the storefront
// chat widget. Resolving a question is a pure read: the resolver inspects
// snapshots of the cart, account state and restaurant catalog, and returns an
// answer plus an optional action for the caller to execute. It never mutates
// its inputs and never fails; unmatched questions get the fallback answer.
package chatbot

import (
	"math/rand"
	"strings"

	"github.com/snacksprint/storefront/internal/domain/model"
)

const (
	answerEmptyQuestion = "Your question came through empty — please type it again."
	answerFallback      = "I didn't quite get that. Try asking about your cart total, items, promo codes, favourites, saved addresses, orders, delivery time, or the best restaurants."
)

// Resolver matches questions against an ordered rule cascade. The first rule
// whose predicate passes produces the reply; ordering is part of the contract.
type Resolver struct {
	pick  func(n int) int
	rules []rule
}

// Options configures optional resolver behaviour.
type Options struct {
	// Pick selects an index in [0, n) for flavor-line choice. Defaults to
	// math/rand; tests inject a fixed picker for exact-match assertions.
	Pick func(n int) int
}

// NewResolver builds a resolver with the fixed rule cascade.
func NewResolver(opts Options) *Resolver {
	pick := opts.Pick
	if pick == nil {
		pick = rand.Intn
	}
	return &Resolver{pick: pick, rules: cascade()}
}

// Resolve answers a free-text question against read-only state snapshots.
func (r *Resolver) Resolve(question string, cart model.CartSnapshot, app model.AppSnapshot, restaurants []model.Restaurant) model.ChatReply {
	q := strings.ToLower(strings.TrimSpace(question))
	if q == "" {
		return model.ChatReply{Answer: answerEmptyQuestion}
	}

	req := request{q: q, cart: cart, app: app, restaurants: restaurants}
	for _, rule := range r.rules {
		if rule.match(q) {
			return rule.respond(r, req)
		}
	}
	return model.ChatReply{Answer: answerFallback}
}

// request carries one resolution call's inputs through the cascade.
type request struct {
	q           string
	cart        model.CartSnapshot
	app         model.AppSnapshot
	restaurants []model.Restaurant
}

// rule pairs a keyword predicate with its reply builder.
type rule struct {
	name    string
	match   func(q string) bool
	respond func(r *Resolver, req request) model.ChatReply
}

func containsAny(q string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(q, sub) {
			return true
		}
	}
	return false
}

// isGreetingWord reports whether the question is the bare word or starts with
// it, so "hello there" greets but "heyday deals" does not.
func isGreetingWord(q, word string) bool {
	return q == word || strings.HasPrefix(q, word+" ")
}

// hasWord reports whether the question contains word as a standalone token.
// Substring matching is too loose for short keywords: "promo codes" contains
// "cod" and "address" contains "add".
func hasWord(q, word string) bool {
	for _, token := range strings.FieldsFunc(q, func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9')
	}) {
		if token == word {
			return true
		}
	}
	return false
}
