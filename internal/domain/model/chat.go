package model

import "time"

// ChatAction is a structured instruction for the caller to perform a side
// effect. The chat engine itself never executes actions.
type ChatAction string

const (
	ChatActionNone        ChatAction = ""
	ChatActionOpenOrders  ChatAction = "OPEN_ORDERS"
	ChatActionOpenSupport ChatAction = "OPEN_SUPPORT"
	ChatActionClearCart   ChatAction = "CLEAR_CART"
)

// ChatReply is the result of resolving a single question.
type ChatReply struct {
	Answer string
	Action ChatAction
}

// ChatMessage is one stored question/answer exchange.
type ChatMessage struct {
	ID       int64
	UserID   int64
	Question string
	Answer   string
	Action   ChatAction
	AskedAt  time.Time
}

// AppSnapshot is a read-only, point-in-time view of account state passed into
// the chat resolver alongside the cart.
type AppSnapshot struct {
	User      *UserInfo
	Favorites []Restaurant
	Addresses []Address
	Orders    []Order
}

// LatestOrder returns the most recently placed order, or nil when none exist.
func (s AppSnapshot) LatestOrder() *Order {
	if len(s.Orders) == 0 {
		return nil
	}
	return &s.Orders[len(s.Orders)-1]
}
