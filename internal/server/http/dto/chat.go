package dto

import (
	"time"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// ChatRequest carries a support question.
type ChatRequest struct {
	Question string `json:"question"`
}

// ChatMessageResponse describes one resolved exchange. Action, when present,
// is a UI hint the client may act on.
type ChatMessageResponse struct {
	ID       int64            `json:"id"`
	Question string           `json:"question"`
	Answer   string           `json:"answer"`
	Action   model.ChatAction `json:"action,omitempty"`
	AskedAt  time.Time        `json:"asked_at"`
}

// NewChatMessageResponse converts a chat message to its API view.
func NewChatMessageResponse(msg model.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:       msg.ID,
		Question: msg.Question,
		Answer:   msg.Answer,
		Action:   msg.Action,
		AskedAt:  msg.AskedAt,
	}
}

// NewChatMessageResponses converts a transcript.
func NewChatMessageResponses(messages []model.ChatMessage) []ChatMessageResponse {
	out := make([]ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		out = append(out, NewChatMessageResponse(msg))
	}
	return out
}
