package usecase

import (
	"context"
	"time"

	"github.com/snacksprint/storefront/internal/chatbot"
	"github.com/snacksprint/storefront/internal/domain/model"
	"github.com/snacksprint/storefront/internal/domain/repository"
)

// ChatUseCase resolves support questions and keeps the per-user transcript.
type ChatUseCase struct {
	resolver *chatbot.Resolver
	log      repository.ChatRepository
	now      func() time.Time
}

// NewChatUseCase constructs ChatUseCase.
func NewChatUseCase(resolver *chatbot.Resolver, log repository.ChatRepository) *ChatUseCase {
	return &ChatUseCase{resolver: resolver, log: log, now: time.Now}
}

// Ask resolves a question against the current app state and records the
// exchange in the transcript.
func (u *ChatUseCase) Ask(ctx context.Context, userID int64, question string, cart model.CartSnapshot, app model.AppSnapshot, restaurants []model.Restaurant) (*model.ChatMessage, error) {
	reply := u.resolver.Resolve(question, cart, app, restaurants)

	return u.log.Append(ctx, model.ChatMessage{
		UserID:   userID,
		Question: question,
		Answer:   reply.Answer,
		Action:   reply.Action,
		AskedAt:  u.now(),
	})
}

// History returns the user's chat transcript, oldest first.
func (u *ChatUseCase) History(ctx context.Context, userID int64) ([]model.ChatMessage, error) {
	return u.log.ListByUser(ctx, userID)
}
