package repository

import (
	"context"

	"github.com/snacksprint/storefront/internal/domain/model"
)

// ChatRepository describes the stored chat transcript.
type ChatRepository interface {
	Append(ctx context.Context, message model.ChatMessage) (*model.ChatMessage, error)
	ListByUser(ctx context.Context, userID int64) ([]model.ChatMessage, error)
}
