package usecase

import (
	"io"
	"log/slog"

	"github.com/snacksprint/storefront/internal/storage/memory"
)

func newTestStorage() *memory.Storage {
	return memory.New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
