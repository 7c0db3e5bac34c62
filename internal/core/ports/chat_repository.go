package ports

import (
	"context"

	"amenade/internal/core/domain/model/chat"
	"amenade/internal/core/domain/model/kernel"
)

// ChatRepository defines the persistence contract for chat aggregates.
type ChatRepository interface {
	// Add persists a new chat aggregate to storage.
	Add(ctx context.Context, aggregate *chat.Chat) error

	// Update persists changes to an existing chat aggregate,
	// including its participant list and last message.
	Update(ctx context.Context, aggregate *chat.Chat) error

	// Get retrieves a chat aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*chat.Chat, error)

	// GetByTypeAndPair retrieves the chat of the given type bound to the
	// (package, trip) pair. Returns errs.ObjectNotFoundError when no such
	// chat exists; the assignment workflow then creates one instead of
	// duplicating an existing thread.
	GetByTypeAndPair(ctx context.Context, chatType chat.Type, packageID, tripID kernel.UUID) (*chat.Chat, error)
}
