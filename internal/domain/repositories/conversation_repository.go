package repositories

import (
	"context"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/google/uuid"
)

// ConversationRepository defines the interface for conversation history access
type ConversationRepository interface {
	// FindByUserAndProduct finds the conversation for a user and product surface
	FindByUserAndProduct(ctx context.Context, userID uuid.UUID, product string) (*entities.Conversation, error)

	// Upsert creates or replaces the conversation for a user and product surface
	Upsert(ctx context.Context, conversation *entities.Conversation) error

	// Delete removes the conversation for a user and product surface
	Delete(ctx context.Context, userID uuid.UUID, product string) error
}
