package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// ConversationRepository implements the conversation repository interface using GORM
type ConversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *gorm.DB) *ConversationRepository {
	return &ConversationRepository{
		db: db,
	}
}

// FindByUserAndProduct finds the conversation for a user and product surface
func (r *ConversationRepository) FindByUserAndProduct(ctx context.Context, userID uuid.UUID, product string) (*entities.Conversation, error) {
	var conversation entities.Conversation
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product = ?", userID, product).
		First(&conversation).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrConversationNotFound
		}
		return nil, fmt.Errorf("failed to find conversation: %w", err)
	}
	return &conversation, nil
}

// Upsert creates or replaces the conversation for a user and product surface
func (r *ConversationRepository) Upsert(ctx context.Context, conversation *entities.Conversation) error {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "product"}},
			DoUpdates: clause.AssignmentColumns([]string{"messages", "updated_at"}),
		}).
		Create(conversation).Error; err != nil {
		return fmt.Errorf("failed to upsert conversation: %w", err)
	}
	return nil
}

// Delete removes the conversation for a user and product surface
func (r *ConversationRepository) Delete(ctx context.Context, userID uuid.UUID, product string) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND product = ?", userID, product).
		Delete(&entities.Conversation{}).Error; err != nil {
		return fmt.Errorf("failed to delete conversation: %w", err)
	}
	return nil
}
