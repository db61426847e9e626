package repositories

import (
	"context"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/google/uuid"
)

// MeetingRepository defines the interface for meeting data access
type MeetingRepository interface {
	// Create creates a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID finds a meeting by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error)

	// ListByWorkspace returns meetings for a workspace, newest first
	ListByWorkspace(ctx context.Context, workspaceID string, limit, offset int) ([]*entities.Meeting, error)

	// ListByCreator returns meetings uploaded by a user, newest first
	ListByCreator(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, error)

	// Update updates a meeting
	Update(ctx context.Context, meeting *entities.Meeting) error

	// Delete deletes a meeting
	Delete(ctx context.Context, id uuid.UUID) error
}
