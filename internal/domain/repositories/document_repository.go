package repositories

import (
	"context"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/google/uuid"
)

// DocumentRepository defines the interface for document data access
type DocumentRepository interface {
	// Create creates a new document
	Create(ctx context.Context, doc *entities.Document) error

	// FindByID finds a document by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.Document, error)

	// ListByWorkspace returns documents for a workspace, newest first
	ListByWorkspace(ctx context.Context, workspaceID string) ([]*entities.Document, error)

	// ListByUploader returns documents uploaded by a user, newest first
	ListByUploader(ctx context.Context, userID uuid.UUID) ([]*entities.Document, error)

	// Delete deletes a document
	Delete(ctx context.Context, id uuid.UUID) error
}
