package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// DocumentRepository implements the document repository interface using GORM
type DocumentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{
		db: db,
	}
}

// Create creates a new document
func (r *DocumentRepository) Create(ctx context.Context, doc *entities.Document) error {
	if err := r.db.WithContext(ctx).Create(doc).Error; err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// FindByID finds a document by ID
func (r *DocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entities.Document, error) {
	var doc entities.Document
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&doc).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID: %w", err)
	}
	return &doc, nil
}

// ListByWorkspace returns documents for a workspace, newest first
func (r *DocumentRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]*entities.Document, error) {
	var docs []*entities.Document
	if err := r.db.WithContext(ctx).
		Where("workspace_id = ?", workspaceID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents by workspace: %w", err)
	}
	return docs, nil
}

// ListByUploader returns documents uploaded by a user, newest first
func (r *DocumentRepository) ListByUploader(ctx context.Context, userID uuid.UUID) ([]*entities.Document, error) {
	var docs []*entities.Document
	if err := r.db.WithContext(ctx).
		Where("uploaded_by = ?", userID).
		Order("created_at DESC").
		Find(&docs).Error; err != nil {
		return nil, fmt.Errorf("failed to list documents by uploader: %w", err)
	}
	return docs, nil
}

// Delete deletes a document
func (r *DocumentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&entities.Document{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
