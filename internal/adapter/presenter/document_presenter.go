package presenter

import (
	documentDTO "github.com/aura-ai/aura-backend/internal/adapter/dto/document"
	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// ToDocumentResponse converts a Document entity to its DTO. Extracted
// text and the storage key stay server-side.
func ToDocumentResponse(d *entities.Document) *documentDTO.DocumentResponse {
	if d == nil {
		return nil
	}

	return &documentDTO.DocumentResponse{
		ID:          d.ID.String(),
		Filename:    d.Filename,
		FileSize:    d.FileSize,
		WorkspaceID: d.WorkspaceID,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDocumentList converts a slice of documents, never returning nil
func ToDocumentList(docs []*entities.Document) []*documentDTO.DocumentResponse {
	items := make([]*documentDTO.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		items = append(items, ToDocumentResponse(d))
	}
	return items
}
