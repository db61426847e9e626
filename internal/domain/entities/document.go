package entities

import (
	"time"

	"github.com/google/uuid"
)

// Document is an uploaded file made available to document queries.
// The extracted text lives in the database; the original bytes go to
// object storage under StorageKey.
type Document struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Filename    string    `json:"filename" gorm:"type:varchar(500);not null"`
	Content     string    `json:"-" gorm:"type:text"`
	StorageKey  string    `json:"-" gorm:"type:varchar(500)"`
	FileSize    int64     `json:"file_size" gorm:"not null"`
	UploadedBy  uuid.UUID `json:"uploaded_by" gorm:"type:uuid;not null;index"`
	WorkspaceID string    `json:"workspace_id,omitempty" gorm:"type:varchar(255);index"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Document) TableName() string {
	return "documents"
}

// NewDocument creates a document record
func NewDocument(filename, content, storageKey string, size int64, uploadedBy uuid.UUID, workspaceID string) *Document {
	return &Document{
		ID:          uuid.New(),
		Filename:    filename,
		Content:     content,
		StorageKey:  storageKey,
		FileSize:    size,
		UploadedBy:  uploadedBy,
		WorkspaceID: workspaceID,
		CreatedAt:   time.Now(),
	}
}
