package document

import "time"

// DocumentResponse is one uploaded document in listings
type DocumentResponse struct {
	ID          string    `json:"id"`
	Filename    string    `json:"filename"`
	FileSize    int64     `json:"file_size"`
	WorkspaceID string    `json:"workspace_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// UploadResponse confirms a stored upload
type UploadResponse struct {
	Document *DocumentResponse `json:"document"`
}

// QueryResponse is the generated answer for a query
type QueryResponse struct {
	Query  string `json:"query"`
	Answer string `json:"answer"`
}
