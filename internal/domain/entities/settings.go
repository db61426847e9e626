package entities

// Settings holds the per-user product configuration persisted in the
// user's settings JSONB column. PUT /settings merges non-empty fields
// only, so zero values here mean "not configured".
type Settings struct {
	// BoardSyncKey is the credential for the external board in
	// "key:token" form.
	BoardSyncKey string `json:"board_sync_key,omitempty"`

	// GenerationKey is the API key for the text-generation backend
	// used by transcript processing and document queries.
	GenerationKey string `json:"generation_key,omitempty"`

	// WorkspaceID is the external board id the user's dashboard reads
	// from. For employees it also scopes meeting and document
	// visibility.
	WorkspaceID string `json:"workspace_id,omitempty"`

	NotifyOnAssignment bool   `json:"notify_on_assignment,omitempty"`
	ExportFormat       string `json:"export_format,omitempty"`
}

// DefaultSettings returns settings for a freshly created user
func DefaultSettings() Settings {
	return Settings{
		NotifyOnAssignment: true,
		ExportFormat:       "pdf",
	}
}

// HasBoardAccess reports whether both the credential and the board id
// needed for board sync are present.
func (s Settings) HasBoardAccess() bool {
	return s.BoardSyncKey != "" && s.WorkspaceID != ""
}
