package settings

// UpdateSettingsRequest merges provided fields into the stored
// settings. Omitted fields are left untouched.
type UpdateSettingsRequest struct {
	BoardSyncKey       *string `json:"board_sync_key,omitempty"`
	GenerationKey      *string `json:"generation_key,omitempty"`
	WorkspaceID        *string `json:"workspace_id,omitempty"`
	NotifyOnAssignment *bool   `json:"notify_on_assignment,omitempty"`
	ExportFormat       *string `json:"export_format,omitempty" validate:"omitempty,oneof=pdf csv"`
}
