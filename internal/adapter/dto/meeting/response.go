package meeting

import (
	"time"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// MeetingListItem is the list-view card: previews only, no full text
type MeetingListItem struct {
	ID               string                        `json:"id"`
	Title            string                        `json:"title"`
	Date             time.Time                     `json:"date"`
	Participants     []entities.MeetingParticipant `json:"participants"`
	SummaryPreview   string                        `json:"summary_preview"`
	SummaryTruncated bool                          `json:"summary_truncated"`
	ActionItemsCount int                           `json:"action_items_count"`
	WorkspaceID      string                        `json:"workspace_id,omitempty"`
	CreatedAt        time.Time                     `json:"created_at"`
}

// MeetingDetail is the single-meeting view. The transcript preview is
// truncated for display; the full transcript has its own endpoint.
type MeetingDetail struct {
	ID                  string                        `json:"id"`
	Title               string                        `json:"title"`
	Date                time.Time                     `json:"date"`
	Participants        []entities.MeetingParticipant `json:"participants"`
	Summary             string                        `json:"summary"`
	TranscriptPreview   string                        `json:"transcript_preview"`
	TranscriptTruncated bool                          `json:"transcript_truncated"`
	ActionItems         []entities.ActionItem         `json:"action_items"`
	WorkspaceID         string                        `json:"workspace_id,omitempty"`
	CreatedAt           time.Time                     `json:"created_at"`
	UpdatedAt           time.Time                     `json:"updated_at"`
}

// UploadResponse confirms a processed transcript upload
type UploadResponse struct {
	Meeting          *MeetingDetail `json:"meeting"`
	ActionItemsCount int            `json:"action_items_count"`
}

// TranscriptResponse is the full transcript as display turns
type TranscriptResponse struct {
	MeetingID string               `json:"meeting_id"`
	Turns     []entities.Utterance `json:"turns"`
}

// ConvertToTaskResponse reports where the converted item landed
type ConvertToTaskResponse struct {
	ListID      string `json:"list_id"`
	CardID      string `json:"card_id"`
	ChecklistID string `json:"checklist_id"`
}
