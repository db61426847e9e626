package entities

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MeetingParticipant is one attendee extracted from a transcript.
// The id is the lower-cased name, so two attendees whose names differ
// only by case collapse to a single entry. Known limitation carried
// from the original extraction pipeline; callers must not rely on the
// id being unique per person.
type MeetingParticipant struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// NewMeetingParticipant builds a participant keyed by lower-cased name
func NewMeetingParticipant(name string) MeetingParticipant {
	return MeetingParticipant{
		ID:   strings.ToLower(strings.TrimSpace(name)),
		Name: strings.TrimSpace(name),
	}
}

// Utterance is one pseudo-turn of a transcript for display. When the
// source provides no structured turns, Time is a sequential counter
// and Speaker a placeholder label.
type Utterance struct {
	Time    string `json:"time"`
	Speaker string `json:"speaker"`
	Text    string `json:"text"`
}

// ActionItem is a meeting-derived suggested task. It is distinct from
// a Task until explicitly converted; conversion removes it from the
// meeting's list and is one-way.
type ActionItem struct {
	Text       string `json:"text"`
	Assignee   string `json:"assignee"`
	AssignedBy string `json:"assigned_by"`
}

// Meeting is the stored meeting record produced by transcript
// processing. Immutable from the dashboard's perspective except for
// action-item conversion.
type Meeting struct {
	ID             uuid.UUID            `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Title          string               `json:"title" gorm:"type:varchar(500);not null"`
	Date           time.Time            `json:"date" gorm:"type:timestamp;not null;index"`
	Participants   []MeetingParticipant `json:"participants" gorm:"type:jsonb;serializer:json"`
	Summary        string               `json:"summary" gorm:"type:text"`
	TranscriptText string               `json:"transcript_text" gorm:"type:text"`
	ActionItems    []ActionItem         `json:"action_items" gorm:"type:jsonb;serializer:json"`
	CreatedBy      uuid.UUID            `json:"created_by" gorm:"type:uuid;not null;index"`
	WorkspaceID    string               `json:"workspace_id,omitempty" gorm:"type:varchar(255);index"`
	CreatedAt      time.Time            `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time            `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting creates a meeting record owned by the uploading user
func NewMeeting(title string, createdBy uuid.UUID, workspaceID string) *Meeting {
	now := time.Now()
	return &Meeting{
		ID:          uuid.New(),
		Title:       title,
		Date:        now,
		CreatedBy:   createdBy,
		WorkspaceID: workspaceID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// RemoveActionItem removes the first action item matching assignee and
// text. Returns false when no item matched; the list is unchanged in
// that case.
func (m *Meeting) RemoveActionItem(assignee, text string) bool {
	for i, item := range m.ActionItems {
		if item.Assignee == assignee && item.Text == text {
			m.ActionItems = append(m.ActionItems[:i], m.ActionItems[i+1:]...)
			m.UpdatedAt = time.Now()
			return true
		}
	}
	return false
}
