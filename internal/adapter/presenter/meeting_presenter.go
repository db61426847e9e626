package presenter

import (
	meetingDTO "github.com/aura-ai/aura-backend/internal/adapter/dto/meeting"
	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/usecase/meeting"
)

// ToMeetingListItem converts a Meeting entity to its list-view DTO.
// The summary is truncated for display; action items are counted, not
// inlined.
func ToMeetingListItem(m *entities.Meeting) *meetingDTO.MeetingListItem {
	if m == nil {
		return nil
	}

	return &meetingDTO.MeetingListItem{
		ID:               m.ID.String(),
		Title:            m.Title,
		Date:             m.Date,
		Participants:     m.Participants,
		SummaryPreview:   meeting.Truncate(m.Summary, meeting.SummaryPreviewLimit),
		SummaryTruncated: meeting.Truncated(m.Summary, meeting.SummaryPreviewLimit),
		ActionItemsCount: len(m.ActionItems),
		WorkspaceID:      m.WorkspaceID,
		CreatedAt:        m.CreatedAt,
	}
}

// ToMeetingList converts a slice of meetings, never returning nil
func ToMeetingList(meetings []*entities.Meeting) []*meetingDTO.MeetingListItem {
	items := make([]*meetingDTO.MeetingListItem, 0, len(meetings))
	for _, m := range meetings {
		items = append(items, ToMeetingListItem(m))
	}
	return items
}

// ToMeetingDetail converts a Meeting entity to its detail DTO. The
// transcript is truncated to a preview; the full text is served by the
// transcript endpoint.
func ToMeetingDetail(m *entities.Meeting) *meetingDTO.MeetingDetail {
	if m == nil {
		return nil
	}

	return &meetingDTO.MeetingDetail{
		ID:                  m.ID.String(),
		Title:               m.Title,
		Date:                m.Date,
		Participants:        m.Participants,
		Summary:             m.Summary,
		TranscriptPreview:   meeting.Truncate(m.TranscriptText, meeting.TranscriptPreviewLimit),
		TranscriptTruncated: meeting.Truncated(m.TranscriptText, meeting.TranscriptPreviewLimit),
		ActionItems:         m.ActionItems,
		WorkspaceID:         m.WorkspaceID,
		CreatedAt:           m.CreatedAt,
		UpdatedAt:           m.UpdatedAt,
	}
}
