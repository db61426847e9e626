package meeting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/domain/repositories"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/genai"
	"github.com/aura-ai/aura-backend/internal/usecase/board"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
	"github.com/aura-ai/aura-backend/pkg/extract"
)

// Service handles transcript processing and the meeting store
type Service struct {
	meetingRepo repositories.MeetingRepository
	boardSvc    *board.Service
	generator   *genai.Client
	logger      *zap.Logger
}

// NewService creates a new meeting service
func NewService(meetingRepo repositories.MeetingRepository, boardSvc *board.Service, generator *genai.Client, logger *zap.Logger) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		boardSvc:    boardSvc,
		generator:   generator,
		logger:      logger,
	}
}

// UploadResult is the outcome of transcript processing
type UploadResult struct {
	Meeting          *entities.Meeting `json:"meeting"`
	ActionItemsCount int               `json:"action_items_count"`
}

// Upload processes a transcript document into a stored meeting.
// Only .docx uploads are accepted; the pipeline extracts the text,
// generates a summary, extracts participants and then the per-person
// action items.
func (s *Service) Upload(ctx context.Context, user *entities.User, filename string, fileContent []byte, workspaceID string) (*UploadResult, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".docx") {
		return nil, usecaseErrors.ErrUnsupportedFormat
	}

	transcriptText, err := extract.Text(fileContent, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecaseErrors.ErrExtractionFailed, err)
	}
	if transcriptText == "" {
		return nil, usecaseErrors.ErrEmptyTranscript
	}

	generator := s.generator.WithKey(user.GetSettings().GenerationKey)

	summary, err := generator.Generate(ctx, summaryPrompt(transcriptText))
	if err != nil {
		return nil, fmt.Errorf("failed to generate summary: %w", err)
	}

	participantsRaw, err := generator.Generate(ctx, participantsPrompt(summary))
	if err != nil {
		return nil, fmt.Errorf("failed to extract participants: %w", err)
	}
	names := ParseParticipants(participantsRaw)
	participants := AdaptParticipants(names)

	var actionItems []entities.ActionItem
	for _, participant := range participants {
		tasksRaw, err := generator.Generate(ctx, tasksPrompt(summary, participant.Name))
		if err != nil {
			s.logger.Warn("task extraction failed for participant",
				zap.String("participant", participant.Name),
				zap.Error(err),
			)
			continue
		}
		actionItems = append(actionItems, ParseTasks(tasksRaw, participant.Name)...)
	}

	now := time.Now()
	m := entities.NewMeeting(ExtractTitle(summary, now), user.ID, workspaceID)
	m.Participants = participants
	m.Summary = summary
	m.TranscriptText = transcriptText
	m.ActionItems = actionItems

	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to store meeting: %w", err)
	}

	s.logger.Info("transcript processed",
		zap.String("meeting_id", m.ID.String()),
		zap.Int("participants", len(participants)),
		zap.Int("action_items", len(actionItems)),
	)

	return &UploadResult{Meeting: m, ActionItemsCount: len(actionItems)}, nil
}

// List returns meetings visible to the user. Employees only see their
// workspace; an employee without a workspace sees nothing.
func (s *Service) List(ctx context.Context, user *entities.User, workspaceID string, limit, offset int) ([]*entities.Meeting, error) {
	if limit <= 0 {
		limit = 50
	}

	if !user.IsAdmin() {
		userWorkspace := user.GetSettings().WorkspaceID
		if userWorkspace == "" {
			return []*entities.Meeting{}, nil
		}
		workspaceID = userWorkspace
	}

	if workspaceID == "" {
		return s.meetingRepo.ListByCreator(ctx, user.ID, limit, offset)
	}
	return s.meetingRepo.ListByWorkspace(ctx, workspaceID, limit, offset)
}

// Get returns a meeting by id, enforcing workspace access for
// employees.
func (s *Service) Get(ctx context.Context, user *entities.User, meetingID uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() {
		if m.WorkspaceID == "" || m.WorkspaceID != user.GetSettings().WorkspaceID {
			return nil, usecaseErrors.ErrForbidden
		}
	}

	return m, nil
}

// Transcript returns the meeting's display turns. Structured turns are
// not stored, so the raw text is split into pseudo-turns.
func (s *Service) Transcript(ctx context.Context, user *entities.User, meetingID uuid.UUID) ([]entities.Utterance, error) {
	m, err := s.Get(ctx, user, meetingID)
	if err != nil {
		return nil, err
	}
	return SplitTranscript(m.TranscriptText), nil
}

// ConvertActionItem converts a meeting action item into a board task.
// On success the item is removed from the meeting's list; on failure
// the meeting is left unchanged and the error distinguishes a
// permission failure from other causes.
func (s *Service) ConvertActionItem(ctx context.Context, user *entities.User, meetingID uuid.UUID, participantName, taskText, deadline string) (*board.ConversionResult, error) {
	settings := user.GetSettings()
	if settings.WorkspaceID == "" {
		return nil, usecaseErrors.ErrBoardNotConfigured
	}

	m, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	result, err := s.boardSvc.ConvertActionItem(ctx, user, settings.WorkspaceID, participantName, taskText, deadline)
	if err != nil {
		return nil, err
	}

	// One-way transition: a converted item does not reappear
	if m.RemoveActionItem(participantName, taskText) {
		if err := s.meetingRepo.Update(ctx, m); err != nil {
			s.logger.Warn("failed to persist action item removal",
				zap.String("meeting_id", m.ID.String()),
				zap.Error(err),
			)
		}
	}

	return result, nil
}

func summaryPrompt(transcript string) string {
	return fmt.Sprintf(`Summarize the following meeting transcript. The response must use this format:

(TITLE)
First give the most appropriate title for the transcript

Participants of the meet: (name everyone present)

Then describe the motivation of the meet, what was discussed, how the
work is going and any issues raised, then the tasks that need doing,
and finally a Conclusion section.

Transcript:
%s`, transcript)
}

func participantsPrompt(summary string) string {
	return fmt.Sprintf(`Extract the names of the participants who attended the meeting from this summary and return them as a JSON list of strings, nothing else.

Example output: ["Taran", "Garv", "Vatsal"]

Summary:
%s`, summary)
}

func tasksPrompt(summary, personName string) string {
	return fmt.Sprintf(`Extract the tasks assigned to %s from this meeting summary. Output one task per line in exactly this format:

Task-1 The task description, Assigned by: the name of the person who assigned it
Task-2 The task description, Assigned by: the name of the person who assigned it

Summary:
%s`, personName, summary)
}
