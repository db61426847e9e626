package handler

import (
	stdErrors "errors"
	"io"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/errors"
	"github.com/aura-ai/aura-backend/internal/adapter/dto/common"
	meetingDto "github.com/aura-ai/aura-backend/internal/adapter/dto/meeting"
	"github.com/aura-ai/aura-backend/internal/adapter/presenter"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
	"github.com/aura-ai/aura-backend/internal/usecase/meeting"
)

// Meeting handles meeting intelligence HTTP requests
type Meeting struct {
	meetingService *meeting.Service
	logger         *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(meetingService *meeting.Service, logger *zap.Logger) *Meeting {
	return &Meeting{
		meetingService: meetingService,
		logger:         logger,
	}
}

// Upload processes an uploaded transcript into a meeting record
// POST /v1/meetings/upload (multipart, admin only)
func (h *Meeting) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing file"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Cannot read uploaded file"))
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Cannot read uploaded file"))
	}

	workspaceID := c.FormValue("workspace_id")
	if workspaceID == "" {
		workspaceID = user.GetSettings().WorkspaceID
	}

	result, err := h.meetingService.Upload(ctx, user, fileHeader.Filename, content, workspaceID)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrUnsupportedFormat) {
			return HandleError(h.logger, c, errors.ErrMeetingUnsupportedFormat())
		}
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.UploadResponse{
		Meeting:          presenter.ToMeetingDetail(result.Meeting),
		ActionItemsCount: result.ActionItemsCount,
	})
}

// List returns the meetings visible to the user
// GET /v1/meetings?limit=50&offset=0
func (h *Meeting) List(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var query meetingDto.ListQuery
	if err := c.Bind(&query); err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid pagination parameters"))
	}

	meetings, err := h.meetingService.List(ctx, user, c.QueryParam("workspace_id"), query.Limit, query.Offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, common.ListResponse{
		Data: presenter.ToMeetingList(meetings),
	})
}

// Get returns one meeting with truncated previews
// GET /v1/meetings/:id
func (h *Meeting) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	m, err := h.meetingService.Get(ctx, user, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingDetail(m))
}

// Transcript returns the full transcript as display turns
// GET /v1/meetings/:id/transcript
func (h *Meeting) Transcript(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	turns, err := h.meetingService.Transcript(ctx, user, meetingID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.TranscriptResponse{
		MeetingID: meetingID.String(),
		Turns:     turns,
	})
}

// ConvertToTask converts one action item into a board task. The
// conversion is one-way; on success the item leaves the meeting's
// list.
// POST /v1/meetings/:id/convert-to-task (admin only)
func (h *Meeting) ConvertToTask(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	meetingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Invalid meeting id"))
	}

	var req meetingDto.ConvertToTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.meetingService.ConvertActionItem(ctx, user, meetingID, req.Assignee, req.Text, req.Deadline)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingDto.ConvertToTaskResponse{
		ListID:      result.ListID,
		CardID:      result.CardID,
		ChecklistID: result.ChecklistID,
	})
}
