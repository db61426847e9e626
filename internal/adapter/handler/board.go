package handler

import (
	stdErrors "errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	boardDto "github.com/aura-ai/aura-backend/internal/adapter/dto/board"
	"github.com/aura-ai/aura-backend/internal/usecase/board"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
)

// Board handles the task dashboard HTTP requests
type Board struct {
	boardService *board.Service
	logger       *zap.Logger
}

// NewBoard creates a new board handler
func NewBoard(boardService *board.Service, logger *zap.Logger) *Board {
	return &Board{
		boardService: boardService,
		logger:       logger,
	}
}

// ListBoards lists the boards reachable with the user's credential
// GET /v1/userload/boards
func (h *Board) ListBoards(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	boards, err := h.boardService.GetBoards(ctx, user)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	resp := make([]boardDto.BoardResponse, 0, len(boards))
	for _, b := range boards {
		resp = append(resp, boardDto.BoardResponse{
			ID:           b.ID,
			Name:         b.Name,
			URL:          b.URL,
			Closed:       b.Closed,
			Organization: b.Organization,
		})
	}

	return HandleSuccess(h.logger, c, resp)
}

// GetTasks returns the current task view, filtered by status
// GET /v1/userload/tasks?board_id=...&filter=open
func (h *Board) GetTasks(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	boardID := c.QueryParam("board_id")
	if boardID == "" {
		boardID = user.GetSettings().WorkspaceID
	}
	if boardID == "" {
		return HandleError(h.logger, c, usecaseErrors.ErrBoardNotConfigured)
	}

	filter := parseTaskFilter(c.QueryParam("filter"))

	result, err := h.boardService.GetTasks(ctx, user, boardID, filter)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, boardDto.TasksResponse{
		Tasks:    result.Tasks,
		Groups:   result.Groups,
		Stale:    result.Stale,
		SyncedAt: result.SyncedAt,
	})
}

// Refresh forces a re-sync of the board view. A refresh superseded by
// a newer one is not an error to the caller; the latest view wins.
// POST /v1/userload/refresh
func (h *Board) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req boardDto.RefreshRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.boardService.RefreshTasks(ctx, user, req.BoardID)
	if stdErrors.Is(err, usecaseErrors.ErrStaleView) {
		result, err = h.boardService.GetTasks(ctx, user, req.BoardID, parseTaskFilter(""))
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, boardDto.TasksResponse{
		Tasks:    result.Tasks,
		Groups:   result.Groups,
		Stale:    result.Stale,
		SyncedAt: result.SyncedAt,
	})
}

// ToggleTask flips one task between open and done. The flip is applied
// locally before the board call and stands even when the board rejects
// it; the returned task's sync tag records the outcome. A credential
// rejection is surfaced as a reauth error so the client can prompt for
// reconnection.
// POST /v1/userload/tasks/toggle
func (h *Board) ToggleTask(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req boardDto.ToggleTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	task, err := h.boardService.ToggleTask(ctx, user, req.BoardID, req.TaskID)
	if err != nil {
		if stdErrors.Is(err, usecaseErrors.ErrBoardUpdateFailed) && task != nil {
			// Local flip kept; tell the client the board did not confirm
			return HandleSuccess(h.logger, c, map[string]interface{}{
				"task":       task,
				"sync_error": "board update failed, change kept locally",
			})
		}
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, boardDto.ToggleTaskResponse{Task: task})
}

// CreateTask files a new card on the named list
// POST /v1/userload/tasks
func (h *Board) CreateTask(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req boardDto.CreateTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	task, err := h.boardService.CreateTask(ctx, user, req.BoardID, req.ListName, req.Title, req.Description)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, boardDto.ToggleTaskResponse{Task: task})
}

// ReleaseView drops the server-side task view. Called when the client
// leaves the dashboard; any refresh still in flight for the released
// view is discarded on completion.
// DELETE /v1/userload/view?board_id=...
func (h *Board) ReleaseView(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	boardID := c.QueryParam("board_id")
	if boardID == "" {
		return HandleError(h.logger, c, usecaseErrors.ErrInvalidInput)
	}

	h.boardService.ReleaseView(user.ID.String(), boardID)

	return HandleSuccess(h.logger, c, map[string]string{
		"message": "View released",
	})
}
