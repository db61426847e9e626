package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	boardDto "github.com/aura-ai/aura-backend/internal/adapter/dto/board"
	"github.com/aura-ai/aura-backend/internal/usecase/board"
)

// Admin handles admin-only HTTP requests
type Admin struct {
	boardService *board.Service
	logger       *zap.Logger
}

// NewAdmin creates a new admin handler
func NewAdmin(boardService *board.Service, logger *zap.Logger) *Admin {
	return &Admin{
		boardService: boardService,
		logger:       logger,
	}
}

// AssignTask interprets a free-form assignment command and files the
// resulting task on the assignee's list
// POST /v1/admin/assign-task
func (h *Admin) AssignTask(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req boardDto.AssignTaskRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	task, err := h.boardService.AssignFromCommand(ctx, user, req.BoardID, req.Command)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, boardDto.ToggleTaskResponse{Task: task})
}
