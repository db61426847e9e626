package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	settingsDto "github.com/aura-ai/aura-backend/internal/adapter/dto/settings"
	"github.com/aura-ai/aura-backend/internal/usecase/settings"
)

// Settings handles per-user product settings HTTP requests
type Settings struct {
	settingsService *settings.Service
	logger          *zap.Logger
}

// NewSettings creates a new settings handler
func NewSettings(settingsService *settings.Service, logger *zap.Logger) *Settings {
	return &Settings{
		settingsService: settingsService,
		logger:          logger,
	}
}

// Get returns the user's settings with the live board connection state
// GET /v1/settings
func (h *Settings) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.settingsService.Get(ctx, user)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, view)
}

// Update merges the provided fields into the stored settings
// PUT /v1/settings
func (h *Settings) Update(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req settingsDto.UpdateSettingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	view, err := h.settingsService.Update(ctx, user, settings.UpdateInput{
		BoardSyncKey:       req.BoardSyncKey,
		GenerationKey:      req.GenerationKey,
		WorkspaceID:        req.WorkspaceID,
		NotifyOnAssignment: req.NotifyOnAssignment,
		ExportFormat:       req.ExportFormat,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, view)
}
