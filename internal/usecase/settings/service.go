package settings

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/domain/repositories"
	"github.com/aura-ai/aura-backend/internal/usecase/board"
)

// Service manages per-user product settings
type Service struct {
	userRepo repositories.UserRepository
	boardSvc *board.Service
	logger   *zap.Logger
}

// NewService creates a new settings service
func NewService(userRepo repositories.UserRepository, boardSvc *board.Service, logger *zap.Logger) *Service {
	return &Service{
		userRepo: userRepo,
		boardSvc: boardSvc,
		logger:   logger,
	}
}

// UpdateInput carries settings fields to change. Nil fields are left
// untouched; an explicit empty board sync key clears the connection.
type UpdateInput struct {
	BoardSyncKey       *string
	GenerationKey      *string
	WorkspaceID        *string
	NotifyOnAssignment *bool
	ExportFormat       *string
}

// SettingsView is what the settings page shows: the stored settings
// plus the live board connection status.
type SettingsView struct {
	Settings   entities.Settings      `json:"settings"`
	Connection board.ConnectionStatus `json:"trello_connection"`
}

// Get returns the user's settings and checks the board connection
func (s *Service) Get(ctx context.Context, user *entities.User) (*SettingsView, error) {
	return &SettingsView{
		Settings:   user.GetSettings(),
		Connection: s.boardSvc.CheckConnection(ctx, user),
	}, nil
}

// Update merges the provided fields into the stored settings. Keys are
// trimmed; a provided-but-empty key is ignored except for the board
// sync key, which may be cleared.
func (s *Service) Update(ctx context.Context, user *entities.User, input UpdateInput) (*SettingsView, error) {
	current := user.GetSettings()

	if input.BoardSyncKey != nil {
		key := strings.TrimSpace(*input.BoardSyncKey)
		// Empty clears the stored connection
		current.BoardSyncKey = key
	}
	if input.GenerationKey != nil {
		if key := strings.TrimSpace(*input.GenerationKey); key != "" {
			current.GenerationKey = key
		}
	}
	if input.WorkspaceID != nil {
		if id := strings.TrimSpace(*input.WorkspaceID); id != "" {
			current.WorkspaceID = id
		}
	}
	if input.NotifyOnAssignment != nil {
		current.NotifyOnAssignment = *input.NotifyOnAssignment
	}
	if input.ExportFormat != nil {
		if f := strings.TrimSpace(*input.ExportFormat); f != "" {
			current.ExportFormat = f
		}
	}

	if err := user.SetSettings(current); err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}

	data, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := s.userRepo.UpdateSettings(ctx, user.ID, data); err != nil {
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}

	s.logger.Info("settings updated", zap.String("user_id", user.ID.String()))

	return &SettingsView{
		Settings:   current,
		Connection: s.boardSvc.CheckConnection(ctx, user),
	}, nil
}
