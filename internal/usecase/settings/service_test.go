package settings

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/trello"
	"github.com/aura-ai/aura-backend/internal/usecase/board"
)

type fakeUserRepo struct {
	savedSettings []byte
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) error { return nil }
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}
func (f *fakeUserRepo) FindByOAuth(ctx context.Context, provider, oauthID string) (*entities.User, error) {
	return nil, entities.ErrUserNotFound
}
func (f *fakeUserRepo) Update(ctx context.Context, user *entities.User) error { return nil }
func (f *fakeUserRepo) UpdateSettings(ctx context.Context, userID uuid.UUID, settings []byte) error {
	f.savedSettings = settings
	return nil
}
func (f *fakeUserRepo) UpdateOAuthToken(ctx context.Context, userID uuid.UUID, refreshToken string) error {
	return nil
}
func (f *fakeUserRepo) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error { return nil }
func (f *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (f *fakeUserRepo) List(ctx context.Context, limit, offset int) ([]*entities.User, error) {
	return nil, nil
}

func newTestService(repo *fakeUserRepo) *Service {
	boardSvc := board.NewService(trello.NewClient("", 5*time.Second), nil, nil, zap.NewNop())
	return NewService(repo, boardSvc, zap.NewNop())
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestUpdate_MergesNonEmptyFields(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)

	user := entities.NewUser("dana@example.com", "Dana", entities.PersonaEmployee)
	if err := user.SetSettings(entities.Settings{
		BoardSyncKey:  "key:token",
		GenerationKey: "gen-key",
		WorkspaceID:   "board-1",
	}); err != nil {
		t.Fatalf("seed settings: %v", err)
	}

	view, err := svc.Update(context.Background(), user, UpdateInput{
		WorkspaceID:        strPtr("  board-2  "),
		NotifyOnAssignment: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if view.Settings.WorkspaceID != "board-2" {
		t.Fatalf("workspace should be trimmed and updated, got %q", view.Settings.WorkspaceID)
	}
	if view.Settings.BoardSyncKey != "key:token" || view.Settings.GenerationKey != "gen-key" {
		t.Fatalf("omitted fields must keep their values: %+v", view.Settings)
	}
	if view.Settings.NotifyOnAssignment {
		t.Fatalf("boolean update should apply")
	}
}

func TestUpdate_EmptyValuesIgnoredExceptSyncKey(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)

	user := entities.NewUser("dana@example.com", "Dana", entities.PersonaEmployee)
	user.SetSettings(entities.Settings{
		BoardSyncKey:  "key:token",
		GenerationKey: "gen-key",
		WorkspaceID:   "board-1",
	})

	view, err := svc.Update(context.Background(), user, UpdateInput{
		BoardSyncKey:  strPtr("   "),
		GenerationKey: strPtr(""),
		WorkspaceID:   strPtr(""),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if view.Settings.BoardSyncKey != "" {
		t.Fatalf("sync key should be clearable, got %q", view.Settings.BoardSyncKey)
	}
	if view.Settings.GenerationKey != "gen-key" || view.Settings.WorkspaceID != "board-1" {
		t.Fatalf("empty values for other fields must be ignored: %+v", view.Settings)
	}
}

func TestUpdate_PersistsMergedSettings(t *testing.T) {
	repo := &fakeUserRepo{}
	svc := newTestService(repo)

	user := entities.NewUser("dana@example.com", "Dana", entities.PersonaEmployee)

	if _, err := svc.Update(context.Background(), user, UpdateInput{
		BoardSyncKey: strPtr("key:token"),
		WorkspaceID:  strPtr("board-9"),
	}); err != nil {
		t.Fatalf("update: %v", err)
	}

	var saved entities.Settings
	if err := json.Unmarshal(repo.savedSettings, &saved); err != nil {
		t.Fatalf("saved settings should be valid JSON: %v", err)
	}
	if saved.BoardSyncKey != "key:token" || saved.WorkspaceID != "board-9" {
		t.Fatalf("persisted settings mismatch: %+v", saved)
	}
	if !saved.HasBoardAccess() {
		t.Fatalf("key plus workspace should grant board access")
	}
}

func TestGet_ReportsDisconnectedWithoutKey(t *testing.T) {
	svc := newTestService(&fakeUserRepo{})
	user := entities.NewUser("dana@example.com", "Dana", entities.PersonaEmployee)

	view, err := svc.Get(context.Background(), user)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Connection.IsConnected {
		t.Fatalf("connection should be down without a sync key")
	}
	if view.Connection.Error == "" {
		t.Fatalf("disconnected status should carry a reason")
	}
}
