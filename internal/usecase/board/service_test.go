package board

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/trello"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
)

type fakeSnapshotStore struct {
	data map[string][]byte
}

func newFakeSnapshotStore() *fakeSnapshotStore {
	return &fakeSnapshotStore{data: make(map[string][]byte)}
}

func (f *fakeSnapshotStore) Save(ctx context.Context, key string, data []byte) error {
	f.data[key] = data
	return nil
}

func (f *fakeSnapshotStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := f.data[key]
	return data, ok, nil
}

func userWithSyncKey(t *testing.T) *entities.User {
	t.Helper()
	user := entities.NewUser("dana@example.com", "Dana", entities.PersonaEmployee)
	if err := user.SetSettings(entities.Settings{BoardSyncKey: "key:token", WorkspaceID: "board1"}); err != nil {
		t.Fatalf("SetSettings: %v", err)
	}
	return user
}

func TestGetTasksRestoresSnapshotOnFetchFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	user := userWithSyncKey(t)
	snapshots := newFakeSnapshotStore()

	syncedAt := time.Now().Add(-time.Hour).Truncate(time.Second)
	snap := boardSnapshot{
		Tasks: []entities.Task{
			{ID: "card1", Title: "Ship release notes", Status: entities.TaskStatusOpen, ListID: "list1"},
			{ID: "card2", Title: "Close invoices", Status: entities.TaskStatusDone, ListID: "list1"},
		},
		Groups:   []entities.TaskGroup{{ListID: "list1", ListName: "Todo"}},
		SyncedAt: syncedAt,
	}
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	snapshots.data[snapshotKey(user.ID.String(), "board1")] = data

	svc := NewService(trello.NewClient(ts.URL, 5*time.Second), snapshots, nil, zap.NewNop())

	result, err := svc.GetTasks(context.Background(), user, "board1", entities.FilterAll)
	if err != nil {
		t.Fatalf("GetTasks: %v", err)
	}
	if !result.Stale {
		t.Error("restored snapshot should be flagged stale")
	}
	if len(result.Tasks) != 2 || result.Tasks[0].ID != "card1" || result.Tasks[1].ID != "card2" {
		t.Errorf("unexpected tasks: %+v", result.Tasks)
	}
	if !result.SyncedAt.Equal(syncedAt) {
		t.Errorf("SyncedAt = %v, want snapshot time %v", result.SyncedAt, syncedAt)
	}
}

func TestGetTasksFailsWithoutSnapshot(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	svc := NewService(trello.NewClient(ts.URL, 5*time.Second), newFakeSnapshotStore(), nil, zap.NewNop())

	_, err := svc.GetTasks(context.Background(), userWithSyncKey(t), "board1", entities.FilterAll)
	if !errors.Is(err, usecaseErrors.ErrBoardFetchFailed) {
		t.Errorf("err = %v, want ErrBoardFetchFailed", err)
	}
}

func TestGetTasksReauthOnUnauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	user := userWithSyncKey(t)
	snapshots := newFakeSnapshotStore()
	snapshots.data[snapshotKey(user.ID.String(), "board1")] = []byte(`{"tasks":[{"id":"card1"}]}`)

	svc := NewService(trello.NewClient(ts.URL, 5*time.Second), snapshots, nil, zap.NewNop())

	// A rejected credential needs the user to reconnect; the snapshot
	// must not mask that.
	_, err := svc.GetTasks(context.Background(), user, "board1", entities.FilterAll)
	if !errors.Is(err, usecaseErrors.ErrBoardReauth) {
		t.Errorf("err = %v, want ErrBoardReauth", err)
	}
}

func TestRefreshTasksKeepsPreviousViewOnFailure(t *testing.T) {
	var fail atomic.Bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		switch r.URL.Path {
		case "/boards/board1/lists":
			json.NewEncoder(w).Encode([]trello.List{{ID: "list1", Name: "Todo"}})
		case "/boards/board1/cards":
			json.NewEncoder(w).Encode([]trello.Card{
				{ID: "card1", Name: "Ship release notes", IDList: "list1"},
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer ts.Close()

	user := userWithSyncKey(t)
	svc := NewService(trello.NewClient(ts.URL, 5*time.Second), newFakeSnapshotStore(), nil, zap.NewNop())

	fresh, err := svc.RefreshTasks(context.Background(), user, "board1")
	if err != nil {
		t.Fatalf("RefreshTasks: %v", err)
	}
	if fresh.Stale || len(fresh.Tasks) != 1 {
		t.Fatalf("unexpected fresh result: %+v", fresh)
	}

	fail.Store(true)

	stale, err := svc.RefreshTasks(context.Background(), user, "board1")
	if err != nil {
		t.Fatalf("RefreshTasks after upstream failure: %v", err)
	}
	if !stale.Stale {
		t.Error("failed refresh should flag the kept view stale")
	}
	if len(stale.Tasks) != 1 || stale.Tasks[0].ID != "card1" {
		t.Errorf("previous view contents not kept: %+v", stale.Tasks)
	}
}

func TestReleaseViewDropsEntry(t *testing.T) {
	svc := NewService(trello.NewClient("", 5*time.Second), nil, nil, zap.NewNop())

	view := svc.View("user1", "board1")
	gen := view.BeginRefresh()

	svc.ReleaseView("user1", "board1")

	svc.mu.Lock()
	_, kept := svc.views["user1:board1"]
	svc.mu.Unlock()
	if kept {
		t.Error("released view should be removed from the view map")
	}

	if view.CompleteRefresh(gen, nil, nil, time.Now()) {
		t.Error("refresh begun before release should be dropped")
	}

	if released := svc.View("user1", "board1"); released == view {
		t.Error("next View call should create a fresh view")
	}
}
