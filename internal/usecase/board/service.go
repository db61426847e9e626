package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/genai"
	"github.com/aura-ai/aura-backend/internal/infrastructure/external/trello"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
)

// SnapshotStore persists serialized board snapshots so a stale copy
// survives a restart. Satisfied by cache.SnapshotStore.
type SnapshotStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) (data []byte, found bool, err error)
}

// Service handles board synchronization and the per-user task views
type Service struct {
	client    *trello.Client
	snapshots SnapshotStore
	generator *genai.Client
	logger    *zap.Logger

	mu    sync.Mutex
	views map[string]*TaskView
}

// NewService creates a new board service
func NewService(client *trello.Client, snapshots SnapshotStore, generator *genai.Client, logger *zap.Logger) *Service {
	return &Service{
		client:    client,
		snapshots: snapshots,
		generator: generator,
		logger:    logger,
		views:     make(map[string]*TaskView),
	}
}

// ConnectionStatus reports whether the user's board credential works
type ConnectionStatus struct {
	IsConnected bool   `json:"is_connected"`
	Error       string `json:"error,omitempty"`
}

// TasksResult is the outcome of a task view read
type TasksResult struct {
	Tasks    []entities.Task      `json:"tasks"`
	Groups   []entities.TaskGroup `json:"groups"`
	Stale    bool                 `json:"stale"`
	SyncedAt time.Time            `json:"synced_at"`
}

type boardSnapshot struct {
	Tasks    []entities.Task      `json:"tasks"`
	Groups   []entities.TaskGroup `json:"groups"`
	SyncedAt time.Time            `json:"synced_at"`
}

// View returns the task view for a user's board, creating it on first use
func (s *Service) View(userID, boardID string) *TaskView {
	key := userID + ":" + boardID
	s.mu.Lock()
	defer s.mu.Unlock()
	view, ok := s.views[key]
	if !ok {
		view = NewTaskView()
		s.views[key] = view
	}
	return view
}

// ReleaseView invalidates a user's view so in-flight refreshes for it
// are dropped, and removes it from the view map.
func (s *Service) ReleaseView(userID, boardID string) {
	key := userID + ":" + boardID
	s.mu.Lock()
	view, ok := s.views[key]
	delete(s.views, key)
	s.mu.Unlock()
	if ok {
		view.Invalidate()
	}
}

// CheckConnection verifies the stored sync key against the board API
func (s *Service) CheckConnection(ctx context.Context, user *entities.User) ConnectionStatus {
	creds, err := s.credentials(user)
	if err != nil {
		return ConnectionStatus{IsConnected: false, Error: "Trello is not connected"}
	}

	if _, err := s.client.GetBoards(ctx, creds); err != nil {
		if errors.Is(err, trello.ErrUnauthorized) {
			return ConnectionStatus{IsConnected: false, Error: "Trello credentials were rejected, please reconnect"}
		}
		return ConnectionStatus{IsConnected: false, Error: "Trello is unreachable"}
	}

	return ConnectionStatus{IsConnected: true}
}

// GetBoards lists the boards visible with the user's credential
func (s *Service) GetBoards(ctx context.Context, user *entities.User) ([]trello.Board, error) {
	creds, err := s.credentials(user)
	if err != nil {
		return nil, err
	}

	boards, err := s.client.GetBoards(ctx, creds)
	if err != nil {
		return nil, s.mapBoardErr(err)
	}
	return boards, nil
}

// RefreshTasks fetches the board and rebuilds the user's task view.
// On fetch failure the previous view contents are kept and flagged
// stale; if the view is empty the last Redis snapshot is restored.
func (s *Service) RefreshTasks(ctx context.Context, user *entities.User, boardID string) (*TasksResult, error) {
	creds, err := s.credentials(user)
	if err != nil {
		return nil, err
	}

	view := s.View(user.ID.String(), boardID)
	gen := view.BeginRefresh()

	lists, err := s.client.GetLists(ctx, creds, boardID)
	if err != nil {
		return s.recoverStale(ctx, user, boardID, view, gen, err)
	}
	cards, err := s.client.GetCards(ctx, creds, boardID)
	if err != nil {
		return s.recoverStale(ctx, user, boardID, view, gen, err)
	}

	now := time.Now()
	tasks := trello.AdaptCards(cards, lists, now)
	groups := trello.GroupByList(tasks, lists)

	if !view.CompleteRefresh(gen, tasks, groups, now) {
		s.logger.Debug("dropped superseded board refresh",
			zap.String("user_id", user.ID.String()),
			zap.String("board_id", boardID),
		)
		return nil, usecaseErrors.ErrStaleView
	}

	s.saveSnapshot(ctx, user.ID.String(), boardID, boardSnapshot{Tasks: tasks, Groups: groups, SyncedAt: now})

	return &TasksResult{Tasks: tasks, Groups: groups, Stale: false, SyncedAt: now}, nil
}

// GetTasks returns the current view filtered by status
func (s *Service) GetTasks(ctx context.Context, user *entities.User, boardID string, filter entities.TaskFilter) (*TasksResult, error) {
	if !filter.IsValid() {
		return nil, usecaseErrors.ErrInvalidInput
	}

	view := s.View(user.ID.String(), boardID)
	if view.Empty() {
		if _, err := s.RefreshTasks(ctx, user, boardID); err != nil {
			return nil, err
		}
	}

	tasks, stale, syncedAt := view.Tasks(filter)
	return &TasksResult{
		Tasks:    tasks,
		Groups:   view.Groups(),
		Stale:    stale,
		SyncedAt: syncedAt,
	}, nil
}

// ToggleTask flips a task's status optimistically and propagates the
// change to the board. The local flip stands even when the remote
// update fails; the task's sync tag records the outcome.
func (s *Service) ToggleTask(ctx context.Context, user *entities.User, boardID, taskID string) (*entities.Task, error) {
	creds, err := s.credentials(user)
	if err != nil {
		return nil, err
	}

	view := s.View(user.ID.String(), boardID)
	task, err := view.ApplyToggle(taskID)
	if err != nil {
		return nil, err
	}

	remoteErr := s.client.UpdateCardClosed(ctx, creds, taskID, task.Status == entities.TaskStatusDone)
	task, err = view.ResolveToggle(taskID, remoteErr == nil)
	if err != nil {
		return nil, err
	}

	if remoteErr != nil {
		s.logger.Warn("board update failed, keeping local toggle",
			zap.String("task_id", taskID),
			zap.Error(remoteErr),
		)
		if errors.Is(remoteErr, trello.ErrUnauthorized) {
			return &task, usecaseErrors.ErrBoardReauth
		}
		return &task, usecaseErrors.ErrBoardUpdateFailed
	}

	return &task, nil
}

// CreateTask creates a card on the named list, creating the list if
// the board does not have it yet. Used for action-item conversion and
// admin task assignment.
func (s *Service) CreateTask(ctx context.Context, user *entities.User, boardID, listName, title, description string) (*entities.Task, error) {
	creds, err := s.credentials(user)
	if err != nil {
		return nil, err
	}

	lists, err := s.client.GetLists(ctx, creds, boardID)
	if err != nil {
		return nil, s.mapBoardErr(err)
	}

	var target *trello.List
	for i := range lists {
		if strings.EqualFold(lists[i].Name, listName) {
			target = &lists[i]
			break
		}
	}
	if target == nil {
		target, err = s.client.CreateList(ctx, creds, boardID, listName)
		if err != nil {
			return nil, s.mapBoardErr(err)
		}
	}

	card, err := s.client.CreateCard(ctx, creds, target.ID, title, description)
	if err != nil {
		return nil, s.mapBoardErr(err)
	}

	task := trello.AdaptCards([]trello.Card{*card}, lists, time.Now())[0]
	task.ListID = target.ID
	task.ListName = target.Name
	return &task, nil
}

// ConversionResult identifies the board objects a converted action
// item landed on.
type ConversionResult struct {
	ListID      string `json:"list_id"`
	CardID      string `json:"card_id"`
	ChecklistID string `json:"checklist_id"`
}

// ConvertActionItem files a meeting action item on the participant's
// todo list as a checklist entry. Lists, cards and checklists are
// created on demand and reused when they already exist.
func (s *Service) ConvertActionItem(ctx context.Context, user *entities.User, boardID, participantName, taskText, deadline string) (*ConversionResult, error) {
	creds, err := s.credentials(user)
	if err != nil {
		return nil, err
	}

	listName := fmt.Sprintf("%s's Todo", participantName)

	listID, err := s.getOrCreateList(ctx, creds, boardID, listName)
	if err != nil {
		return nil, s.mapBoardErr(err)
	}

	cardID, err := s.getOrCreateCard(ctx, creds, listID, listName)
	if err != nil {
		return nil, s.mapBoardErr(err)
	}

	checklistID, err := s.getOrCreateChecklist(ctx, creds, cardID, "Tasks")
	if err != nil {
		return nil, s.mapBoardErr(err)
	}

	if deadline != "" {
		taskText = fmt.Sprintf("%s (Due: %s)", taskText, deadline)
	}
	if err := s.client.AddCheckItem(ctx, creds, checklistID, taskText); err != nil {
		return nil, s.mapBoardErr(err)
	}

	return &ConversionResult{ListID: listID, CardID: cardID, ChecklistID: checklistID}, nil
}

func (s *Service) getOrCreateList(ctx context.Context, creds trello.Credentials, boardID, name string) (string, error) {
	lists, err := s.client.GetLists(ctx, creds, boardID)
	if err != nil {
		return "", err
	}
	for _, l := range lists {
		if l.Name == name && !l.Closed {
			return l.ID, nil
		}
	}
	list, err := s.client.CreateList(ctx, creds, boardID, name)
	if err != nil {
		return "", err
	}
	return list.ID, nil
}

func (s *Service) getOrCreateCard(ctx context.Context, creds trello.Credentials, listID, name string) (string, error) {
	cards, err := s.client.GetListCards(ctx, creds, listID)
	if err != nil {
		return "", err
	}
	for _, card := range cards {
		if card.Name == name && !card.Closed {
			return card.ID, nil
		}
	}
	card, err := s.client.CreateCard(ctx, creds, listID, name, "")
	if err != nil {
		return "", err
	}
	return card.ID, nil
}

func (s *Service) getOrCreateChecklist(ctx context.Context, creds trello.Credentials, cardID, name string) (string, error) {
	checklists, err := s.client.GetChecklists(ctx, creds, cardID)
	if err != nil {
		return "", err
	}
	for _, cl := range checklists {
		if cl.Name == name {
			return cl.ID, nil
		}
	}
	checklist, err := s.client.CreateChecklist(ctx, creds, cardID, name)
	if err != nil {
		return "", err
	}
	return checklist.ID, nil
}

// AssignFromCommand interprets a natural-language assignment command,
// extracts the assignee and task text, and files the task on the
// assignee's todo list.
func (s *Service) AssignFromCommand(ctx context.Context, user *entities.User, boardID, command string) (*entities.Task, error) {
	prompt := fmt.Sprintf(`Extract the assignee name and the task description from this command.
Respond with exactly two lines:
ASSIGNEE: <name>
TASK: <description>

Command: %s`, command)

	reply, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to interpret command: %w", err)
	}

	assignee, taskText := parseAssignment(reply)
	if assignee == "" || taskText == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	listName := fmt.Sprintf("%s's Todo", assignee)
	task, err := s.CreateTask(ctx, user, boardID, listName, taskText, fmt.Sprintf("Assigned by: %s", user.Name))
	if err != nil {
		return nil, err
	}
	task.Assignee = assignee
	return task, nil
}

// parseAssignment pulls the assignee and task text out of the model reply
func parseAssignment(reply string) (assignee, task string) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if v, ok := strings.CutPrefix(line, "ASSIGNEE:"); ok {
			assignee = strings.TrimSpace(v)
		} else if v, ok := strings.CutPrefix(line, "TASK:"); ok {
			task = strings.TrimSpace(v)
		}
	}
	return assignee, task
}

// credentials parses the user's stored board sync key
func (s *Service) credentials(user *entities.User) (trello.Credentials, error) {
	settings := user.GetSettings()
	if settings.BoardSyncKey == "" {
		return trello.Credentials{}, usecaseErrors.ErrBoardNotConfigured
	}
	creds, err := trello.ParseCredentials(settings.BoardSyncKey)
	if err != nil {
		return trello.Credentials{}, usecaseErrors.ErrBoardNotConfigured
	}
	return creds, nil
}

// recoverStale handles a failed board fetch: keep stale view contents,
// or restore the last snapshot when the view is empty.
func (s *Service) recoverStale(ctx context.Context, user *entities.User, boardID string, view *TaskView, gen uint64, fetchErr error) (*TasksResult, error) {
	s.logger.Warn("board fetch failed",
		zap.String("user_id", user.ID.String()),
		zap.String("board_id", boardID),
		zap.Error(fetchErr),
	)

	if errors.Is(fetchErr, trello.ErrUnauthorized) {
		return nil, usecaseErrors.ErrBoardReauth
	}

	if view.Empty() {
		if snap, ok := s.loadSnapshot(ctx, user.ID.String(), boardID); ok {
			view.CompleteRefresh(gen, snap.Tasks, snap.Groups, snap.SyncedAt)
			view.MarkStale(gen)
			tasks, _, syncedAt := view.Tasks(entities.FilterAll)
			return &TasksResult{Tasks: tasks, Groups: view.Groups(), Stale: true, SyncedAt: syncedAt}, nil
		}
		return nil, usecaseErrors.ErrBoardFetchFailed
	}

	view.MarkStale(gen)
	tasks, _, syncedAt := view.Tasks(entities.FilterAll)
	return &TasksResult{Tasks: tasks, Groups: view.Groups(), Stale: true, SyncedAt: syncedAt}, nil
}

func (s *Service) saveSnapshot(ctx context.Context, userID, boardID string, snap boardSnapshot) {
	if s.snapshots == nil {
		return
	}
	data, err := json.Marshal(snap)
	if err != nil {
		return
	}
	if err := s.snapshots.Save(ctx, snapshotKey(userID, boardID), data); err != nil {
		s.logger.Warn("failed to save board snapshot", zap.Error(err))
	}
}

func (s *Service) loadSnapshot(ctx context.Context, userID, boardID string) (boardSnapshot, bool) {
	var snap boardSnapshot
	if s.snapshots == nil {
		return snap, false
	}
	data, found, err := s.snapshots.Load(ctx, snapshotKey(userID, boardID))
	if err != nil || !found {
		return snap, false
	}
	if err := json.Unmarshal(data, &snap); err != nil {
		return snap, false
	}
	return snap, true
}

func snapshotKey(userID, boardID string) string {
	return fmt.Sprintf("board:snapshot:%s:%s", userID, boardID)
}

func (s *Service) mapBoardErr(err error) error {
	if errors.Is(err, trello.ErrUnauthorized) {
		return usecaseErrors.ErrBoardReauth
	}
	return fmt.Errorf("%w: %v", usecaseErrors.ErrBoardFetchFailed, err)
}
