package board

import (
	"time"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// BoardResponse is one connectable board
type BoardResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	URL          string `json:"url,omitempty"`
	Closed       bool   `json:"closed"`
	Organization string `json:"organization,omitempty"`
}

// TasksResponse is the task view returned to the dashboard. Stale is
// true when the data comes from an earlier sync or a cached snapshot
// rather than a fresh fetch.
type TasksResponse struct {
	Tasks    []entities.Task      `json:"tasks"`
	Groups   []entities.TaskGroup `json:"groups"`
	Stale    bool                 `json:"stale"`
	SyncedAt time.Time            `json:"synced_at"`
}

// ToggleTaskResponse returns the toggled task with its sync outcome
type ToggleTaskResponse struct {
	Task *entities.Task `json:"task"`
}
