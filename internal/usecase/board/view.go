package board

import (
	"sync"
	"time"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
	usecaseErrors "github.com/aura-ai/aura-backend/internal/usecase/errors"
)

// FilterTasks returns the tasks matching the filter. The input slice is
// never mutated and applying the same filter to its own output returns
// an equal result.
func FilterTasks(tasks []entities.Task, filter entities.TaskFilter) []entities.Task {
	out := make([]entities.Task, 0, len(tasks))
	for _, t := range tasks {
		if filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// TaskView holds the authoritative in-memory task list for one user's
// board. Refreshes are guarded by a generation counter: a refresh that
// started before the view was invalidated or superseded must not apply
// its result.
type TaskView struct {
	mu         sync.RWMutex
	generation uint64
	tasks      []entities.Task
	groups     []entities.TaskGroup
	syncedAt   time.Time
	stale      bool
}

// NewTaskView creates an empty task view
func NewTaskView() *TaskView {
	return &TaskView{}
}

// BeginRefresh marks the start of a refresh cycle and returns the
// generation token the refresh must present to apply its result.
func (v *TaskView) BeginRefresh() uint64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
	return v.generation
}

// Invalidate bumps the generation so any in-flight refresh result is
// dropped. Called when the owning view goes away.
func (v *TaskView) Invalidate() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.generation++
}

// CompleteRefresh applies a refresh result. Returns false when a newer
// refresh or an invalidation superseded this one; the result is
// discarded in that case.
func (v *TaskView) CompleteRefresh(gen uint64, tasks []entities.Task, groups []entities.TaskGroup, syncedAt time.Time) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return false
	}
	v.tasks = tasks
	v.groups = groups
	v.syncedAt = syncedAt
	v.stale = false
	return true
}

// MarkStale flags the current contents as a stale snapshot after a
// failed refresh. Stale data is kept: a previous list beats a blank
// screen.
func (v *TaskView) MarkStale(gen uint64) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.generation {
		return
	}
	v.stale = true
}

// Tasks returns a filtered copy of the current task list plus the
// staleness flag and last sync time.
func (v *TaskView) Tasks(filter entities.TaskFilter) (tasks []entities.Task, stale bool, syncedAt time.Time) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return FilterTasks(v.tasks, filter), v.stale, v.syncedAt
}

// Groups returns a copy of the current list grouping
func (v *TaskView) Groups() []entities.TaskGroup {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := make([]entities.TaskGroup, len(v.groups))
	for i, g := range v.groups {
		group := entities.TaskGroup{ListID: g.ListID, ListName: g.ListName}
		group.Tasks = append([]entities.Task(nil), g.Tasks...)
		out[i] = group
	}
	return out
}

// Empty reports whether the view holds no tasks at all
func (v *TaskView) Empty() bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.tasks) == 0 && v.syncedAt.IsZero()
}

// ApplyToggle flips a task's status locally before any remote call and
// tags it pending. The flip is applied regardless of what the remote
// board later says.
func (v *TaskView) ApplyToggle(taskID string) (entities.Task, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.tasks {
		if v.tasks[i].ID == taskID {
			v.tasks[i].Status = v.tasks[i].Status.Toggle()
			v.tasks[i].Sync = entities.SyncPending
			v.syncGroupTask(v.tasks[i])
			return v.tasks[i], nil
		}
	}
	return entities.Task{}, usecaseErrors.ErrNotFound
}

// ResolveToggle records the remote outcome of an optimistic toggle.
// The local status is left as flipped either way; only the sync tag
// changes.
func (v *TaskView) ResolveToggle(taskID string, confirmed bool) (entities.Task, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i := range v.tasks {
		if v.tasks[i].ID == taskID {
			if confirmed {
				v.tasks[i].Sync = entities.SyncConfirmed
			} else {
				v.tasks[i].Sync = entities.SyncFailed
			}
			v.syncGroupTask(v.tasks[i])
			return v.tasks[i], nil
		}
	}
	return entities.Task{}, usecaseErrors.ErrNotFound
}

// syncGroupTask mirrors a task update into the grouped structure.
// Caller must hold the write lock.
func (v *TaskView) syncGroupTask(task entities.Task) {
	for i := range v.groups {
		if v.groups[i].ListID != task.ListID {
			continue
		}
		for j := range v.groups[i].Tasks {
			if v.groups[i].Tasks[j].ID == task.ID {
				v.groups[i].Tasks[j] = task
				return
			}
		}
	}
}
