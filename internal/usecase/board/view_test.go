package board

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

func genTasks(t *rapid.T) []entities.Task {
	n := rapid.IntRange(0, 30).Draw(t, "n")
	tasks := make([]entities.Task, n)
	for i := range tasks {
		status := entities.TaskStatusOpen
		if rapid.Bool().Draw(t, fmt.Sprintf("done%d", i)) {
			status = entities.TaskStatusDone
		}
		tasks[i] = entities.Task{
			ID:     fmt.Sprintf("task-%d", i),
			Title:  rapid.StringN(0, 20, 40).Draw(t, fmt.Sprintf("title%d", i)),
			Status: status,
			ListID: fmt.Sprintf("list-%d", i%3),
		}
	}
	return tasks
}

func genFilter(t *rapid.T) entities.TaskFilter {
	return rapid.SampledFrom([]entities.TaskFilter{
		entities.FilterAll, entities.FilterOpen, entities.FilterDone,
	}).Draw(t, "filter")
}

func TestFilterTasks_Idempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		filter := genFilter(t)

		once := FilterTasks(tasks, filter)
		twice := FilterTasks(once, filter)

		if len(once) != len(twice) {
			t.Fatalf("filter not idempotent: %d then %d", len(once), len(twice))
		}
		for i := range once {
			if once[i].ID != twice[i].ID {
				t.Fatalf("filter not idempotent at %d: %s vs %s", i, once[i].ID, twice[i].ID)
			}
		}
	})
}

func TestFilterTasks_PreservesOrderAndInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		filter := genFilter(t)

		before := append([]entities.Task(nil), tasks...)
		out := FilterTasks(tasks, filter)

		// input untouched
		for i := range before {
			if tasks[i].ID != before[i].ID || tasks[i].Status != before[i].Status {
				t.Fatalf("input mutated at %d", i)
			}
		}

		// output is an order-preserving subsequence of the input
		j := 0
		for _, task := range out {
			for j < len(tasks) && tasks[j].ID != task.ID {
				j++
			}
			if j == len(tasks) {
				t.Fatalf("output task %s out of input order", task.ID)
			}
			j++
		}

		// every output task matches the filter
		for _, task := range out {
			if !filter.Matches(task) {
				t.Fatalf("task %s does not match filter %s", task.ID, filter)
			}
		}
	})
}

func TestFilterTasks_AllIsIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		out := FilterTasks(tasks, entities.FilterAll)
		if len(out) != len(tasks) {
			t.Fatalf("filter all dropped tasks: %d of %d", len(out), len(tasks))
		}
	})
}

func TestTaskView_ToggleIsInvolution(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tasks := genTasks(t)
		if len(tasks) == 0 {
			t.Skip("no tasks")
		}
		view := NewTaskView()
		gen := view.BeginRefresh()
		if !view.CompleteRefresh(gen, tasks, nil, time.Now()) {
			t.Fatalf("initial refresh should apply")
		}

		idx := rapid.IntRange(0, len(tasks)-1).Draw(t, "idx")
		id := tasks[idx].ID
		original := tasks[idx].Status

		if _, err := view.ApplyToggle(id); err != nil {
			t.Fatalf("first toggle: %v", err)
		}
		task, err := view.ApplyToggle(id)
		if err != nil {
			t.Fatalf("second toggle: %v", err)
		}
		if task.Status != original {
			t.Fatalf("double toggle should restore %s, got %s", original, task.Status)
		}

		// only the toggled task changed
		current, _, _ := view.Tasks(entities.FilterAll)
		for i := range tasks {
			if tasks[i].ID == id {
				continue
			}
			if current[i].Status != tasks[i].Status {
				t.Fatalf("toggle leaked to task %s", tasks[i].ID)
			}
		}
	})
}

func TestTaskView_ResolveToggleKeepsFlip(t *testing.T) {
	tasks := []entities.Task{{ID: "t1", Status: entities.TaskStatusOpen, ListID: "l1"}}
	view := NewTaskView()
	gen := view.BeginRefresh()
	view.CompleteRefresh(gen, tasks, nil, time.Now())

	flipped, err := view.ApplyToggle("t1")
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if flipped.Status != entities.TaskStatusDone || flipped.Sync != entities.SyncPending {
		t.Fatalf("expected pending done task, got %s/%s", flipped.Status, flipped.Sync)
	}

	// remote failure keeps the local flip, only the tag changes
	task, err := view.ResolveToggle("t1", false)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if task.Status != entities.TaskStatusDone {
		t.Fatalf("remote failure must not revert the flip, got %s", task.Status)
	}
	if task.Sync != entities.SyncFailed {
		t.Fatalf("expected failed sync tag, got %s", task.Sync)
	}
}

func TestTaskView_SupersededRefreshDropped(t *testing.T) {
	view := NewTaskView()

	oldGen := view.BeginRefresh()
	newGen := view.BeginRefresh()

	stale := []entities.Task{{ID: "stale"}}
	fresh := []entities.Task{{ID: "fresh"}}

	if view.CompleteRefresh(oldGen, stale, nil, time.Now()) {
		t.Fatalf("superseded refresh must not apply")
	}
	if !view.CompleteRefresh(newGen, fresh, nil, time.Now()) {
		t.Fatalf("current refresh should apply")
	}

	tasks, _, _ := view.Tasks(entities.FilterAll)
	if len(tasks) != 1 || tasks[0].ID != "fresh" {
		t.Fatalf("expected fresh contents, got %+v", tasks)
	}
}

func TestTaskView_InvalidateDropsInFlightRefresh(t *testing.T) {
	view := NewTaskView()
	gen := view.BeginRefresh()
	view.Invalidate()

	if view.CompleteRefresh(gen, []entities.Task{{ID: "late"}}, nil, time.Now()) {
		t.Fatalf("refresh completing after invalidation must not apply")
	}
	if !view.Empty() {
		t.Fatalf("view should stay empty")
	}
}

func TestTaskView_MarkStaleKeepsContents(t *testing.T) {
	view := NewTaskView()
	gen := view.BeginRefresh()
	view.CompleteRefresh(gen, []entities.Task{{ID: "t1"}}, nil, time.Now())

	gen = view.BeginRefresh()
	view.MarkStale(gen)

	tasks, stale, _ := view.Tasks(entities.FilterAll)
	if !stale {
		t.Fatalf("view should be flagged stale")
	}
	if len(tasks) != 1 || tasks[0].ID != "t1" {
		t.Fatalf("stale contents should be kept, got %+v", tasks)
	}

	// a later successful refresh clears the flag
	gen = view.BeginRefresh()
	view.CompleteRefresh(gen, []entities.Task{{ID: "t2"}}, nil, time.Now())
	_, stale, _ = view.Tasks(entities.FilterAll)
	if stale {
		t.Fatalf("successful refresh should clear staleness")
	}
}
