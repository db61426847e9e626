package trello

import (
	"testing"
	"time"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

func TestAdaptCards_StatusFollowsClosed(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	cards := []Card{
		{ID: "c1", Name: "open card", Closed: false, IDList: "l1"},
		{ID: "c2", Name: "done card", Closed: true, IDList: "l1"},
	}

	tasks := AdaptCards(cards, []List{{ID: "l1", Name: "Todo"}}, now)

	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks got %d", len(tasks))
	}
	if tasks[0].Status != entities.TaskStatusOpen {
		t.Fatalf("expected open got %s", tasks[0].Status)
	}
	if tasks[1].Status != entities.TaskStatusDone {
		t.Fatalf("expected done got %s", tasks[1].Status)
	}
	if !tasks[1].Closed {
		t.Fatalf("closed flag should carry through")
	}
}

func TestAdaptCards_DueDateFallback(t *testing.T) {
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		due  string
		want time.Time
	}{
		{"missing due", "", now},
		{"malformed due", "not-a-date", now},
		{"rfc3339 due", "2026-04-01T12:00:00Z", time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)},
		{"date only due", "2026-04-01", time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := AdaptCards([]Card{{ID: "c1", Due: tt.due, IDList: "l1"}}, nil, now)
			if !tasks[0].DueDate.Equal(tt.want) {
				t.Fatalf("expected %v got %v", tt.want, tasks[0].DueDate)
			}
		})
	}
}

func TestAdaptCards_PreservesOrder(t *testing.T) {
	now := time.Now()
	cards := []Card{
		{ID: "c3", IDList: "l1"},
		{ID: "c1", IDList: "l2"},
		{ID: "c2", IDList: "l1"},
	}

	tasks := AdaptCards(cards, nil, now)

	for i, want := range []string{"c3", "c1", "c2"} {
		if tasks[i].ID != want {
			t.Fatalf("position %d: expected %s got %s", i, want, tasks[i].ID)
		}
	}
}

func TestAdaptCards_ListNameResolved(t *testing.T) {
	lists := []List{{ID: "l1", Name: "In Progress"}}
	tasks := AdaptCards([]Card{{ID: "c1", IDList: "l1"}}, lists, time.Now())

	if tasks[0].ListName != "In Progress" {
		t.Fatalf("expected list name resolved, got %q", tasks[0].ListName)
	}
}

func TestGroupByList_BoardOrderPreserved(t *testing.T) {
	lists := []List{
		{ID: "l2", Name: "Doing"},
		{ID: "l1", Name: "Todo"},
	}
	tasks := []entities.Task{
		{ID: "c1", ListID: "l1"},
		{ID: "c2", ListID: "l2"},
		{ID: "c3", ListID: "l1"},
	}

	groups := GroupByList(tasks, lists)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups got %d", len(groups))
	}
	if groups[0].ListID != "l2" || groups[1].ListID != "l1" {
		t.Fatalf("groups should follow board list order, got %s then %s", groups[0].ListID, groups[1].ListID)
	}
	if len(groups[1].Tasks) != 2 || groups[1].Tasks[0].ID != "c1" || groups[1].Tasks[1].ID != "c3" {
		t.Fatalf("card order within group should be preserved")
	}
}

func TestGroupByList_UnknownListAppended(t *testing.T) {
	lists := []List{{ID: "l1", Name: "Todo"}}
	tasks := []entities.Task{
		{ID: "c1", ListID: "l1"},
		{ID: "c2", ListID: "gone", ListName: "Archived"},
	}

	groups := GroupByList(tasks, lists)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups got %d", len(groups))
	}
	if groups[1].ListID != "gone" || groups[1].ListName != "Archived" {
		t.Fatalf("tasks on unreported lists should be appended last")
	}
}
