package trello

import (
	"time"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// AdaptCards maps raw board cards into tasks, preserving card order.
// A card with no due date, or with one the API returned in a shape we
// cannot parse, gets today's date rather than failing the whole batch.
func AdaptCards(cards []Card, lists []List, now time.Time) []entities.Task {
	listNames := make(map[string]string, len(lists))
	for _, l := range lists {
		listNames[l.ID] = l.Name
	}

	tasks := make([]entities.Task, 0, len(cards))
	for _, card := range cards {
		tasks = append(tasks, adaptCard(card, listNames[card.IDList], now))
	}
	return tasks
}

// GroupByList groups tasks by their list id, preserving the board's
// list order. Tasks on lists the board no longer reports are appended
// under their raw list id at the end.
func GroupByList(tasks []entities.Task, lists []List) []entities.TaskGroup {
	groups := make([]entities.TaskGroup, 0, len(lists))
	index := make(map[string]int, len(lists))
	for _, l := range lists {
		index[l.ID] = len(groups)
		groups = append(groups, entities.TaskGroup{ListID: l.ID, ListName: l.Name})
	}

	for _, task := range tasks {
		i, ok := index[task.ListID]
		if !ok {
			index[task.ListID] = len(groups)
			i = len(groups)
			groups = append(groups, entities.TaskGroup{ListID: task.ListID, ListName: task.ListName})
		}
		groups[i].Tasks = append(groups[i].Tasks, task)
	}
	return groups
}

func adaptCard(card Card, listName string, now time.Time) entities.Task {
	status := entities.TaskStatusOpen
	if card.Closed {
		status = entities.TaskStatusDone
	}

	labels := make([]string, 0, len(card.Labels))
	for _, l := range card.Labels {
		if l.Name != "" {
			labels = append(labels, l.Name)
		}
	}

	return entities.Task{
		ID:             card.ID,
		Title:          card.Name,
		Description:    card.Desc,
		Status:         status,
		DueDate:        parseDueDate(card.Due, now),
		ListID:         card.IDList,
		ListName:       listName,
		URL:            card.URL,
		CommentCount:   card.Badges.Comments,
		ChecklistCount: card.Badges.CheckItems,
		LastActivityAt: parseTimestamp(card.DateLastActivity),
		Closed:         card.Closed,
		Labels:         labels,
		Sync:           entities.SyncConfirmed,
	}
}

// parseDueDate falls back to the current date on a missing or malformed
// value. This is deliberate: a bad date on one card must not fail the
// whole transform.
func parseDueDate(raw string, now time.Time) time.Time {
	if raw == "" {
		return now
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t
	}
	return now
}

func parseTimestamp(raw string) time.Time {
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}
	return t
}
