package meeting

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

var taskPrefixRe = regexp.MustCompile(`^Task-\d+\s*`)

// ExtractTitle pulls the title off the first line of a generated
// summary. The generation prompt asks for a "(TITLE)" first line; when
// the model ignores that, fall back to a dated default.
func ExtractTitle(summary string, now time.Time) string {
	firstLine := summary
	if i := strings.Index(summary, "\n"); i >= 0 {
		firstLine = summary[:i]
	}
	title := strings.TrimSpace(strings.ReplaceAll(firstLine, "(TITLE)", ""))
	if title == "" || strings.HasPrefix(title, "Participants") {
		return "Meeting - " + now.Format("2006-01-02")
	}
	return title
}

// ParseParticipants parses a model reply that should be a JSON list of
// names. Replies that are not valid JSON get a lenient cleanup pass:
// strip brackets and quotes, split on commas and "and".
func ParseParticipants(raw string) []string {
	raw = strings.TrimSpace(raw)

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err == nil {
		return cleanNames(names)
	}

	cleaned := strings.TrimPrefix(raw, "[")
	cleaned = strings.TrimSuffix(cleaned, "]")
	cleaned = regexp.MustCompile(`\s+and\s+`).ReplaceAllString(cleaned, ",")

	parts := strings.Split(cleaned, ",")
	names = make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.TrimSpace(p), `"'`)
		if p != "" {
			names = append(names, p)
		}
	}
	return names
}

func cleanNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n != "" {
			out = append(out, n)
		}
	}
	return out
}

// ParseTasks parses "Task-N ... Assigned by: X" lines from a model
// reply into action items for the given assignee. Lines without a
// Task- marker are skipped; a missing assigner becomes "Unknown".
func ParseTasks(raw, assignee string) []entities.ActionItem {
	var items []entities.ActionItem
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "Task-") {
			continue
		}

		text := line
		assigner := "Unknown"
		if before, after, found := strings.Cut(line, "Assigned by:"); found {
			text = before
			if a := strings.TrimSpace(after); a != "" {
				assigner = a
			}
		}

		text = taskPrefixRe.ReplaceAllString(strings.TrimSpace(text), "")
		text = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(text), ","))
		if text == "" {
			continue
		}

		items = append(items, entities.ActionItem{
			Text:       text,
			Assignee:   assignee,
			AssignedBy: assigner,
		})
	}
	return items
}
