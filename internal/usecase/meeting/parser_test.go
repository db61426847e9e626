package meeting

import (
	"testing"
	"time"
)

func TestExtractTitle(t *testing.T) {
	now := time.Date(2026, 5, 2, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		summary string
		want    string
	}{
		{"marker stripped", "Q2 Planning (TITLE)\nParticipants: Alice, Bob", "Q2 Planning"},
		{"no marker", "Weekly Standup\nmore text", "Weekly Standup"},
		{"empty summary", "", "Meeting - 2026-05-02"},
		{"participants first", "Participants: Alice, Bob\nbody", "Meeting - 2026-05-02"},
		{"whitespace only", "   \nbody", "Meeting - 2026-05-02"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractTitle(tt.summary, now); got != tt.want {
				t.Fatalf("expected %q got %q", tt.want, got)
			}
		})
	}
}

func TestParseParticipants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"json list", `["Alice", "Bob"]`, []string{"Alice", "Bob"}},
		{"bracketed text", `[Alice, Bob]`, []string{"Alice", "Bob"}},
		{"and separator", `Alice and Bob and Carol`, []string{"Alice", "Bob", "Carol"}},
		{"quoted names", `"Alice", 'Bob'`, []string{"Alice", "Bob"}},
		{"empty", ``, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseParticipants(tt.raw)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v got %v", tt.want, got)
				}
			}
		})
	}
}

func TestParseTasks(t *testing.T) {
	raw := "Task-1 Prepare the roadmap, Assigned by: Alice\n" +
		"some chatter without a marker\n" +
		"Task-2 Review budget\n" +
		"Task-3  Assigned by: Bob\n"

	items := ParseTasks(raw, "Carol")

	if len(items) != 2 {
		t.Fatalf("expected 2 items got %d: %+v", len(items), items)
	}

	if items[0].Text != "Prepare the roadmap" {
		t.Fatalf("unexpected text %q", items[0].Text)
	}
	if items[0].Assignee != "Carol" || items[0].AssignedBy != "Alice" {
		t.Fatalf("unexpected attribution %+v", items[0])
	}

	if items[1].Text != "Review budget" {
		t.Fatalf("unexpected text %q", items[1].Text)
	}
	if items[1].AssignedBy != "Unknown" {
		t.Fatalf("missing assigner should default to Unknown, got %q", items[1].AssignedBy)
	}
}

func TestParseTasks_KeepsTrailingPeriod(t *testing.T) {
	items := ParseTasks("Task-1 Ship the release.", "Dana")
	if len(items) != 1 {
		t.Fatalf("expected 1 item got %d", len(items))
	}
	if items[0].Text != "Ship the release." {
		t.Fatalf("trailing period should be kept, got %q", items[0].Text)
	}
}
