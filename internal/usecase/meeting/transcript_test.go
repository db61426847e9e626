package meeting

import "testing"

func TestSplitTranscript_PseudoTurns(t *testing.T) {
	raw := "Hello everyone\n\n  \nLet's get started\nFirst item"

	turns := SplitTranscript(raw)

	if len(turns) != 3 {
		t.Fatalf("expected 3 turns got %d", len(turns))
	}
	for i, turn := range turns {
		if turn.Speaker != "Speaker" {
			t.Fatalf("expected placeholder speaker got %q", turn.Speaker)
		}
		want := string(rune('1' + i))
		if turn.Time != want {
			t.Fatalf("expected counter %q got %q", want, turn.Time)
		}
	}
	if turns[1].Text != "Let's get started" {
		t.Fatalf("blank lines should be skipped, got %q", turns[1].Text)
	}
}

func TestSplitTranscript_Empty(t *testing.T) {
	if turns := SplitTranscript(""); len(turns) != 0 {
		t.Fatalf("expected no turns got %d", len(turns))
	}
}

func TestAdaptParticipants_CaseCollision(t *testing.T) {
	participants := AdaptParticipants([]string{"Sam", "sam", "SAM", "Alex"})

	if len(participants) != 2 {
		t.Fatalf("case-colliding names should collapse, got %d entries", len(participants))
	}
	if participants[0].ID != "sam" || participants[0].Name != "Sam" {
		t.Fatalf("first spelling should win, got %+v", participants[0])
	}
	if participants[1].ID != "alex" {
		t.Fatalf("unexpected second participant %+v", participants[1])
	}
}

func TestAdaptParticipants_TrimsAndSkipsEmpty(t *testing.T) {
	participants := AdaptParticipants([]string{"  Dana  ", "", "   "})
	if len(participants) != 1 {
		t.Fatalf("expected 1 participant got %d", len(participants))
	}
	if participants[0].Name != "Dana" || participants[0].ID != "dana" {
		t.Fatalf("unexpected participant %+v", participants[0])
	}
}
