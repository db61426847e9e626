package meeting

import (
	"fmt"
	"strings"

	"github.com/aura-ai/aura-backend/internal/domain/entities"
)

// placeholderSpeaker labels pseudo-turns built from an unstructured
// transcript. This is a display fallback, not speaker attribution.
const placeholderSpeaker = "Speaker"

// SplitTranscript turns a raw transcript blob into pseudo-turns, one
// per non-empty line, with a sequential counter standing in for a
// timestamp.
func SplitTranscript(raw string) []entities.Utterance {
	var turns []entities.Utterance
	counter := 0
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		counter++
		turns = append(turns, entities.Utterance{
			Time:    fmt.Sprintf("%d", counter),
			Speaker: placeholderSpeaker,
			Text:    line,
		})
	}
	return turns
}

// AdaptParticipants maps participant names to participant records
// keyed by lower-cased name. Two names differing only by case collapse
// into one record; the first spelling wins. Known limitation of the
// naming scheme.
func AdaptParticipants(names []string) []entities.MeetingParticipant {
	seen := make(map[string]bool, len(names))
	participants := make([]entities.MeetingParticipant, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		p := entities.NewMeetingParticipant(name)
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		participants = append(participants, p)
	}
	return participants
}
