package document

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Retrieval limits. Chunking keeps document boundaries visible to the
// model; the total budget keeps the prompt inside token limits.
const (
	chunkSize        = 1000
	chunkOverlap     = 200
	maxContextLength = 12000
)

// sourceText is one retrievable text with its provenance
type sourceText struct {
	Text      string
	Label     string
	IsUpload  bool
	CreatedAt time.Time
}

// buildContext assembles the retrieval context. Uploaded documents are
// preferred over meeting transcripts: when any upload exists, only the
// most recent one is used; otherwise the two most recent meeting
// transcripts serve as fallback.
func buildContext(sources []sourceText) string {
	if len(sources) == 0 {
		return ""
	}

	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].CreatedAt.After(sources[j].CreatedAt)
	})

	var selected []sourceText
	for _, s := range sources {
		if s.IsUpload {
			selected = append(selected, s)
			break
		}
	}
	if len(selected) == 0 {
		for _, s := range sources {
			selected = append(selected, s)
			if len(selected) == 2 {
				break
			}
		}
	}

	var chunks []string
	for _, src := range selected {
		for _, chunk := range splitText(src.Text, chunkSize, chunkOverlap) {
			chunks = append(chunks, fmt.Sprintf("[%s]\n%s", src.Label, chunk))
		}
	}

	var sb strings.Builder
	total := 0
	for i, chunk := range chunks {
		if total+len(chunk) > maxContextLength {
			break
		}
		if i > 0 {
			sb.WriteString("\n\n---CHUNK SEPARATOR---\n\n")
		}
		sb.WriteString(chunk)
		total += len(chunk)
	}
	return sb.String()
}

// splitText cuts text into overlapping rune windows
func splitText(text string, size, overlap int) []string {
	runes := []rune(text)
	if len(runes) <= size {
		return []string{text}
	}

	step := size - overlap
	var chunks []string
	for start := 0; start < len(runes); start += step {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
		if end == len(runes) {
			break
		}
	}
	return chunks
}
