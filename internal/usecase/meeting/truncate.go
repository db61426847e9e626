package meeting

// Preview limits for the list view. Truncation counts runes, not
// bytes, so a multi-byte character is never split.
const (
	SummaryPreviewLimit    = 500
	TranscriptPreviewLimit = 1000
)

// Truncate returns the first limit runes of s followed by an ellipsis.
// Strings at or under the limit come back unchanged.
func Truncate(s string, limit int) string {
	if limit <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}

// Truncated reports whether s exceeds the limit
func Truncated(s string, limit int) bool {
	return len([]rune(s)) > limit
}
