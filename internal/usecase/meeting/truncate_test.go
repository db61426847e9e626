package meeting

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate_AtLimit(t *testing.T) {
	s := strings.Repeat("a", 500)
	if got := Truncate(s, SummaryPreviewLimit); got != s {
		t.Fatalf("string at the limit should be unchanged")
	}
	if Truncated(s, SummaryPreviewLimit) {
		t.Fatalf("string at the limit is not truncated")
	}
}

func TestTruncate_OverLimit(t *testing.T) {
	s := strings.Repeat("a", 501)
	got := Truncate(s, SummaryPreviewLimit)
	if utf8.RuneCountInString(got) != 501 { // 500 runes plus ellipsis
		t.Fatalf("expected 501 runes got %d", utf8.RuneCountInString(got))
	}
	if !strings.HasSuffix(got, "…") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-3:])
	}
	if !Truncated(s, SummaryPreviewLimit) {
		t.Fatalf("string over the limit is truncated")
	}
}

func TestTruncate_RuneSafe(t *testing.T) {
	s := strings.Repeat("語", 1001)
	got := Truncate(s, TranscriptPreviewLimit)
	if !utf8.ValidString(got) {
		t.Fatalf("truncation split a multi-byte character")
	}
	if utf8.RuneCountInString(got) != 1001 {
		t.Fatalf("expected 1000 runes plus ellipsis, got %d", utf8.RuneCountInString(got))
	}
}

func TestTruncate_ZeroLimit(t *testing.T) {
	if got := Truncate("anything", 0); got != "" {
		t.Fatalf("expected empty string got %q", got)
	}
}
