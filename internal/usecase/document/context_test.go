package document

import (
	"strings"
	"testing"
	"time"
)

func TestSplitText_ShortTextSingleChunk(t *testing.T) {
	chunks := splitText("short text", chunkSize, chunkOverlap)
	if len(chunks) != 1 || chunks[0] != "short text" {
		t.Fatalf("expected single chunk, got %v", chunks)
	}
}

func TestSplitText_OverlappingWindows(t *testing.T) {
	text := strings.Repeat("a", 1000) + strings.Repeat("b", 1000)
	chunks := splitText(text, chunkSize, chunkOverlap)

	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks got %d", len(chunks))
	}
	if len([]rune(chunks[0])) != chunkSize {
		t.Fatalf("expected %d rune chunk got %d", chunkSize, len([]rune(chunks[0])))
	}

	// consecutive chunks share the overlap region
	tail := chunks[0][len(chunks[0])-chunkOverlap:]
	if !strings.HasPrefix(chunks[1], tail) {
		t.Fatalf("chunks should overlap by %d runes", chunkOverlap)
	}
}

func TestSplitText_RuneSafe(t *testing.T) {
	text := strings.Repeat("語", 1500)
	chunks := splitText(text, chunkSize, chunkOverlap)
	for i, c := range chunks {
		if strings.ContainsRune(c, '�') {
			t.Fatalf("chunk %d contains a split character", i)
		}
	}
}

func TestBuildContext_UploadsPreferred(t *testing.T) {
	now := time.Now()
	sources := []sourceText{
		{Text: "old meeting notes", Label: "Meeting: Standup", CreatedAt: now.Add(-3 * time.Hour)},
		{Text: "uploaded report", Label: "Document: report.docx", IsUpload: true, CreatedAt: now.Add(-2 * time.Hour)},
		{Text: "new meeting notes", Label: "Meeting: Planning", CreatedAt: now.Add(-1 * time.Hour)},
	}

	ctx := buildContext(sources)

	if !strings.Contains(ctx, "uploaded report") {
		t.Fatalf("upload should be selected, got %q", ctx)
	}
	if strings.Contains(ctx, "meeting notes") {
		t.Fatalf("meetings should be skipped when an upload exists, got %q", ctx)
	}
	if !strings.Contains(ctx, "[Document: report.docx]") {
		t.Fatalf("chunk should carry its source label, got %q", ctx)
	}
}

func TestBuildContext_MeetingFallbackTakesTwoMostRecent(t *testing.T) {
	now := time.Now()
	sources := []sourceText{
		{Text: "oldest meeting", Label: "Meeting: A", CreatedAt: now.Add(-3 * time.Hour)},
		{Text: "middle meeting", Label: "Meeting: B", CreatedAt: now.Add(-2 * time.Hour)},
		{Text: "newest meeting", Label: "Meeting: C", CreatedAt: now.Add(-1 * time.Hour)},
	}

	ctx := buildContext(sources)

	if !strings.Contains(ctx, "newest meeting") || !strings.Contains(ctx, "middle meeting") {
		t.Fatalf("two most recent meetings expected, got %q", ctx)
	}
	if strings.Contains(ctx, "oldest meeting") {
		t.Fatalf("third meeting should be dropped, got %q", ctx)
	}
}

func TestBuildContext_SeparatorBetweenChunks(t *testing.T) {
	now := time.Now()
	sources := []sourceText{
		{Text: strings.Repeat("x", 2500), Label: "Document: big.docx", IsUpload: true, CreatedAt: now},
	}

	ctx := buildContext(sources)

	if !strings.Contains(ctx, "---CHUNK SEPARATOR---") {
		t.Fatalf("expected chunk separator in multi-chunk context")
	}
}

func TestBuildContext_BudgetEnforced(t *testing.T) {
	now := time.Now()
	sources := []sourceText{
		{Text: strings.Repeat("y", 50000), Label: "Document: huge.docx", IsUpload: true, CreatedAt: now},
	}

	ctx := buildContext(sources)

	if len(ctx) == 0 {
		t.Fatalf("expected non-empty context")
	}
	// separators are not counted against the budget, so allow slack
	if len(ctx) > maxContextLength+2000 {
		t.Fatalf("context exceeds budget: %d", len(ctx))
	}
}

func TestBuildContext_Empty(t *testing.T) {
	if ctx := buildContext(nil); ctx != "" {
		t.Fatalf("expected empty context got %q", ctx)
	}
}
