package extract

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"
)

func TestIsSupported(t *testing.T) {
	tests := []struct {
		filename string
		want     bool
	}{
		{"notes.pdf", true},
		{"notes.txt", true},
		{"notes.docx", true},
		{"notes.doc", true},
		{"NOTES.DOCX", true},
		{"notes.exe", false},
		{"notes.png", false},
		{"notes", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsSupported(tt.filename); got != tt.want {
			t.Fatalf("IsSupported(%q) = %v, want %v", tt.filename, got, tt.want)
		}
	}
}

func TestText_Txt(t *testing.T) {
	text, err := Text([]byte("  hello world\n"), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello world" {
		t.Fatalf("expected trimmed content got %q", text)
	}
}

func TestText_UnsupportedExtension(t *testing.T) {
	if _, err := Text([]byte("payload"), "notes.exe"); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported got %v", err)
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte(documentXML)); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func TestText_Docx(t *testing.T) {
	doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>First paragraph</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second </w:t></w:r><w:r><w:t>paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`

	text, err := Text(buildDocx(t, doc), "meeting.docx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		t.Fatalf("expected one line per paragraph, got %q", text)
	}
	if lines[0] != "First paragraph" {
		t.Fatalf("unexpected first line %q", lines[0])
	}
	if lines[1] != "Second paragraph" {
		t.Fatalf("split text runs should join, got %q", lines[1])
	}
}

func TestText_DocxInvalidArchive(t *testing.T) {
	if _, err := Text([]byte("not a zip"), "broken.docx"); err == nil {
		t.Fatalf("expected error for invalid archive")
	}
}

func TestText_DocxMissingDocumentPart(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, _ := zw.Create("word/other.xml")
	w.Write([]byte("<x/>"))
	zw.Close()

	if _, err := Text(buf.Bytes(), "odd.docx"); err == nil {
		t.Fatalf("expected error when document part is missing")
	}
}

func TestText_PdfBestEffort(t *testing.T) {
	pdf := []byte("%PDF-1.4\nBT (Hello) Tj (World) Tj ET\n")
	text, err := Text(pdf, "doc.pdf")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(text, "Hello") || !strings.Contains(text, "World") {
		t.Fatalf("expected extracted strings, got %q", text)
	}
}

func TestText_PdfNoText(t *testing.T) {
	if _, err := Text([]byte("%PDF-1.4 nothing here"), "doc.pdf"); err == nil {
		t.Fatalf("expected error for pdf without extractable text")
	}
}
