// Package extract pulls plain text out of uploaded documents.
package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupported is returned for file extensions we do not handle
var ErrUnsupported = errors.New("unsupported file format")

// SupportedExtensions maps accepted file extensions to their handler
// type. .doc is attempted as docx.
var SupportedExtensions = map[string]string{
	".pdf":  "pdf",
	".txt":  "txt",
	".docx": "docx",
	".doc":  "docx",
}

// IsSupported checks the extension whitelist. This runs before any
// upload work so unsupported files are rejected cheaply.
func IsSupported(filename string) bool {
	if filename == "" {
		return false
	}
	_, ok := SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// SupportedList returns the accepted extensions in a stable order for
// error messages.
func SupportedList() []string {
	return []string{".pdf", ".txt", ".docx", ".doc"}
}

// Text extracts plain text from the file contents based on extension
func Text(data []byte, filename string) (string, error) {
	kind, ok := SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
	if !ok {
		return "", ErrUnsupported
	}

	switch kind {
	case "txt":
		return strings.TrimSpace(string(data)), nil
	case "docx":
		text, err := docxText(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	case "pdf":
		text, err := pdfText(data)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(text), nil
	}
	return "", ErrUnsupported
}

// docxText reads word/document.xml out of the docx archive and
// collects the text runs, inserting a newline per paragraph.
func docxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a valid docx archive: %w", err)
	}

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", fmt.Errorf("docx archive has no document part")
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open document part: %w", err)
	}
	defer rc.Close()

	var sb strings.Builder
	decoder := xml.NewDecoder(rc)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("failed to parse document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				var text string
				if err := decoder.DecodeElement(&text, &t); err != nil {
					return "", fmt.Errorf("failed to decode text run: %w", err)
				}
				sb.WriteString(text)
			}
		case xml.EndElement:
			if t.Name.Local == "p" {
				sb.WriteString("\n")
			}
		}
	}

	return sb.String(), nil
}

// pdfText is a best-effort extraction of text shown between BT/ET
// blocks in uncompressed PDF content streams. Compressed streams are
// skipped; callers should treat an empty result as extraction failure.
func pdfText(data []byte) (string, error) {
	var sb strings.Builder
	content := string(data)

	for {
		start := strings.Index(content, "BT")
		if start < 0 {
			break
		}
		end := strings.Index(content[start:], "ET")
		if end < 0 {
			break
		}
		block := content[start : start+end]
		content = content[start+end+2:]

		for {
			open := strings.IndexByte(block, '(')
			if open < 0 {
				break
			}
			close := strings.IndexByte(block[open:], ')')
			if close < 0 {
				break
			}
			sb.WriteString(block[open+1 : open+close])
			block = block[open+close+1:]
		}
		sb.WriteString("\n")
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no extractable text in pdf")
	}
	return text, nil
}
