package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDocx(t *testing.T, dir string, paragraphs ...string) string {
	t.Helper()

	var body bytes.Buffer
	body.WriteString(`<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>`)
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>`)
		if err := xml.EscapeText(&body, []byte(p)); err != nil {
			t.Fatalf("escape paragraph: %v", err)
		}
		body.WriteString(`</w:t></w:r></w:p>`)
	}
	body.WriteString(`</w:body></w:document>`)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write(body.Bytes()); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	path := filepath.Join(dir, "sample.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write docx: %v", err)
	}
	return path
}

func TestTextExtractsDocxParagraphs(t *testing.T) {
	path := writeDocx(t, t.TempDir(), "Project Alpha uses quicksort.", "Average case is O(n log n).")

	got, err := Text(path, "docx")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	want := "Project Alpha uses quicksort.\nAverage case is O(n log n)."
	if got != want {
		t.Fatalf("Text = %q, want %q", got, want)
	}
}

func TestTextUnsupportedFormat(t *testing.T) {
	_, err := Text("/tmp/whatever.txt", "txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestTextDispatchIsCaseInsensitive(t *testing.T) {
	path := writeDocx(t, t.TempDir(), "hello")

	if _, err := Text(path, "DOCX"); err != nil {
		t.Fatalf("expected uppercase tag to dispatch, got %v", err)
	}
}

func TestTextMissingFileFails(t *testing.T) {
	_, err := Text(filepath.Join(t.TempDir(), "missing.docx"), "docx")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("missing file must not report unsupported format: %v", err)
	}
}

func TestTextCorruptDocxFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.docx")
	if err := os.WriteFile(path, []byte("not a zip archive"), 0o644); err != nil {
		t.Fatalf("write corrupt file: %v", err)
	}

	if _, err := Text(path, "docx"); err == nil {
		t.Fatal("expected error for corrupt docx")
	}
}

func TestTextZipWithoutDocumentXMLFails(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("notes.txt")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write zip entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plain.docx")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if _, err := Text(path, "docx"); err == nil {
		t.Fatal("expected error for zip without word/document.xml")
	}
}
