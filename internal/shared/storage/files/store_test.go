package files

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemoveRoundTrip(t *testing.T) {
	store := New(t.TempDir())

	storedName, fullPath, size, err := saveString(t, store, "report.pdf", "hello world")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("expected size %d, got %d", len("hello world"), size)
	}
	if !strings.HasSuffix(storedName, "_report.pdf") {
		t.Fatalf("expected random prefix before original name, got %q", storedName)
	}

	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected stored content %q", data)
	}

	if err := store.Remove(fullPath); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, err := os.Stat(fullPath); !os.IsNotExist(err) {
		t.Fatalf("expected file to be gone, stat err=%v", err)
	}
}

func TestSaveSanitizesHostileNames(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	storedName, fullPath, _, err := saveString(t, store, "../../etc/pass wd.pdf", "x")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if strings.Contains(storedName, "/") || strings.Contains(storedName, "..") {
		t.Fatalf("stored name not sanitized: %q", storedName)
	}
	if filepath.Dir(fullPath) != filepath.Clean(dir) {
		t.Fatalf("file escaped base dir: %q", fullPath)
	}
}

func TestRemoveRejectsOutsidePaths(t *testing.T) {
	store := New(t.TempDir())
	if err := store.Remove("/etc/hosts"); err == nil {
		t.Fatal("expected error removing path outside base dir")
	}
}

func saveString(t *testing.T, store *Store, name, content string) (string, string, int64, error) {
	t.Helper()
	return store.Save(context.Background(), name, strings.NewReader(content))
}
