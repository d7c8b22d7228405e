package files

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Store keeps uploaded documents in a flat directory on the local filesystem.
type Store struct {
	baseDir string
}

// New creates a Store rooted at baseDir.
func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk under a random-prefixed name derived from the
// original file name. It returns the stored name and the full path.
func (s *Store) Save(ctx context.Context, fileName string, r io.Reader) (string, string, int64, error) {
	if err := ctx.Err(); err != nil {
		return "", "", 0, err
	}

	sanitized, err := sanitizeFileName(fileName)
	if err != nil {
		return "", "", 0, fmt.Errorf("sanitize file name: %w", err)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", "", 0, fmt.Errorf("mkdir: %w", err)
	}

	storedName := fmt.Sprintf("%s_%s", randomID(), sanitized)
	fullPath := filepath.Join(s.baseDir, storedName)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", "", 0, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	size, err := io.Copy(f, r)
	if err != nil {
		return "", "", 0, fmt.Errorf("write body: %w", err)
	}

	return storedName, fullPath, size, nil
}

// Remove deletes a stored file. Paths outside the base directory are rejected.
func (s *Store) Remove(path string) error {
	clean := filepath.Clean(path)
	base := filepath.Clean(s.baseDir)
	if !strings.HasPrefix(clean, base+string(filepath.Separator)) {
		return fmt.Errorf("invalid file path")
	}
	return os.Remove(clean)
}

// sanitizeFileName strips directory components and anything outside a
// conservative character set, preserving the extension.
func sanitizeFileName(fileName string) (string, error) {
	base := filepath.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == ".." || base == "" {
		return "", fmt.Errorf("empty file name")
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "", fmt.Errorf("file name has no usable characters")
	}
	return out, nil
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
