package documents

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"docchat-backend/internal/extract"
	"docchat-backend/internal/shared/storage/files"
	"docchat-backend/internal/shared/telemetry"
)

// ConversationSweeper removes the conversations of a deleted document. It is
// only wired when the repository layer cannot cascade on its own (memory
// mode); with Postgres the foreign key does this atomically.
type ConversationSweeper interface {
	DeleteByDocument(ctx context.Context, documentID string) error
}

// Service contains business logic for documents.
type Service struct {
	Files   *files.Store
	Repo    DocumentsRepo
	Sweeper ConversationSweeper
}

// Upload stores the file, extracts and normalizes its text, and records the
// document. Extraction failure is logged and the document is still created
// with empty content so its metadata stays queryable.
func (s *Service) Upload(ctx context.Context, originalName string, r io.Reader) (Document, error) {
	if strings.TrimSpace(originalName) == "" {
		return Document{}, ErrInvalidInput
	}

	storedName, fullPath, _, err := s.Files.Save(ctx, originalName, r)
	if err != nil {
		return Document{}, err
	}

	fileType := strings.TrimPrefix(strings.ToLower(filepath.Ext(originalName)), ".")

	content := ""
	raw, err := extract.Text(fullPath, fileType)
	if err != nil {
		telemetry.Warn("document.extraction_failed", map[string]any{
			"file_name": storedName,
			"file_type": fileType,
			"error":     err.Error(),
		})
	} else {
		content = extract.Normalize(raw)
	}

	doc := Document{
		ID:           uuid.NewString(),
		FileName:     storedName,
		OriginalName: originalName,
		FilePath:     fullPath,
		FileType:     fileType,
		Content:      content,
		UploadedAt:   time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		// The record is the source of truth; don't keep an orphaned file.
		if rmErr := s.Files.Remove(fullPath); rmErr != nil {
			telemetry.Error("document.cleanup_failed", map[string]any{
				"file_path": fullPath,
				"error":     rmErr.Error(),
			})
		}
		return Document{}, err
	}

	doc.ContentLength = len([]rune(content))
	return doc, nil
}

// List returns all documents, newest first.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Repo.List(ctx)
}

// Get returns a document including its content.
func (s *Service) Get(ctx context.Context, documentID string) (Document, error) {
	if strings.TrimSpace(documentID) == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetByID(ctx, documentID)
}

// Delete removes the document record (cascading to its conversations) and
// best-effort removes the backing file. A missing file never fails the
// delete; the database record is the source of truth.
func (s *Service) Delete(ctx context.Context, documentID string) error {
	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		return err
	}

	if s.Sweeper != nil {
		if err := s.Sweeper.DeleteByDocument(ctx, documentID); err != nil {
			return err
		}
	}

	deleted, err := s.Repo.Delete(ctx, documentID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if err := s.Files.Remove(doc.FilePath); err != nil {
		telemetry.Warn("document.file_remove_failed", map[string]any{
			"document_id": documentID,
			"file_path":   doc.FilePath,
			"error":       err.Error(),
		})
	}
	return nil
}
