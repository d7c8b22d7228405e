package chat

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
)

// Service implements the question/answer flow and conversation history.
type Service struct {
	Docs         documents.DocumentsRepo
	Repo         ConversationsRepo
	Answerer     *llm.Router
	ContextChars int
}

// Ask answers a question against a document's content and persists the
// exchange. The answer string is always well-formed; guard conditions and
// backend failures resolve to fixed replies rather than errors.
func (s *Service) Ask(ctx context.Context, documentID, question string) (Conversation, error) {
	if strings.TrimSpace(documentID) == "" {
		return Conversation{}, ErrInvalidInput
	}

	doc, err := s.Docs.GetByID(ctx, documentID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return Conversation{}, documents.ErrNotFound
		}
		return Conversation{}, err
	}

	if strings.TrimSpace(doc.Content) == "" {
		return Conversation{}, ErrEmptyContent
	}

	bounded := llm.BoundContext(doc.Content, s.ContextChars)
	answer := s.Answerer.Answer(ctx, question, bounded)

	conv := Conversation{
		ID:           uuid.NewString(),
		DocumentID:   doc.ID,
		DocumentName: doc.OriginalName,
		Question:     question,
		Answer:       answer,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, conv); err != nil {
		return Conversation{}, err
	}
	return conv, nil
}

// History returns a page of a document's conversations newest-first. The
// document must exist.
func (s *Service) History(ctx context.Context, documentID string, limit, offset int) ([]Conversation, int, error) {
	if _, err := s.Docs.GetByID(ctx, documentID); err != nil {
		return nil, 0, err
	}
	return s.Repo.ListByDocument(ctx, documentID, limit, offset)
}

// Recent returns the latest conversations across all documents.
func (s *Service) Recent(ctx context.Context, limit int) ([]Conversation, error) {
	return s.Repo.Recent(ctx, limit)
}

// Delete removes a single conversation.
func (s *Service) Delete(ctx context.Context, conversationID string) error {
	deleted, err := s.Repo.Delete(ctx, conversationID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
