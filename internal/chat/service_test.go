package chat

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
)

type capturingClient struct {
	question string
	context  string
	answer   string
}

func (c *capturingClient) Answer(ctx context.Context, question, documentContext string) (string, error) {
	c.question = question
	c.context = documentContext
	return c.answer, nil
}

func seedDocument(t *testing.T, repo documents.DocumentsRepo, id, content string) {
	t.Helper()
	err := repo.Create(context.Background(), documents.Document{
		ID:           id,
		FileName:     "x_" + id + ".docx",
		OriginalName: id + ".docx",
		FileType:     "docx",
		Content:      content,
		UploadedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}
}

func TestAskBoundsContextBeforeAnswering(t *testing.T) {
	docs := documents.NewMemoryRepo()
	long := strings.Repeat("a", 100)
	seedDocument(t, docs, "doc-1", long)

	client := &capturingClient{answer: "ok"}
	svc := &Service{
		Docs:         docs,
		Repo:         NewMemoryRepo(),
		Answerer:     &llm.Router{Client: client},
		ContextChars: 40,
	}

	conv, err := svc.Ask(context.Background(), "doc-1", "is it long?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if conv.Answer != "ok" {
		t.Fatalf("expected answer ok, got %q", conv.Answer)
	}
	if !strings.HasSuffix(client.context, llm.TruncationMarker) {
		t.Fatalf("expected truncation marker, got %q", client.context)
	}
	if !strings.HasPrefix(client.context, strings.Repeat("a", 40)) {
		t.Fatalf("expected 40-rune prefix, got %q", client.context)
	}
}

func TestAskEmptyContentFailsWithoutClientCall(t *testing.T) {
	docs := documents.NewMemoryRepo()
	seedDocument(t, docs, "doc-1", "")

	client := &capturingClient{answer: "should not be used"}
	repo := NewMemoryRepo()
	svc := &Service{
		Docs:         docs,
		Repo:         repo,
		Answerer:     &llm.Router{Client: client},
		ContextChars: 1500,
	}

	_, err := svc.Ask(context.Background(), "doc-1", "anything?")
	if !errors.Is(err, ErrEmptyContent) {
		t.Fatalf("expected ErrEmptyContent, got %v", err)
	}
	if client.question != "" {
		t.Fatalf("expected client to stay untouched, got question %q", client.question)
	}

	// Nothing is persisted for a rejected exchange.
	_, total, err := repo.ListByDocument(context.Background(), "doc-1", 50, 0)
	if err != nil {
		t.Fatalf("ListByDocument: %v", err)
	}
	if total != 0 {
		t.Fatalf("expected no persisted conversations, got %d", total)
	}
}

func TestAskUnknownDocument(t *testing.T) {
	svc := &Service{
		Docs:     documents.NewMemoryRepo(),
		Repo:     NewMemoryRepo(),
		Answerer: &llm.Router{Client: &capturingClient{}},
	}

	_, err := svc.Ask(context.Background(), "missing", "anything?")
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected documents.ErrNotFound, got %v", err)
	}
}

func TestAskAttachesDocumentName(t *testing.T) {
	docs := documents.NewMemoryRepo()
	seedDocument(t, docs, "doc-1", "Project Alpha uses quicksort.")

	svc := &Service{
		Docs:     docs,
		Repo:     NewMemoryRepo(),
		Answerer: &llm.Router{Client: &capturingClient{answer: "quicksort"}},
	}

	conv, err := svc.Ask(context.Background(), "doc-1", "what algorithm?")
	if err != nil {
		t.Fatalf("Ask: %v", err)
	}
	if conv.DocumentName != "doc-1.docx" {
		t.Fatalf("expected document name, got %q", conv.DocumentName)
	}
	if conv.ID == "" || conv.CreatedAt.IsZero() {
		t.Fatalf("expected populated id and timestamp: %+v", conv)
	}
}
