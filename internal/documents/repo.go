package documents

import "context"

// DocumentsRepo defines persistence operations for documents.
type DocumentsRepo interface {
	Create(ctx context.Context, doc Document) error
	// List returns document metadata newest-first; Content is not populated
	// but ContentLength is.
	List(ctx context.Context) ([]Document, error)
	// GetByID returns the full document including Content.
	GetByID(ctx context.Context, documentID string) (Document, error)
	// Delete removes the document, reporting whether a row matched.
	// Dependent conversations go with it (cascade at the storage layer).
	Delete(ctx context.Context, documentID string) (bool, error)
}
