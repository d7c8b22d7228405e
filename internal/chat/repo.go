package chat

import "context"

// ConversationsRepo persists question/answer exchanges.
type ConversationsRepo interface {
	// Create stores a new conversation record.
	Create(ctx context.Context, conv Conversation) error
	// ListByDocument returns a page of conversations for a document, newest
	// first, plus the total count for that document.
	ListByDocument(ctx context.Context, documentID string, limit, offset int) ([]Conversation, int, error)
	// Recent returns the latest conversations across all documents with the
	// owning document's original name attached.
	Recent(ctx context.Context, limit int) ([]Conversation, error)
	// Delete removes a conversation. It reports whether a record was removed.
	Delete(ctx context.Context, conversationID string) (bool, error)
	// DeleteByDocument removes every conversation for a document.
	DeleteByDocument(ctx context.Context, documentID string) error
}
