package chat

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory ConversationsRepo used when no database is
// configured.
type MemoryRepo struct {
	mu    sync.RWMutex
	items map[string]Conversation
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{items: map[string]Conversation{}}
}

// Create stores a conversation.
func (r *MemoryRepo) Create(ctx context.Context, conv Conversation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[conv.ID] = conv
	return nil
}

// ListByDocument returns a page of a document's conversations newest-first.
func (r *MemoryRepo) ListByDocument(ctx context.Context, documentID string, limit, offset int) ([]Conversation, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var all []Conversation
	for _, conv := range r.items {
		if conv.DocumentID == documentID {
			all = append(all, conv)
		}
	}
	sortNewestFirst(all)

	total := len(all)
	if offset >= total {
		return []Conversation{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	page := make([]Conversation, end-offset)
	copy(page, all[offset:end])
	return page, total, nil
}

// Recent returns the latest conversations across all documents.
func (r *MemoryRepo) Recent(ctx context.Context, limit int) ([]Conversation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Conversation, 0, len(r.items))
	for _, conv := range r.items {
		all = append(all, conv)
	}
	sortNewestFirst(all)

	if limit < len(all) {
		all = all[:limit]
	}
	out := make([]Conversation, len(all))
	copy(out, all)
	return out, nil
}

// Delete removes a single conversation.
func (r *MemoryRepo) Delete(ctx context.Context, conversationID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[conversationID]; !ok {
		return false, nil
	}
	delete(r.items, conversationID)
	return true, nil
}

// DeleteByDocument removes every conversation for a document.
func (r *MemoryRepo) DeleteByDocument(ctx context.Context, documentID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, conv := range r.items {
		if conv.DocumentID == documentID {
			delete(r.items, id)
		}
	}
	return nil
}

func sortNewestFirst(convs []Conversation) {
	sort.Slice(convs, func(i, j int) bool {
		if convs[i].CreatedAt.Equal(convs[j].CreatedAt) {
			return convs[i].ID > convs[j].ID
		}
		return convs[i].CreatedAt.After(convs[j].CreatedAt)
	})
}

var _ ConversationsRepo = (*MemoryRepo)(nil)
