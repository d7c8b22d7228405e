package chat

import (
	"context"
	"database/sql"
)

// PGRepo implements ConversationsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new conversation.
func (r *PGRepo) Create(ctx context.Context, conv Conversation) error {
	const query = `
INSERT INTO conversations (
    id,
    document_id,
    question,
    answer,
    created_at
) VALUES ($1, $2, $3, $4, $5)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		conv.ID,
		conv.DocumentID,
		conv.Question,
		conv.Answer,
		conv.CreatedAt,
	)
	return err
}

// ListByDocument returns a page of conversations newest-first plus the total
// count for the document.
func (r *PGRepo) ListByDocument(ctx context.Context, documentID string, limit, offset int) ([]Conversation, int, error) {
	const countQuery = `SELECT COUNT(*) FROM conversations WHERE document_id = $1`

	var total int
	if err := r.DB.QueryRowContext(ctx, countQuery, documentID).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `
SELECT id, document_id, question, answer, created_at
FROM conversations
WHERE document_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, documentID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []Conversation
	for rows.Next() {
		var conv Conversation
		if err := rows.Scan(
			&conv.ID,
			&conv.DocumentID,
			&conv.Question,
			&conv.Answer,
			&conv.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, conv)
	}
	return out, total, rows.Err()
}

// Recent returns the latest conversations across all documents, joined with
// the owning document's original name.
func (r *PGRepo) Recent(ctx context.Context, limit int) ([]Conversation, error) {
	const query = `
SELECT c.id, c.document_id, d.original_name, c.question, c.answer, c.created_at
FROM conversations c
JOIN documents d ON d.id = c.document_id
ORDER BY c.created_at DESC
LIMIT $1`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Conversation
	for rows.Next() {
		var conv Conversation
		if err := rows.Scan(
			&conv.ID,
			&conv.DocumentID,
			&conv.DocumentName,
			&conv.Question,
			&conv.Answer,
			&conv.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, conv)
	}
	return out, rows.Err()
}

// Delete removes a single conversation.
func (r *PGRepo) Delete(ctx context.Context, conversationID string) (bool, error) {
	const query = `DELETE FROM conversations WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, conversationID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DeleteByDocument removes every conversation for a document. With Postgres
// the foreign key cascade already covers document deletion; this exists for
// callers that clear history without removing the document.
func (r *PGRepo) DeleteByDocument(ctx context.Context, documentID string) error {
	const query = `DELETE FROM conversations WHERE document_id = $1`

	_, err := r.DB.ExecContext(ctx, query, documentID)
	return err
}

var _ ConversationsRepo = (*PGRepo)(nil)
