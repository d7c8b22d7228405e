package documents

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    file_name,
    original_name,
    file_path,
    file_type,
    content,
    uploaded_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.FileName,
		doc.OriginalName,
		doc.FilePath,
		doc.FileType,
		doc.Content,
		doc.UploadedAt,
	)
	return err
}

// List returns document metadata newest-first. Content stays in the database;
// only its length travels.
func (r *PGRepo) List(ctx context.Context) ([]Document, error) {
	const query = `
SELECT id, file_name, original_name, file_path, file_type, char_length(content) AS content_length, uploaded_at
FROM documents
ORDER BY uploaded_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		var doc Document
		if err := rows.Scan(
			&doc.ID,
			&doc.FileName,
			&doc.OriginalName,
			&doc.FilePath,
			&doc.FileType,
			&doc.ContentLength,
			&doc.UploadedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

// GetByID fetches a document with its content.
func (r *PGRepo) GetByID(ctx context.Context, documentID string) (Document, error) {
	const query = `
SELECT id, file_name, original_name, file_path, file_type, content, uploaded_at
FROM documents
WHERE id = $1
LIMIT 1`

	var doc Document
	err := r.DB.QueryRowContext(ctx, query, documentID).Scan(
		&doc.ID,
		&doc.FileName,
		&doc.OriginalName,
		&doc.FilePath,
		&doc.FileType,
		&doc.Content,
		&doc.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	doc.ContentLength = utf8.RuneCountInString(doc.Content)
	return doc, nil
}

// Delete removes a document; conversations referencing it are removed by the
// ON DELETE CASCADE foreign key in the same statement.
func (r *PGRepo) Delete(ctx context.Context, documentID string) (bool, error) {
	const query = `DELETE FROM documents WHERE id = $1`

	res, err := r.DB.ExecContext(ctx, query, documentID)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
