package chat

import "errors"

var (
	// ErrNotFound indicates the conversation does not exist.
	ErrNotFound = errors.New("conversation not found")
	// ErrEmptyContent indicates the document has no extracted text to answer from.
	ErrEmptyContent = errors.New("document has no content")
	// ErrInvalidInput indicates a malformed request.
	ErrInvalidInput = errors.New("invalid input")
)
