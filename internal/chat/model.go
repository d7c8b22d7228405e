package chat

import "time"

// Conversation is a single question/answer exchange tied to a document.
type Conversation struct {
	ID           string
	DocumentID   string
	DocumentName string
	Question     string
	Answer       string
	CreatedAt    time.Time
}
