package llm

import "context"

// Client abstracts the completion capability that classifies a question
// against a document and produces the answer. Implementations receive the
// bounded document context, never the full content.
type Client interface {
	Answer(ctx context.Context, question, documentContext string) (string, error)
}

// Fixed user-visible replies. Handlers and tests rely on these exact strings.
const (
	// MsgInvalidQuestion is returned for blank questions, before any
	// completion call.
	MsgInvalidQuestion = "Please ask a valid question."

	// MsgNoContent is returned when there is no document context to answer
	// from, before any completion call.
	MsgNoContent = "No document content available to answer from."

	// MsgUnavailable is the fail-closed reply when the completion capability
	// errors or times out.
	MsgUnavailable = "AI service temporarily unavailable."

	// NotFoundReply is the contractual reply for a document question whose
	// fact is absent from the provided context.
	NotFoundReply = "Not found in document"
)
