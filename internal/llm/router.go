package llm

import (
	"context"
	"strings"

	"docchat-backend/internal/shared/telemetry"
)

// Router fronts a completion Client with the guard conditions and the
// fail-closed policy: callers always get an answer string, never an error.
type Router struct {
	Client Client
}

// Answer resolves a question against the bounded document context. Blank
// questions and empty contexts short-circuit to fixed replies without invoking
// the client; client failures yield MsgUnavailable.
func (r *Router) Answer(ctx context.Context, question, documentContext string) string {
	if strings.TrimSpace(question) == "" {
		return MsgInvalidQuestion
	}
	if strings.TrimSpace(documentContext) == "" {
		return MsgNoContent
	}

	answer, err := r.Client.Answer(ctx, question, documentContext)
	if err != nil {
		telemetry.Error("llm.answer_failed", map[string]any{
			"error": err.Error(),
		})
		return MsgUnavailable
	}
	return answer
}
