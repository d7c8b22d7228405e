package chat

import "time"

// ConversationResponse is the wire shape of a conversation.
type ConversationResponse struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"documentId"`
	DocumentName string    `json:"documentName,omitempty"`
	Question     string    `json:"question"`
	Answer       string    `json:"answer"`
	Timestamp    time.Time `json:"timestamp"`
}

// Pagination describes the window a history page was cut from.
type Pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

func toResponse(conv Conversation) ConversationResponse {
	return ConversationResponse{
		ID:           conv.ID,
		DocumentID:   conv.DocumentID,
		DocumentName: conv.DocumentName,
		Question:     conv.Question,
		Answer:       conv.Answer,
		Timestamp:    conv.CreatedAt,
	}
}

func toResponses(convs []Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(convs))
	for _, conv := range convs {
		out = append(out, toResponse(conv))
	}
	return out
}
