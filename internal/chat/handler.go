package chat

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docchat-backend/internal/documents"
	"docchat-backend/internal/llm"
	"docchat-backend/internal/shared/server/respond"
)

const (
	defaultHistoryLimit = 50
	defaultRecentLimit  = 10
	maxPageLimit        = 200
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches chat routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/ask", h.ask)
	rg.GET("/history/:docId", h.history)
	rg.GET("/recent", h.recent)
	rg.DELETE("/conversation/:id", h.delete)
}

type askRequest struct {
	DocumentID string `json:"documentId"`
	Question   string `json:"question"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.DocumentID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "documentId is required", nil)
		return
	}
	if req.Question == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "question is required", nil)
		return
	}

	conv, err := h.Svc.Ask(c.Request.Context(), req.DocumentID, req.Question)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		case errors.Is(err, ErrEmptyContent):
			respond.Error(c, http.StatusBadRequest, "empty_content", llm.MsgNoContent, nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to answer question", nil)
		}
		return
	}

	c.Set("documentId", conv.DocumentID)
	c.Set("conversationId", conv.ID)
	respond.OK(c, toResponse(conv))
}

func (h *Handler) history(c *gin.Context) {
	documentID := c.Param("docId")
	limit := parsePositiveInt(c.Query("limit"), defaultHistoryLimit)
	offset := parseNonNegativeInt(c.Query("offset"), 0)

	convs, total, err := h.Svc.History(c.Request.Context(), documentID, limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, documents.ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "document not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch history", nil)
		}
		return
	}

	c.Set("documentId", documentID)
	respond.OK(c, gin.H{
		"data": toResponses(convs),
		"pagination": Pagination{
			Total:   total,
			Limit:   limit,
			Offset:  offset,
			HasMore: offset+len(convs) < total,
		},
	})
}

func (h *Handler) recent(c *gin.Context) {
	limit := parsePositiveInt(c.Query("limit"), defaultRecentLimit)

	convs, err := h.Svc.Recent(c.Request.Context(), limit)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch recent conversations", nil)
		return
	}

	respond.OK(c, gin.H{"data": toResponses(convs), "count": len(convs)})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "conversation not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete conversation", nil)
		}
		return
	}

	c.Set("conversationId", id)
	respond.OK(c, gin.H{"message": "Conversation deleted successfully"})
}

// parsePositiveInt parses raw as a positive integer, falling back to def for
// missing, malformed, or non-positive values and clamping to maxPageLimit.
func parsePositiveInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > maxPageLimit {
		return maxPageLimit
	}
	return n
}

func parseNonNegativeInt(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return def
	}
	return n
}
