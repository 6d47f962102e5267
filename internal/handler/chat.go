// Package handler implements the HTTP endpoints of the chat gateway.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/qrtz-ai/chat-gateway/internal/llm"
	"github.com/qrtz-ai/chat-gateway/internal/middleware"
	"github.com/qrtz-ai/chat-gateway/internal/schema"
	"github.com/qrtz-ai/chat-gateway/pkg/logger"
	"github.com/qrtz-ai/chat-gateway/pkg/metrics"
)

// ChatHandler handles the chat endpoint. It holds no per-request state; the
// caller resupplies the full conversation history on every call.
type ChatHandler struct {
	client llm.Client
	logger *logger.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(client llm.Client, log *logger.Logger) *ChatHandler {
	return &ChatHandler{
		client: client,
		logger: log,
	}
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req schema.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ValidationFailuresTotal.Inc()
		writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		metrics.ValidationFailuresTotal.Inc()
		writeError(w, http.StatusBadRequest, "Invalid request", errs)
		return
	}

	start := time.Now()
	text, err := h.client.Generate(ctx, req.Message, req.History)
	if err != nil {
		metrics.RecordGeneration(h.client.Name(), "error", time.Since(start).Seconds())
		h.logger.Error("chat generation failed",
			zap.Error(err),
			zap.String("provider", h.client.Name()),
			zap.String("correlation_id", middleware.GetCorrelationID(ctx)),
		)
		writeError(w, http.StatusInternalServerError, "Failed to generate response", err.Error())
		return
	}
	metrics.RecordGeneration(h.client.Name(), "success", time.Since(start).Seconds())

	writeJSON(w, http.StatusOK, schema.ChatResponse{
		Message: schema.NewAssistantMessage(text),
	})
}
