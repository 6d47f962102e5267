package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qrtz-ai/chat-gateway/internal/llm"
	"github.com/qrtz-ai/chat-gateway/internal/schema"
	"github.com/qrtz-ai/chat-gateway/pkg/logger"
)

// stubClient implements llm.Client and records every Generate call.
type stubClient struct {
	reply      string
	err        error
	calls      int
	gotMessage string
	gotHistory []schema.Message
}

func (s *stubClient) Generate(_ context.Context, message string, history []schema.Message) (string, error) {
	s.calls++
	s.gotMessage = message
	s.gotHistory = history
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubClient) Name() string { return "stub" }

func postChat(t *testing.T, h *ChatHandler, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(http.MethodPost, "/api/chat", &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Chat(rec, req)
	return rec
}

func TestChat_Success(t *testing.T) {
	stub := &stubClient{reply: "Hello there"}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, schema.ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp schema.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, schema.RoleAssistant, resp.Message.Role)
	require.Equal(t, "Hello there", resp.Message.Content)
	require.NotEmpty(t, resp.Message.ID)
	require.Positive(t, resp.Message.Timestamp)
	require.Equal(t, 1, stub.calls)
}

func TestChat_HistoryForwardedInOrder(t *testing.T) {
	stub := &stubClient{reply: "ok"}
	h := NewChatHandler(stub, logger.NewNop())

	history := []schema.Message{
		{ID: "1", Role: schema.RoleUser, Content: "q1", Timestamp: 1},
		{ID: "2", Role: schema.RoleAssistant, Content: "a1", Timestamp: 2},
	}
	rec := postChat(t, h, schema.ChatRequest{Message: "q2", History: history})

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "q2", stub.gotMessage)
	require.Equal(t, history, stub.gotHistory)
}

func TestChat_MissingMessage(t *testing.T) {
	stub := &stubClient{reply: "never"}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, map[string]any{"history": []schema.Message{}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, stub.calls)

	var resp struct {
		Error   string              `json:"error"`
		Details []schema.FieldError `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Invalid request", resp.Error)
	require.NotEmpty(t, resp.Details)
	require.Equal(t, "message", resp.Details[0].Field)
}

func TestChat_EmptyMessage(t *testing.T) {
	stub := &stubClient{reply: "never"}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, schema.ChatRequest{Message: ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, stub.calls)
}

func TestChat_BadHistoryRole(t *testing.T) {
	stub := &stubClient{reply: "never"}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, map[string]any{
		"message": "hi",
		"history": []map[string]any{
			{"id": "1", "role": "system", "content": "x", "timestamp": 1},
		},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, stub.calls)
}

func TestChat_MalformedBody(t *testing.T) {
	stub := &stubClient{reply: "never"}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Zero(t, stub.calls)
}

func TestChat_ConfigError(t *testing.T) {
	stub := &stubClient{err: &llm.ConfigError{Provider: "gemini"}}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, schema.ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp struct {
		Error   string `json:"error"`
		Details string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Failed to generate response", resp.Error)
	require.NotEmpty(t, resp.Details)
}

func TestChat_ProviderError(t *testing.T) {
	stub := &stubClient{err: &llm.ProviderError{Provider: "gemini", Err: context.DeadlineExceeded}}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, schema.ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp schema.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Failed to generate response", resp.Error)
}

func TestChat_FallbackReplyPassedThrough(t *testing.T) {
	// An empty provider reply is replaced in the gateway; the endpoint never
	// shapes an empty content field.
	stub := &stubClient{reply: llm.FallbackReply}
	h := NewChatHandler(stub, logger.NewNop())

	rec := postChat(t, h, schema.ChatRequest{Message: "Hello"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp schema.ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, llm.FallbackReply, resp.Message.Content)
}
