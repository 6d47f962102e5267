package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

// Client calls the chat endpoint. No timeout is set on the underlying HTTP
// client: a generation runs to completion or error, with no local abort.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given server base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Send posts the message and history to /api/chat and returns the assistant
// reply. Non-2xx responses are decoded as error envelopes and surfaced as
// errors.
func (c *Client) Send(ctx context.Context, message string, history []schema.Message) (schema.Message, error) {
	body, err := json.Marshal(schema.ChatRequest{
		Message: message,
		History: history,
	})
	if err != nil {
		return schema.Message{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return schema.Message{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return schema.Message{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var envelope schema.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil || envelope.Error == "" {
			return schema.Message{}, fmt.Errorf("server returned %s", resp.Status)
		}
		if details, ok := envelope.Details.(string); ok && details != "" {
			return schema.Message{}, fmt.Errorf("%s: %s", envelope.Error, details)
		}
		return schema.Message{}, fmt.Errorf("%s", envelope.Error)
	}

	var chatResp schema.ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return schema.Message{}, fmt.Errorf("malformed response: %w", err)
	}
	return chatResp.Message, nil
}
