// Package schema defines the wire types shared by the chat client and server.
package schema

import (
	"time"

	"github.com/google/uuid"
)

// Role represents the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Valid reports whether the role is one the schema accepts.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}

// Message is a single conversation turn. Immutable once created; timestamps
// are epoch milliseconds.
type Message struct {
	ID        string `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ChatRequest is the body of POST /api/chat. The server is stateless, so the
// caller resupplies the full conversation history on every request.
type ChatRequest struct {
	Message string    `json:"message"`
	History []Message `json:"history,omitempty"`
}

// ChatResponse wraps the assistant's reply.
type ChatResponse struct {
	Message Message `json:"message"`
}

// ErrorResponse is the error envelope for both validation and server
// failures. Details is a FieldErrors list for 400s and a plain string for
// 500s.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// NewID returns an opaque unique message identifier.
func NewID() string {
	return uuid.NewString()
}

// NowMillis returns the current time as epoch milliseconds.
func NowMillis() int64 {
	return time.Now().UnixMilli()
}

// NewUserMessage builds a user-authored message stamped with the current time.
func NewUserMessage(content string) Message {
	return Message{
		ID:        NewID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: NowMillis(),
	}
}

// NewAssistantMessage builds an assistant message stamped with the current time.
func NewAssistantMessage(content string) Message {
	return Message{
		ID:        NewID(),
		Role:      RoleAssistant,
		Content:   content,
		Timestamp: NowMillis(),
	}
}
