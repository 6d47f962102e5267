package schema

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldError describes a single violated field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors is the structured result of validating a request body. It
// enumerates every violation rather than stopping at the first.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Field + ": " + fe.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

const maxContentBytes = 100000

// Validate checks the request against the schema. A nil return means the
// request is well formed.
func (r *ChatRequest) Validate() FieldErrors {
	var errs FieldErrors

	if r.Message == "" {
		errs = append(errs, FieldError{Field: "message", Message: "must contain at least 1 character"})
	} else if !utf8.ValidString(r.Message) {
		errs = append(errs, FieldError{Field: "message", Message: "must be valid UTF-8"})
	} else if len(r.Message) > maxContentBytes {
		errs = append(errs, FieldError{Field: "message", Message: "exceeds maximum length"})
	}

	for i, msg := range r.History {
		errs = append(errs, msg.validateAt(fmt.Sprintf("history[%d]", i))...)
	}

	return errs
}

// Validate checks a single message.
func (m *Message) Validate() FieldErrors {
	return m.validateAt("")
}

func (m *Message) validateAt(prefix string) FieldErrors {
	field := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "." + name
	}

	var errs FieldErrors
	if m.ID == "" {
		errs = append(errs, FieldError{Field: field("id"), Message: "is required"})
	}
	if !m.Role.Valid() {
		errs = append(errs, FieldError{Field: field("role"), Message: `must be "user" or "assistant"`})
	}
	if !utf8.ValidString(m.Content) {
		errs = append(errs, FieldError{Field: field("content"), Message: "must be valid UTF-8"})
	}
	if m.Timestamp < 0 {
		errs = append(errs, FieldError{Field: field("timestamp"), Message: "must not be negative"})
	}
	return errs
}
