package handler

import (
	"encoding/json"
	"net/http"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes a JSON error envelope. Details may be a FieldErrors list
// (validation) or a plain string (server failures).
func writeError(w http.ResponseWriter, status int, message string, details any) {
	writeJSON(w, status, schema.ErrorResponse{
		Error:   message,
		Details: details,
	})
}
