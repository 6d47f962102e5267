package handler

import "net/http"

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	providerConfigured bool
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(providerConfigured bool) *HealthHandler {
	return &HealthHandler{providerConfigured: providerConfigured}
}

// Health handles GET /health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

// Ready handles GET /ready
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.providerConfigured {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"reason": "provider API key not configured",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}
