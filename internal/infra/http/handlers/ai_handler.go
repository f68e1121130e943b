package handlers

import (
	"encoding/json"
	"net/http"
)

const maxContextLen = 4000

// AIHandler is a placeholder integration point. It checks the key is present
// and returns a canned follow-up suggestion; no model is called yet.
type AIHandler struct {
	APIKey string
}

func NewAIHandler(apiKey string) *AIHandler {
	return &AIHandler{APIKey: apiKey}
}

func (h *AIHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	if h.APIKey == "" {
		writeErrorResponse(w, http.StatusBadRequest, "AI not configured")
		return
	}

	var input struct {
		Context string `json:"context"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}
	if len(input.Context) < 1 || len(input.Context) > maxContextLen {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"suggestion": "Follow-up: Hi {FirstName}, just checking in. What's the best time today to connect about your goals?",
	})
}
