package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Jarmey101/agentpipeline/internal/usecase"
)

type LeadHandler struct {
	CaptureLeadUC *usecase.CaptureLeadUseCase
}

func NewLeadHandler(uc *usecase.CaptureLeadUseCase) *LeadHandler {
	return &LeadHandler{CaptureLeadUC: uc}
}

// Capture handles POST /api/leads. The body is decoded into a loose map so
// the usecase can resolve the field aliases before validating.
func (h *LeadHandler) Capture(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid payload")
		return
	}

	output, err := h.CaptureLeadUC.Execute(r.Context(), body)
	if err != nil {
		switch e := err.(type) {
		case usecase.ValidationErrors:
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"ok":      false,
				"error":   "Invalid payload",
				"details": e,
			})
		case *usecase.TechnicalError:
			writeErrorResponse(w, http.StatusInternalServerError, e.Message)
		default:
			writeErrorResponse(w, http.StatusInternalServerError, "Server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, output)
}
