package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/Jarmey101/agentpipeline/internal/infra/integration/twilio"
	"github.com/Jarmey101/agentpipeline/internal/infra/mail"
)

type HealthHandler struct {
	DB        *sql.DB
	SMS       *twilio.Client
	Mail      *mail.EmailSender
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, sms *twilio.Client, mailSender *mail.EmailSender) *HealthHandler {
	return &HealthHandler{
		DB:        db,
		SMS:       sms,
		Mail:      mailSender,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.DB != nil {
		if err := h.DB.Ping(); err != nil {
			deps["database"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["database"] = "healthy"
		}
	} else {
		deps["database"] = "not configured"
	}

	if h.SMS != nil && h.SMS.Configured() {
		deps["twilio"] = "configured"
	} else {
		deps["twilio"] = "not configured"
	}

	if h.Mail != nil && h.Mail.Configured() {
		deps["mail"] = "configured"
	} else {
		deps["mail"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "configured" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
