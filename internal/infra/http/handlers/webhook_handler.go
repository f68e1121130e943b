package handlers

import (
	"log"
	"net/http"

	"github.com/Jarmey101/agentpipeline/internal/entity"
	"github.com/Jarmey101/agentpipeline/internal/infra/http/middleware"
	"github.com/Jarmey101/agentpipeline/internal/infra/integration/twilio"
)

// TwilioWebhookHandler ingests Twilio delivery-status callbacks. The endpoint
// is gated by our own query-string shared secret, not by anything Twilio
// signs. After the secret check it always answers 200: Twilio retries
// non-200 responses and we would rather record a failure in the body than
// have the same callback hammered at us.
type TwilioWebhookHandler struct {
	Secret        string
	Events        entity.WebhookEventRepositoryInterface
	Notifications entity.NotificationRepositoryInterface
}

func NewTwilioWebhookHandler(
	secret string,
	events entity.WebhookEventRepositoryInterface,
	notifications entity.NotificationRepositoryInterface,
) *TwilioWebhookHandler {
	return &TwilioWebhookHandler{
		Secret:        secret,
		Events:        events,
		Notifications: notifications,
	}
}

func (h *TwilioWebhookHandler) HandleMessageStatus(w http.ResponseWriter, r *http.Request) {
	secret := r.URL.Query().Get("secret")
	if secret == "" || h.Secret == "" || secret != h.Secret {
		writeErrorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseForm(); err != nil {
		// Authorized caller, unreadable body. Still 200 per provider contract.
		writeJSON(w, http.StatusOK, map[string]any{"ok": false, "error": "unreadable form body"})
		return
	}

	payload := make(map[string]any, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			payload[k] = vs[0]
		}
	}

	messageSid := firstString(payload, "MessageSid", "SmsSid")
	messageStatus := firstString(payload, "MessageStatus", "SmsStatus")
	errorCode := firstString(payload, "ErrorCode")
	errorMessage := firstString(payload, "ErrorMessage")

	if h.Events == nil || h.Notifications == nil {
		writeErrorResponse(w, http.StatusInternalServerError,
			"database not configured, missing DATABASE_URL")
		return
	}

	event := &entity.WebhookEvent{
		Provider:          twilio.Provider,
		EventType:         "message.status",
		ProviderMessageID: messageSid,
		Payload:           payload,
	}

	var eventError string
	if err := h.Events.Insert(r.Context(), event); err != nil {
		eventError = err.Error()
		log.Printf("DB: provider_webhook_events insert failed: %v", err)
	}

	var updated int64
	var updateError string
	if messageSid != "" {
		status := messageStatus
		if status == "" {
			status = "unknown"
		}
		n, err := h.Notifications.UpdateByProviderMessageID(r.Context(), messageSid, entity.NotificationStatusUpdate{
			Status:       status,
			ErrorCode:    errorCode,
			ErrorMessage: errorMessage,
		})
		if err != nil {
			updateError = err.Error()
			log.Printf("DB: lead_notifications status update failed: %v", err)
		}
		updated = n
	}

	middleware.RecordWebhookEvent(twilio.Provider, messageStatus)

	writeJSON(w, http.StatusOK, map[string]any{
		"ok":                      true,
		"messageSid":              messageSid,
		"messageStatus":           messageStatus,
		"storedEvent":             eventError == "",
		"eventError":              nullable(eventError),
		"notificationsUpdated":    updated,
		"notificationUpdateError": nullable(updateError),
	})
}

func firstString(payload map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := payload[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
