package entity

import (
	"context"
	"time"
)

// Notification channels. WhatsApp is not sent by this service today but the
// audit schema admits it.
const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// Notification is the audit row for one outbound message attempt. One row per
// attempt, success or failure; the delivery-status webhook updates Status and
// the error fields in place by ProviderMessageID.
type Notification struct {
	ID                string         `json:"id"`
	LeadID            string         `json:"lead_id"`
	Channel           string         `json:"channel"`
	ToValue           string         `json:"to_value"`
	FromValue         string         `json:"from_value,omitempty"`
	Provider          string         `json:"provider"`
	ProviderMessageID string         `json:"provider_message_id,omitempty"`
	Status            string         `json:"status"`
	Payload           map[string]any `json:"payload,omitempty"`
	ErrorCode         string         `json:"error_code,omitempty"`
	ErrorMessage      string         `json:"error_message,omitempty"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

// WebhookEvent is a write-once copy of an inbound provider callback, kept for
// audit and debugging. Never updated or deleted.
type WebhookEvent struct {
	ID                string         `json:"id"`
	Provider          string         `json:"provider"`
	EventType         string         `json:"event_type"`
	ProviderMessageID string         `json:"provider_message_id,omitempty"`
	Payload           map[string]any `json:"payload"`
	CreatedAt         time.Time      `json:"created_at"`
}

type NotificationStatusUpdate struct {
	Status       string
	ErrorCode    string
	ErrorMessage string
}

type NotificationRepositoryInterface interface {
	Insert(ctx context.Context, n *Notification) error

	// UpdateByProviderMessageID applies a delivery-status update to every row
	// holding the given provider message id and reports how many matched.
	UpdateByProviderMessageID(ctx context.Context, providerMessageID string, upd NotificationStatusUpdate) (int64, error)
}

type WebhookEventRepositoryInterface interface {
	Insert(ctx context.Context, ev *WebhookEvent) error
}
