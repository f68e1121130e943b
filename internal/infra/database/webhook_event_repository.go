package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Jarmey101/agentpipeline/internal/entity"
)

type WebhookEventRepository struct {
	DB *sql.DB
}

func NewWebhookEventRepository(db *sql.DB) *WebhookEventRepository {
	return &WebhookEventRepository{DB: db}
}

// Insert writes the raw callback once. There is no update path on purpose.
func (r *WebhookEventRepository) Insert(ctx context.Context, ev *entity.WebhookEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}

	payload := ev.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO provider_webhook_events (id, provider, event_type, provider_message_id, payload)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		ev.ID,
		ev.Provider,
		ev.EventType,
		nullString(ev.ProviderMessageID),
		payloadJSON,
	).Scan(&ev.CreatedAt)
}
