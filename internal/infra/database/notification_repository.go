package database

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/Jarmey101/agentpipeline/internal/entity"
)

type NotificationRepository struct {
	DB *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *entity.Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	payload := n.Payload
	if payload == nil {
		payload = map[string]any{}
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO lead_notifications
			(id, lead_id, channel, to_value, from_value, provider, provider_message_id, status, payload, error_code, error_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		n.ID,
		n.LeadID,
		n.Channel,
		n.ToValue,
		nullString(n.FromValue),
		n.Provider,
		nullString(n.ProviderMessageID),
		n.Status,
		payloadJSON,
		nullString(n.ErrorCode),
		nullString(n.ErrorMessage),
	).Scan(&n.CreatedAt, &n.UpdatedAt)
}

func (r *NotificationRepository) UpdateByProviderMessageID(ctx context.Context, providerMessageID string, upd entity.NotificationStatusUpdate) (int64, error) {
	query := `
		UPDATE lead_notifications
		SET status = $2,
			error_code = $3,
			error_message = $4,
			updated_at = NOW()
		WHERE provider_message_id = $1
	`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		providerMessageID,
		upd.Status,
		nullString(upd.ErrorCode),
		nullString(upd.ErrorMessage),
	)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
