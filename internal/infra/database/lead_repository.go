package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/Jarmey101/agentpipeline/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	if lead.ID == "" {
		lead.ID = uuid.New().String()
	}
	if lead.Status == "" {
		lead.Status = entity.LeadStatusNew
	}

	query := `
		INSERT INTO leads (id, first_name, last_name, email, phone, lead_type, timeline, budget, area, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	return r.DB.QueryRowContext(
		ctx,
		query,
		lead.ID,
		lead.FirstName,
		lead.LastName,
		lead.Email,
		nullString(lead.Phone),
		lead.LeadType,
		lead.Timeline,
		nullString(lead.Budget),
		nullString(lead.Area),
		lead.Status,
	).Scan(&lead.CreatedAt)
}

func (r *LeadRepository) ListRecent(ctx context.Context, limit int) ([]entity.Lead, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, lead_type, timeline, budget, area, status, created_at
		FROM leads
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		var lead entity.Lead
		var phone, budget, area sql.NullString

		if err := rows.Scan(
			&lead.ID,
			&lead.FirstName,
			&lead.LastName,
			&lead.Email,
			&phone,
			&lead.LeadType,
			&lead.Timeline,
			&budget,
			&area,
			&lead.Status,
			&lead.CreatedAt,
		); err != nil {
			return nil, err
		}

		lead.Phone = fromNull(phone)
		lead.Budget = fromNull(budget)
		lead.Area = fromNull(area)
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}
