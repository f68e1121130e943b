package entity

import (
	"context"
	"time"
)

// Enum values accepted by the public form. Anything else is rejected at
// validation time.
const (
	LeadTypeBuyer    = "Buyer"
	LeadTypeSeller   = "Seller"
	LeadTypeInvestor = "Investor"
)

var LeadTypes = []string{LeadTypeBuyer, LeadTypeSeller, LeadTypeInvestor}

var Timelines = []string{"0-3 months", "3-6 months", "6-12 months", "12+ months"}

const LeadStatusNew = "new"

type Lead struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	LeadType  string    `json:"lead_type"`
	Timeline  string    `json:"timeline"`
	Budget    string    `json:"budget,omitempty"`
	Area      string    `json:"area,omitempty"`
	Status    string    `json:"status"` // "new" on insert, free text afterwards
	CreatedAt time.Time `json:"created_at"`
}

func IsValidLeadType(v string) bool {
	for _, t := range LeadTypes {
		if v == t {
			return true
		}
	}
	return false
}

func IsValidTimeline(v string) bool {
	for _, t := range Timelines {
		if v == t {
			return true
		}
	}
	return false
}

type LeadRepositoryInterface interface {

	// Insert persists the lead and fills in ID and CreatedAt.
	Insert(ctx context.Context, lead *Lead) error

	ListRecent(ctx context.Context, limit int) ([]Lead, error)
}
