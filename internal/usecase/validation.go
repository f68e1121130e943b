package usecase

import (
	"net/mail"
	"strings"

	"github.com/Jarmey101/agentpipeline/internal/entity"
)

// ValidateCaptureLeadInput checks the canonical lead shape and applies the
// enum defaults. Mutates input only to fill absent enum fields.
func ValidateCaptureLeadInput(input *CaptureLeadInput) ValidationErrors {
	var errors ValidationErrors

	if strings.TrimSpace(input.FirstName) == "" {
		errors = append(errors, ValidationError{"first_name", "is required"})
	} else if len(input.FirstName) > 80 {
		errors = append(errors, ValidationError{"first_name", "must not exceed 80 characters"})
	}

	if strings.TrimSpace(input.LastName) == "" {
		errors = append(errors, ValidationError{"last_name", "is required"})
	} else if len(input.LastName) > 80 {
		errors = append(errors, ValidationError{"last_name", "must not exceed 80 characters"})
	}

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if len(input.Email) > 160 {
		errors = append(errors, ValidationError{"email", "must not exceed 160 characters"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if len(input.Phone) > 40 {
		errors = append(errors, ValidationError{"phone", "must not exceed 40 characters"})
	}

	if input.LeadType == "" {
		input.LeadType = entity.LeadTypeBuyer
	} else if !entity.IsValidLeadType(input.LeadType) {
		errors = append(errors, ValidationError{"lead_type", "must be Buyer, Seller or Investor"})
	}

	if input.Timeline == "" {
		input.Timeline = entity.Timelines[0]
	} else if !entity.IsValidTimeline(input.Timeline) {
		errors = append(errors, ValidationError{"timeline", "must be one of " + strings.Join(entity.Timelines, ", ")})
	}

	if len(input.Budget) > 80 {
		errors = append(errors, ValidationError{"budget", "must not exceed 80 characters"})
	}

	if len(input.Area) > 120 {
		errors = append(errors, ValidationError{"area", "must not exceed 120 characters"})
	}

	return errors
}
