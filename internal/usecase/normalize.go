package usecase

import "strings"

// Form builders and third-party embeds disagree on field names, so each
// canonical field carries an ordered list of accepted aliases. First key
// present in the body wins, even when its value is empty.
var leadFieldAliases = map[string][]string{
	"first_name": {"firstName", "first_name", "first", "fname"},
	"last_name":  {"lastName", "last_name", "last", "lname"},
	"email":      {"email"},
	"phone":      {"phone", "phone_number", "mobile"},
	"lead_type":  {"leadType", "lead_type", "type", "intent"},
	"timeline":   {"timeline", "timeframe", "move_timeline"},
	"budget":     {"budget", "budgetRange", "budget_range"},
	"area":       {"area", "preferredArea", "preferred_area"},
}

// NormalizeLead folds an alias-tolerant raw body into the canonical input
// shape. Values are coerced to trimmed strings; non-string JSON values are
// ignored rather than guessed at.
func NormalizeLead(body map[string]any) CaptureLeadInput {
	return CaptureLeadInput{
		FirstName: pickAlias(body, "first_name"),
		LastName:  pickAlias(body, "last_name"),
		Email:     pickAlias(body, "email"),
		Phone:     pickAlias(body, "phone"),
		LeadType:  pickAlias(body, "lead_type"),
		Timeline:  pickAlias(body, "timeline"),
		Budget:    pickAlias(body, "budget"),
		Area:      pickAlias(body, "area"),
	}
}

func pickAlias(body map[string]any, field string) string {
	for _, key := range leadFieldAliases[field] {
		if v, ok := body[key]; ok {
			if s, ok := v.(string); ok {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}
