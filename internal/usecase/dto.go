package usecase

type CaptureLeadInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	LeadType  string `json:"lead_type"`
	Timeline  string `json:"timeline"`
	Budget    string `json:"budget"`
	Area      string `json:"area"`
}

type CaptureLeadOutput struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}
