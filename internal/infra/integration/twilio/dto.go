package twilio

// MessageOutput is what callers get back from a send attempt.
type MessageOutput struct {
	SID    string
	Status string
}

// Message lifecycle statuses Twilio reports, send response and webhook alike.
const (
	StatusQueued      = "queued"
	StatusSent        = "sent"
	StatusDelivered   = "delivered"
	StatusUndelivered = "undelivered"
	StatusFailed      = "failed"
)

type messageResponse struct {
	Sid    string `json:"sid"`
	Status string `json:"status"`
}

type apiError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	MoreInfo string `json:"more_info"`
}
