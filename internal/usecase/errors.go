package usecase

import "fmt"

// Error codes carried by TechnicalError. Handlers map these to HTTP statuses
// so an operator can tell "misconfigured" apart from "broken".
const (
	CodeNotConfigured = "NOT_CONFIGURED"
	CodeDatabaseError = "DATABASE_ERROR"
)

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	_, ok := err.(*TechnicalError)
	return ok
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors lets a handler return every field problem at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "invalid payload"
	}
	return e[0].Error()
}
