package usecase

import (
	"github.com/Jarmey101/agentpipeline/internal/infra/integration/twilio"
	"github.com/Jarmey101/agentpipeline/internal/infra/mail"
)

type SMSGateway interface {
	Send(to, body string) (*twilio.MessageOutput, error)
}

type EmailService interface {
	SendLeadAlert(to string, data mail.LeadAlertData) error
}
