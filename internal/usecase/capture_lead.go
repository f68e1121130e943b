package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/Jarmey101/agentpipeline/internal/entity"
	"github.com/Jarmey101/agentpipeline/internal/infra/http/middleware"
	"github.com/Jarmey101/agentpipeline/internal/infra/integration/twilio"
	"github.com/Jarmey101/agentpipeline/internal/infra/mail"
)

const leadConfirmationMessage = "Hi! Thanks for reaching out. I received your request and will contact you shortly."

type CaptureLeadUseCase struct {
	Leads         entity.LeadRepositoryInterface
	Notifications entity.NotificationRepositoryInterface
	SMS           SMSGateway
	Email         EmailService

	FromPhone            string
	AgentSMSTo           string
	AgentEmailTo         string
	SendLeadConfirmation bool
}

func NewCaptureLeadUseCase(
	leads entity.LeadRepositoryInterface,
	notifications entity.NotificationRepositoryInterface,
	sms SMSGateway,
	email EmailService,
	fromPhone string,
	agentSMSTo string,
	agentEmailTo string,
	sendLeadConfirmation bool,
) *CaptureLeadUseCase {
	return &CaptureLeadUseCase{
		Leads:                leads,
		Notifications:        notifications,
		SMS:                  sms,
		Email:                email,
		FromPhone:            fromPhone,
		AgentSMSTo:           agentSMSTo,
		AgentEmailTo:         agentEmailTo,
		SendLeadConfirmation: sendLeadConfirmation,
	}
}

// Execute runs the whole intake flow: normalize the alias-tolerant body,
// validate, persist, then fire the best-effort notifications. The lead row is
// the only thing that can fail the request; every notification attempt is
// recorded as an audit row whether it worked or not.
func (uc *CaptureLeadUseCase) Execute(ctx context.Context, body map[string]any) (*CaptureLeadOutput, error) {
	input := NormalizeLead(body)

	if errs := ValidateCaptureLeadInput(&input); len(errs) > 0 {
		return nil, errs
	}

	if uc.Leads == nil {
		return nil, &TechnicalError{
			Code:    CodeNotConfigured,
			Message: "database not configured, missing DATABASE_URL",
		}
	}

	lead := &entity.Lead{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		LeadType:  input.LeadType,
		Timeline:  input.Timeline,
		Budget:    input.Budget,
		Area:      input.Area,
		Status:    entity.LeadStatusNew,
	}

	if err := uc.Leads.Insert(ctx, lead); err != nil {
		return nil, &TechnicalError{
			Code:    CodeDatabaseError,
			Message: "database insert failed: " + err.Error(),
		}
	}

	middleware.RecordLeadCaptured(lead.LeadType)

	// Attempts run one after the other. A failure is recorded and swallowed
	// so the next attempt and the response are never blocked.
	if uc.AgentSMSTo != "" {
		uc.attemptSMS(ctx, lead, uc.AgentSMSTo, agentAlertMessage(lead), "agent_alert")
	}

	if uc.SendLeadConfirmation && lead.Phone != "" {
		uc.attemptSMS(ctx, lead, lead.Phone, leadConfirmationMessage, "lead_confirmation")
	}

	if uc.Email != nil && uc.AgentEmailTo != "" {
		uc.attemptEmailAlert(ctx, lead)
	}

	return &CaptureLeadOutput{OK: true, ID: lead.ID}, nil
}

func (uc *CaptureLeadUseCase) attemptSMS(ctx context.Context, lead *entity.Lead, to, body, kind string) {
	notification := &entity.Notification{
		LeadID:    lead.ID,
		Channel:   entity.ChannelSMS,
		ToValue:   to,
		FromValue: uc.FromPhone,
		Provider:  twilio.Provider,
		Payload:   map[string]any{"kind": kind},
	}

	var msg *twilio.MessageOutput
	var err error
	if uc.SMS != nil {
		msg, err = uc.SMS.Send(to, body)
	} else {
		err = fmt.Errorf("twilio not configured")
	}

	if err != nil {
		notification.Status = twilio.StatusFailed
		notification.ErrorMessage = err.Error()
		middleware.RecordIntegrationError(twilio.Provider)
		log.Printf("TWILIO: %s to %s failed: %v", kind, to, err)
	} else {
		notification.ProviderMessageID = msg.SID
		notification.Status = msg.Status
		log.Printf("TWILIO: %s sent to %s sid=%s", kind, to, msg.SID)
	}

	uc.recordNotification(ctx, notification)
}

func (uc *CaptureLeadUseCase) attemptEmailAlert(ctx context.Context, lead *entity.Lead) {
	notification := &entity.Notification{
		LeadID:   lead.ID,
		Channel:  entity.ChannelEmail,
		ToValue:  uc.AgentEmailTo,
		Provider: mail.Provider,
		Payload:  map[string]any{"kind": "agent_alert"},
	}

	err := uc.Email.SendLeadAlert(uc.AgentEmailTo, mail.LeadAlertData{
		LeadID:    lead.ID,
		FirstName: lead.FirstName,
		LastName:  lead.LastName,
		Email:     lead.Email,
		Phone:     lead.Phone,
		LeadType:  lead.LeadType,
		Timeline:  lead.Timeline,
		Budget:    lead.Budget,
		Area:      lead.Area,
	})

	if err != nil {
		notification.Status = "failed"
		notification.ErrorMessage = err.Error()
		middleware.RecordIntegrationError(mail.Provider)
		log.Printf("MAIL: agent alert to %s failed: %v", uc.AgentEmailTo, err)
	} else {
		notification.Status = "sent"
		log.Printf("MAIL: agent alert sent to %s", uc.AgentEmailTo)
	}

	uc.recordNotification(ctx, notification)
}

// recordNotification is audit, not delivery: an insert failure is logged and
// dropped so it can never fail the parent request.
func (uc *CaptureLeadUseCase) recordNotification(ctx context.Context, n *entity.Notification) {
	middleware.RecordNotification(n.Channel, n.Status)

	if uc.Notifications == nil {
		return
	}
	if err := uc.Notifications.Insert(ctx, n); err != nil {
		log.Printf("DB: lead_notifications insert failed: %v", err)
	}
}

func agentAlertMessage(lead *entity.Lead) string {
	return fmt.Sprintf(
		"NEW LEAD (%s)\n%s %s\nEmail: %s\nPhone: %s\nTimeline: %s\nBudget: %s\nArea: %s\nID: %s",
		lead.LeadType,
		lead.FirstName, lead.LastName,
		lead.Email,
		orNA(lead.Phone),
		lead.Timeline,
		orNA(lead.Budget),
		orNA(lead.Area),
		lead.ID,
	)
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
