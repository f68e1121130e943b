package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Jarmey101/agentpipeline/internal/entity"
	"github.com/Jarmey101/agentpipeline/internal/infra/integration/twilio"
	"github.com/Jarmey101/agentpipeline/internal/infra/mail"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Insert(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	if args.Error(0) == nil && lead.ID == "" {
		lead.ID = "lead-123"
	}
	return args.Error(0)
}

func (m *MockLeadRepository) ListRecent(ctx context.Context, limit int) ([]entity.Lead, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

type MockNotificationRepository struct {
	mock.Mock
	inserted []entity.Notification
}

func (m *MockNotificationRepository) Insert(ctx context.Context, n *entity.Notification) error {
	m.inserted = append(m.inserted, *n)
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *MockNotificationRepository) UpdateByProviderMessageID(ctx context.Context, sid string, upd entity.NotificationStatusUpdate) (int64, error) {
	args := m.Called(ctx, sid, upd)
	return args.Get(0).(int64), args.Error(1)
}

type MockSMSGateway struct {
	mock.Mock
}

func (m *MockSMSGateway) Send(to, body string) (*twilio.MessageOutput, error) {
	args := m.Called(to, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*twilio.MessageOutput), args.Error(1)
}

type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendLeadAlert(to string, data mail.LeadAlertData) error {
	args := m.Called(to, data)
	return args.Error(0)
}

const agentPhone = "+15559990000"

func validBody() map[string]any {
	return map[string]any{
		"first_name": "Ana",
		"last_name":  "Reyes",
		"email":      "ana@example.com",
		"phone":      "+15550001111",
	}
}

func TestCaptureLeadMissingEmailDoesNotPersist(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifRepo := new(MockNotificationRepository)
	sms := new(MockSMSGateway)

	uc := NewCaptureLeadUseCase(leadRepo, notifRepo, sms, nil, "+1555000", agentPhone, "", true)

	body := validBody()
	delete(body, "email")

	output, err := uc.Execute(context.Background(), body)

	assert.Nil(t, output)
	var verrs ValidationErrors
	assert.ErrorAs(t, err, &verrs)
	assert.Equal(t, "email", verrs[0].Field)

	leadRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	sms.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestCaptureLeadSendsAgentAlertAndConfirmation(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifRepo := new(MockNotificationRepository)
	sms := new(MockSMSGateway)

	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	notifRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	sms.On("Send", agentPhone, mock.Anything).Return(&twilio.MessageOutput{SID: "SM1", Status: "queued"}, nil)
	sms.On("Send", "+15550001111", mock.Anything).Return(&twilio.MessageOutput{SID: "SM2", Status: "queued"}, nil)

	uc := NewCaptureLeadUseCase(leadRepo, notifRepo, sms, nil, "+1555000", agentPhone, "", true)

	output, err := uc.Execute(context.Background(), validBody())

	assert.NoError(t, err)
	assert.True(t, output.OK)
	assert.Equal(t, "lead-123", output.ID)

	assert.Len(t, notifRepo.inserted, 2)
	assert.Equal(t, "agent_alert", notifRepo.inserted[0].Payload["kind"])
	assert.Equal(t, "SM1", notifRepo.inserted[0].ProviderMessageID)
	assert.Equal(t, "queued", notifRepo.inserted[0].Status)
	assert.Equal(t, "lead_confirmation", notifRepo.inserted[1].Payload["kind"])
	assert.Equal(t, "SM2", notifRepo.inserted[1].ProviderMessageID)
	for _, n := range notifRepo.inserted {
		assert.Equal(t, entity.ChannelSMS, n.Channel)
		assert.Equal(t, "lead-123", n.LeadID)
	}
}

func TestCaptureLeadNoPhoneSkipsConfirmation(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifRepo := new(MockNotificationRepository)
	sms := new(MockSMSGateway)

	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	notifRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	sms.On("Send", agentPhone, mock.Anything).Return(&twilio.MessageOutput{SID: "SM1", Status: "queued"}, nil)

	uc := NewCaptureLeadUseCase(leadRepo, notifRepo, sms, nil, "+1555000", agentPhone, "", true)

	body := validBody()
	delete(body, "phone")

	output, err := uc.Execute(context.Background(), body)

	assert.NoError(t, err)
	assert.True(t, output.OK)
	sms.AssertNumberOfCalls(t, "Send", 1)
	assert.Len(t, notifRepo.inserted, 1)
}

func TestCaptureLeadFailuresAreRecordedIndependently(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifRepo := new(MockNotificationRepository)
	sms := new(MockSMSGateway)

	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	notifRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	sms.On("Send", mock.Anything, mock.Anything).Return(nil, errors.New("twilio down"))

	uc := NewCaptureLeadUseCase(leadRepo, notifRepo, sms, nil, "+1555000", agentPhone, "", true)

	output, err := uc.Execute(context.Background(), validBody())

	// Notification failures never fail the request.
	assert.NoError(t, err)
	assert.True(t, output.OK)
	assert.Equal(t, "lead-123", output.ID)

	assert.Len(t, notifRepo.inserted, 2)
	for _, n := range notifRepo.inserted {
		assert.Equal(t, "failed", n.Status)
		assert.Contains(t, n.ErrorMessage, "twilio down")
		assert.Empty(t, n.ProviderMessageID)
	}
}

func TestCaptureLeadDatabaseNotConfigured(t *testing.T) {
	uc := NewCaptureLeadUseCase(nil, nil, nil, nil, "", agentPhone, "", false)

	output, err := uc.Execute(context.Background(), validBody())

	assert.Nil(t, output)
	var techErr *TechnicalError
	assert.ErrorAs(t, err, &techErr)
	assert.Equal(t, CodeNotConfigured, techErr.Code)
}

func TestCaptureLeadInsertFailure(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	uc := NewCaptureLeadUseCase(leadRepo, nil, nil, nil, "", "", "", false)

	output, err := uc.Execute(context.Background(), validBody())

	assert.Nil(t, output)
	var techErr *TechnicalError
	assert.ErrorAs(t, err, &techErr)
	assert.Equal(t, CodeDatabaseError, techErr.Code)
}

func TestCaptureLeadEmailAlertRecorded(t *testing.T) {
	leadRepo := new(MockLeadRepository)
	notifRepo := new(MockNotificationRepository)
	email := new(MockEmailService)

	leadRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	notifRepo.On("Insert", mock.Anything, mock.Anything).Return(nil)
	email.On("SendLeadAlert", "agent@example.com", mock.Anything).Return(nil)

	uc := NewCaptureLeadUseCase(leadRepo, notifRepo, nil, email, "", "", "agent@example.com", false)

	output, err := uc.Execute(context.Background(), validBody())

	assert.NoError(t, err)
	assert.True(t, output.OK)
	assert.Len(t, notifRepo.inserted, 1)
	assert.Equal(t, entity.ChannelEmail, notifRepo.inserted[0].Channel)
	assert.Equal(t, "sent", notifRepo.inserted[0].Status)
	email.AssertExpectations(t)
}
