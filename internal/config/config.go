package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
)

// Config holds every external credential the service reads. Loaded once at
// startup; missing optional values leave the matching feature disabled.
type Config struct {
	Port string

	AdminPassword string
	CookieSecret  string

	DatabaseURL string

	TwilioAccountSID    string
	TwilioAuthToken     string
	TwilioFromPhone     string
	TwilioWebhookSecret string

	AppBaseURL string

	AgentSMSTo   string
	AgentEmailTo string

	SendLeadConfirmationSMS bool

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	OpenAIAPIKey string
}

func Load() *Config {
	return &Config{
		Port: withDefault(env("PORT"), "8080"),

		AdminPassword: env("APP_ADMIN_PASSWORD"),
		CookieSecret:  env("APP_COOKIE_SECRET"),

		DatabaseURL: env("DATABASE_URL"),

		TwilioAccountSID:    env("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     env("TWILIO_AUTH_TOKEN"),
		TwilioFromPhone:     env("TWILIO_FROM_PHONE"),
		TwilioWebhookSecret: env("TWILIO_WEBHOOK_SECRET"),

		AppBaseURL: env("APP_BASE_URL"),

		AgentSMSTo:   env("AGENT_SMS_TO"),
		AgentEmailTo: env("AGENT_EMAIL_TO"),

		SendLeadConfirmationSMS: boolEnv("SEND_LEAD_CONFIRMATION_SMS", false),

		MailHost: env("MAIL_HOST"),
		MailPort: intEnv("MAIL_PORT", 587),
		MailUser: env("MAIL_USER"),
		MailPass: env("MAIL_PASS"),
		MailFrom: env("MAIL_FROM"),

		OpenAIAPIKey: env("OPENAI_API_KEY"),
	}
}

// StatusCallbackURL builds the Twilio delivery-status callback. Twilio only
// accepts a public HTTPS URL, so localhost/dev setups get no callback at all.
func (c *Config) StatusCallbackURL() string {
	if !IsPublicHTTPSBaseURL(c.AppBaseURL) || c.TwilioWebhookSecret == "" {
		return ""
	}
	return strings.TrimSuffix(c.AppBaseURL, "/") +
		"/api/webhooks/twilio/message-status?secret=" + url.QueryEscape(c.TwilioWebhookSecret)
}

func IsPublicHTTPSBaseURL(baseURL string) bool {
	u := strings.TrimSpace(baseURL)
	if !strings.HasPrefix(u, "https://") {
		return false
	}
	if strings.Contains(u, "localhost") || strings.Contains(u, "127.0.0.1") {
		return false
	}
	return true
}

func env(name string) string {
	return strings.TrimSpace(os.Getenv(name))
}

func withDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func boolEnv(name string, fallback bool) bool {
	v := strings.ToLower(env(name))
	if v == "" {
		return fallback
	}
	return v == "1" || v == "true" || v == "yes"
}

func intEnv(name string, fallback int) int {
	v := env(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
