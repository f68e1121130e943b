package main

import (
	"database/sql"
	"errors"
	"html/template"
	"log"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Jarmey101/agentpipeline/internal/config"
	"github.com/Jarmey101/agentpipeline/internal/entity"
	"github.com/Jarmey101/agentpipeline/internal/infra/database"
	"github.com/Jarmey101/agentpipeline/internal/infra/http/handlers"
	appmiddleware "github.com/Jarmey101/agentpipeline/internal/infra/http/middleware"
	"github.com/Jarmey101/agentpipeline/internal/infra/integration/twilio"
	"github.com/Jarmey101/agentpipeline/internal/infra/mail"
	"github.com/Jarmey101/agentpipeline/internal/usecase"
)

func main() {
	godotenv.Load()
	cfg := config.Load()

	// The service stays up without a database; the lead and webhook paths
	// then answer with a NOT_CONFIGURED error instead of crashing.
	var leadRepo entity.LeadRepositoryInterface
	var notificationRepo entity.NotificationRepositoryInterface
	var eventRepo entity.WebhookEventRepositoryInterface

	db, err := openDB(cfg)
	if err != nil {
		log.Printf("⚠️ database unavailable, running without persistence: %v", err)
	}
	if db != nil {
		defer db.Close()
		leadRepo = database.NewLeadRepository(db)
		notificationRepo = database.NewNotificationRepository(db)
		eventRepo = database.NewWebhookEventRepository(db)
	}

	smsClient := twilio.NewClient(
		cfg.TwilioAccountSID,
		cfg.TwilioAuthToken,
		cfg.TwilioFromPhone,
		cfg.StatusCallbackURL(),
		"",
	)

	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)
	var emailService usecase.EmailService
	if mailSender.Configured() {
		emailService = mailSender
	}

	captureLeadUC := usecase.NewCaptureLeadUseCase(
		leadRepo, notificationRepo, smsClient, emailService,
		cfg.TwilioFromPhone,
		cfg.AgentSMSTo,
		cfg.AgentEmailTo,
		cfg.SendLeadConfirmationSMS,
	)

	templates := template.Must(template.ParseGlob(filepath.Join("templates", "*.html")))

	leadHandler := handlers.NewLeadHandler(captureLeadUC)
	authHandler := handlers.NewAuthHandler(cfg.AdminPassword, cfg.CookieSecret)
	webhookHandler := handlers.NewTwilioWebhookHandler(cfg.TwilioWebhookSecret, eventRepo, notificationRepo)
	aiHandler := handlers.NewAIHandler(cfg.OpenAIAPIKey)
	pagesHandler := handlers.NewPagesHandler(templates, leadRepo)
	healthHandler := handlers.NewHealthHandler(db, smsClient, mailSender)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(appmiddleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", pagesHandler.Index)
	r.Get("/auth", pagesHandler.Auth)
	r.Group(func(pr chi.Router) {
		pr.Use(appmiddleware.RequireAdmin(cfg.CookieSecret))
		pr.Get("/dashboard", pagesHandler.Dashboard)
	})

	r.Post("/api/leads", leadHandler.Capture)
	r.Post("/api/auth/login", authHandler.Login)
	r.Post("/api/auth/logout", authHandler.Logout)
	r.Post("/api/webhooks/twilio/message-status", webhookHandler.HandleMessageStatus)
	r.Post("/api/ai", aiHandler.Suggest)

	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	addr := ":" + cfg.Port
	log.Printf("🔥 agentpipeline listening on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg *config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}
	return database.NewDBConnection(cfg.DatabaseURL)
}
