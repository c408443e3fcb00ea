package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"serenespa/auth"
	"serenespa/config"
	"serenespa/handlers"
	"serenespa/models"
	"serenespa/notifier"
	"serenespa/repository"
	"serenespa/routes"
	"serenespa/utils"
)

func main() {
	// Load config from .env or environment
	cfg := config.LoadConfig()

	// In-memory stores; everything is lost on restart by design
	userRepo := repository.NewMemoryUserRepo()
	apptRepo := repository.NewMemoryAppointmentRepo()
	contactRepo := repository.NewMemoryContactRepo()
	newsletterRepo := repository.NewMemoryNewsletterRepo()

	seedUser(userRepo, cfg.SeedEmail, cfg.SeedPassword)

	// Notifier: real SMTP when configured, log-only otherwise
	var sender notifier.Notifier = notifier.LogNotifier{}
	if cfg.EmailConfigured() {
		sender = notifier.NewSMTPNotifier(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
		log.Printf("email notifications enabled via %s", cfg.SMTPHost)
	} else {
		log.Println("email not configured, notifications will be logged only")
	}
	mailer := notifier.NewDispatcher(sender)

	uploader, err := utils.NewR2Uploader()
	if err != nil {
		log.Printf("R2 disabled: %v", err)
	}

	business := models.BusinessInfo{
		Name:    cfg.BusinessName,
		Address: cfg.BusinessAddress,
		Phone:   cfg.BusinessPhone,
		Email:   cfg.AdminEmail,
	}

	// Handlers
	authHandler := &handlers.AuthHandler{Repo: userRepo, Secret: cfg.JWTSecret}
	apptHandler := &handlers.AppointmentHandler{Repo: apptRepo, Mailer: mailer, AdminEmail: cfg.AdminEmail}
	contactHandler := &handlers.ContactHandler{Repo: contactRepo, Mailer: mailer, AdminEmail: cfg.AdminEmail}
	newsletterHandler := &handlers.NewsletterHandler{Repo: newsletterRepo}
	adminHandler := &handlers.AdminHandler{
		Users:        userRepo,
		Appointments: apptRepo,
		Contacts:     contactRepo,
		Newsletter:   newsletterRepo,
		Mailer:       mailer,
	}
	pdfHandler := &handlers.PDFHandler{
		Repo:     repository.NewPDFRepository(apptRepo),
		SavePath: cfg.PDFSavePath,
		Business: business,
		Uploader: uploader,
	}
	healthHandler := &handlers.HealthHandler{Started: time.Now()}

	handler := routes.SetupRoutes(
		authHandler, apptHandler, contactHandler, newsletterHandler,
		adminHandler, pdfHandler, healthHandler, cfg.JWTSecret,
	)

	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		panic(err)
	}
}

// seedUser creates the one account that exists on a fresh process, so the
// admin endpoints are reachable before anyone registers.
func seedUser(repo repository.UserRepository, email, password string) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}
	if err := repo.CreateUser(&models.User{Email: email, PasswordHash: hash}); err != nil {
		log.Fatalf("seed user: %v", err)
	}
	log.Printf("seeded account %s", email)
}
