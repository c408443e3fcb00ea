package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	JWTSecret string

	// SMTP settings; login mode drops to log-only when these are empty
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	// AdminEmail receives booking and contact notifications
	AdminEmail string

	// Seed account created at startup so the admin endpoints are reachable
	// on a fresh process
	SeedEmail    string
	SeedPassword string

	PDFSavePath string

	BusinessName    string
	BusinessAddress string
	BusinessPhone   string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		Port:            os.Getenv("PORT"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        envInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPassword:    os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		SeedEmail:       env("SEED_USER_EMAIL", "admin@serenespa.local"),
		SeedPassword:    env("SEED_USER_PASSWORD", "changeme123"),
		PDFSavePath:     env("PDF_SAVE_PATH", "./pdfs"),
		BusinessName:    env("BUSINESS_NAME", "Serene Spa & Wellness"),
		BusinessAddress: os.Getenv("BUSINESS_ADDRESS"),
		BusinessPhone:   os.Getenv("BUSINESS_PHONE"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if cfg.SMTPFrom == "" {
		cfg.SMTPFrom = cfg.SMTPUser
	}
	if cfg.AdminEmail == "" {
		cfg.AdminEmail = cfg.SMTPUser
	}
	return cfg
}

// EmailConfigured reports whether the process has enough SMTP settings to
// actually send mail.
func (c *Config) EmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUser != "" && c.SMTPPassword != ""
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("invalid integer for %s, using %d", key, fallback)
	}
	return fallback
}
