package routes

import (
	"log"
	"net/http"

	"github.com/google/uuid"

	"serenespa/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRequestID tags each request so log lines can be correlated
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-ID", id)
		log.Printf("%s %s [%s]", r.Method, r.URL.Path, id)
		next.ServeHTTP(w, r)
	})
}

func method(m string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusMethodNotAllowed)
			_, _ = w.Write([]byte(`{"error":"method not allowed"}`))
			return
		}
		h(w, r)
	}
}

func SetupRoutes(
	authHandler *handlers.AuthHandler,
	apptHandler *handlers.AppointmentHandler,
	contactHandler *handlers.ContactHandler,
	newsletterHandler *handlers.NewsletterHandler,
	adminHandler *handlers.AdminHandler,
	pdfHandler *handlers.PDFHandler,
	healthHandler *handlers.HealthHandler,
	secret string,
) http.Handler {
	mux := http.NewServeMux()

	// Auth routes
	mux.Handle("/api/auth/login", method(http.MethodPost, handlers.RecoverWrapper(authHandler.Login)))
	mux.Handle("/api/auth/register", method(http.MethodPost, handlers.RecoverWrapper(authHandler.Register)))

	// Public form routes
	mux.Handle("/api/appointments", method(http.MethodPost, handlers.RecoverWrapper(apptHandler.CreateAppointment)))
	mux.Handle("/api/contact", method(http.MethodPost, handlers.RecoverWrapper(contactHandler.CreateMessage)))
	mux.Handle("/api/newsletter", method(http.MethodPost, handlers.RecoverWrapper(newsletterHandler.Subscribe)))

	// Admin routes behind bearer auth
	mux.Handle("/api/admin/stats", method(http.MethodGet,
		handlers.RecoverWrapper(handlers.RequireAuth(secret, adminHandler.Stats))))
	mux.Handle("/api/admin/appointments/pdf", method(http.MethodGet,
		handlers.RecoverWrapper(handlers.RequireAuth(secret, pdfHandler.AppointmentPDF))))

	mux.Handle("/api/health", method(http.MethodGet, handlers.RecoverWrapper(healthHandler.Health)))

	// Everything else is a JSON 404
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"route not found"}`))
	})

	return withCORS(withRequestID(mux))
}
