package handlers

import (
	"net/http"

	"serenespa/notifier"
	"serenespa/repository"
)

type AdminHandler struct {
	Users        repository.UserRepository
	Appointments repository.AppointmentRepository
	Contacts     repository.ContactRepository
	Newsletter   repository.NewsletterRepository
	Mailer       *notifier.Dispatcher
}

const recentLimit = 5

// Stats handler, behind bearer auth
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	sent, failed := h.Mailer.Stats()

	writeJSON(w, http.StatusOK, map[string]any{
		"counts": map[string]int{
			"users":        h.Users.CountUsers(),
			"appointments": h.Appointments.CountAppointments(),
			"contacts":     h.Contacts.CountMessages(),
			"newsletter":   h.Newsletter.CountSubscriptions(),
		},
		"recentAppointments": h.Appointments.RecentAppointments(recentLimit),
		"recentContacts":     h.Contacts.RecentMessages(recentLimit),
		"notifications": map[string]int64{
			"sent":   sent,
			"failed": failed,
		},
	})
}
