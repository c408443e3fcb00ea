package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"serenespa/models"
	"serenespa/notifier"
	"serenespa/repository"
	"serenespa/utils"
)

type ContactHandler struct {
	Repo       repository.ContactRepository
	Mailer     *notifier.Dispatcher
	AdminEmail string
}

// CreateMessage handler
func (h *ContactHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		writeError(w, http.StatusBadRequest, "name, email, and message are required")
		return
	}

	msg.Email = utils.NormalizeEmail(msg.Email)
	if !utils.IsValidEmail(msg.Email) {
		writeError(w, http.StatusBadRequest, "invalid email format")
		return
	}

	if err := h.Repo.CreateMessage(&msg); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save message")
		return
	}

	if h.AdminEmail != "" {
		if alert, err := notifier.ContactAlert(&msg, h.AdminEmail); err == nil {
			h.Mailer.Dispatch(alert)
		} else {
			log.Printf("contact alert template: %v", err)
		}
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Message sent successfully",
	})
}
