package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"serenespa/models"
	"serenespa/repository"
	"serenespa/utils"
)

type NewsletterHandler struct {
	Repo repository.NewsletterRepository
}

// Subscribe handler
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	email := utils.NormalizeEmail(body.Email)
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}
	if !utils.IsValidEmail(email) {
		writeError(w, http.StatusBadRequest, "invalid email format")
		return
	}

	sub := &models.NewsletterSubscription{Email: email}
	if err := h.Repo.Subscribe(sub); err != nil {
		if errors.Is(err, repository.ErrAlreadySubscribed) {
			writeError(w, http.StatusBadRequest, "email already subscribed")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to subscribe")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Subscribed to newsletter",
	})
}
