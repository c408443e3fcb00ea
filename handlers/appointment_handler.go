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

type AppointmentHandler struct {
	Repo       repository.AppointmentRepository
	Mailer     *notifier.Dispatcher
	AdminEmail string
}

// CreateAppointment handler
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var appt models.Appointment
	if err := json.NewDecoder(r.Body).Decode(&appt); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	if appt.FirstName == "" || appt.LastName == "" || appt.Email == "" ||
		appt.Phone == "" || appt.Service == "" || appt.Date == "" || appt.Time == "" {
		writeError(w, http.StatusBadRequest, "all fields except message are required")
		return
	}

	appt.Email = utils.NormalizeEmail(appt.Email)
	if !utils.IsValidEmail(appt.Email) {
		writeError(w, http.StatusBadRequest, "invalid email format")
		return
	}

	if err := h.Repo.CreateAppointment(&appt); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save appointment")
		return
	}

	h.notify(&appt)

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Appointment booked successfully",
	})
}

// notify queues the confirmation and the admin alert. Delivery is
// best-effort; the booking above is already stored either way.
func (h *AppointmentHandler) notify(appt *models.Appointment) {
	if msg, err := notifier.BookingConfirmation(appt); err == nil {
		h.Mailer.Dispatch(msg)
	} else {
		log.Printf("booking confirmation template: %v", err)
	}
	if h.AdminEmail == "" {
		return
	}
	if msg, err := notifier.BookingAlert(appt, h.AdminEmail); err == nil {
		h.Mailer.Dispatch(msg)
	} else {
		log.Printf("booking alert template: %v", err)
	}
}
