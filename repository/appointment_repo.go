package repository

import "serenespa/models"

// AppointmentRepository defines the interface for appointment operations
type AppointmentRepository interface {
	CreateAppointment(appt *models.Appointment) error
	GetAppointmentByID(id int64) (*models.Appointment, error)
	CountAppointments() int
	RecentAppointments(n int) []*models.Appointment
}
