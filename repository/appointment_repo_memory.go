package repository

import (
	"strings"
	"sync"
	"time"

	"serenespa/models"
)

type MemoryAppointmentRepo struct {
	mu    sync.Mutex
	ids   idGen
	appts []*models.Appointment
}

func NewMemoryAppointmentRepo() *MemoryAppointmentRepo {
	return &MemoryAppointmentRepo{}
}

func (r *MemoryAppointmentRepo) CreateAppointment(appt *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	appt.Email = strings.ToLower(appt.Email)
	appt.ID = r.ids.next()
	appt.CreatedAt = time.Now().UTC()
	r.appts = append(r.appts, appt)
	return nil
}

// GetAppointmentByID fetches an appointment by id, nil if not found
func (r *MemoryAppointmentRepo) GetAppointmentByID(id int64) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, a := range r.appts {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *MemoryAppointmentRepo) CountAppointments() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.appts)
}

// RecentAppointments returns up to n of the latest appointments, newest first.
func (r *MemoryAppointmentRepo) RecentAppointments(n int) []*models.Appointment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*models.Appointment, 0, n)
	for i := len(r.appts) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.appts[i])
	}
	return out
}
