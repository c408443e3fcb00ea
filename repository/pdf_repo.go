package repository

import (
	"serenespa/models"
)

// PDFRepository provides methods to fetch data for PDF generation
type PDFRepository struct {
	AppointmentRepo AppointmentRepository
}

// NewPDFRepository initializes a PDF repository
func NewPDFRepository(apptRepo AppointmentRepository) *PDFRepository {
	return &PDFRepository{AppointmentRepo: apptRepo}
}

// GetAppointmentForPDF fetches a single appointment by ID for PDF
func (r *PDFRepository) GetAppointmentForPDF(id int64) (*models.Appointment, error) {
	return r.AppointmentRepo.GetAppointmentByID(id)
}
