package models

// BusinessInfo is the letterhead block rendered on generated PDFs.
type BusinessInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

type AppointmentPDFData struct {
	Business    BusinessInfo
	Appointment *Appointment
	Date        string // formatted booking date
	BookedOn    string // formatted created_at
	Reference   string
}
