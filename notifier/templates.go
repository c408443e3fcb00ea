package notifier

import (
	"bytes"
	"fmt"
	"html/template"

	"serenespa/models"
)

var bookingTmpl = template.Must(template.New("booking").Parse(`
<h2>Appointment request received</h2>
<p>Hi {{.FirstName}},</p>
<p>Thanks for booking with us. Here is what we have:</p>
<ul>
  <li><b>Service:</b> {{.Service}}</li>
  <li><b>Date:</b> {{.Date}} at {{.Time}}</li>
  <li><b>Phone:</b> {{.Phone}}</li>
</ul>
{{if .Message}}<p><b>Your note:</b> {{.Message}}</p>{{end}}
<p>We will reach out if anything needs to change.</p>
`))

var bookingAlertTmpl = template.Must(template.New("bookingAlert").Parse(`
<h2>New appointment</h2>
<ul>
  <li><b>Client:</b> {{.FirstName}} {{.LastName}} ({{.Email}}, {{.Phone}})</li>
  <li><b>Service:</b> {{.Service}}</li>
  <li><b>When:</b> {{.Date}} at {{.Time}}</li>
</ul>
{{if .Message}}<p><b>Note:</b> {{.Message}}</p>{{end}}
`))

var contactAlertTmpl = template.Must(template.New("contactAlert").Parse(`
<h2>New contact message</h2>
<p><b>From:</b> {{.Name}} ({{.Email}})</p>
<p>{{.Message}}</p>
`))

// BookingConfirmation is the email sent back to the person who booked.
func BookingConfirmation(appt *models.Appointment) (Message, error) {
	var buf bytes.Buffer
	if err := bookingTmpl.Execute(&buf, appt); err != nil {
		return Message{}, err
	}
	return Message{
		To:      []string{appt.Email},
		Subject: fmt.Sprintf("Appointment request for %s", appt.Service),
		HTML:    buf.String(),
	}, nil
}

// BookingAlert goes to the admin address for every new appointment.
func BookingAlert(appt *models.Appointment, adminEmail string) (Message, error) {
	var buf bytes.Buffer
	if err := bookingAlertTmpl.Execute(&buf, appt); err != nil {
		return Message{}, err
	}
	return Message{
		To:      []string{adminEmail},
		Subject: fmt.Sprintf("New appointment: %s %s", appt.FirstName, appt.LastName),
		HTML:    buf.String(),
	}, nil
}

// ContactAlert goes to the admin address for every contact submission.
func ContactAlert(msg *models.ContactMessage, adminEmail string) (Message, error) {
	var buf bytes.Buffer
	if err := contactAlertTmpl.Execute(&buf, msg); err != nil {
		return Message{}, err
	}
	return Message{
		To:      []string{adminEmail},
		Subject: fmt.Sprintf("Contact form: %s", msg.Name),
		HTML:    buf.String(),
	}, nil
}
