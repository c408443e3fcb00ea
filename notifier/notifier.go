package notifier

import (
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Message is one outbound email.
type Message struct {
	To      []string
	Subject string
	HTML    string
}

type Notifier interface {
	Send(m Message) error
}

// LogNotifier stands in when SMTP is not configured. It only logs what
// would have been sent.
type LogNotifier struct{}

func (LogNotifier) Send(m Message) error {
	log.Printf("email not configured, skipping %q to %v", m.Subject, m.To)
	return nil
}

// SMTPNotifier sends HTML mail through a plain SMTP account.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPNotifier(host string, port int, user, password, from string) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

func (n *SMTPNotifier) Send(m Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", m.To...)
	msg.SetHeader("Subject", m.Subject)
	msg.SetBody("text/html", m.HTML)
	return n.dialer.DialAndSend(msg)
}
