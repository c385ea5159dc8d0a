package mail

import "gopkg.in/gomail.v2"

type ContactEmailData struct {
	MessageID   string
	Name        string
	Email       string
	Phone       string
	Message     string
	SubmittedAt string
}

// Dialer is the part of *gomail.Dialer the sender needs.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailSender struct {
	From   string
	Inbox  string
	dialer Dialer
}
