package mail

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/aprilandbutter/storefront/internal/entity"
)

var contactTemplate = template.Must(template.New("contact").Parse(`<h2>New message from the contact form</h2>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>
{{end}}<p><strong>Received:</strong> {{.SubmittedAt}}</p>
<hr>
<p>{{.Message}}</p>
<p style="color:#999">ref {{.MessageID}}</p>
`))

func NewEmailSender(host string, port int, user, password, from, inbox string) *EmailSender {
	return NewEmailSenderWithDialer(gomail.NewDialer(host, port, user, password), from, inbox)
}

func NewEmailSenderWithDialer(d Dialer, from, inbox string) *EmailSender {
	return &EmailSender{
		From:   from,
		Inbox:  inbox,
		dialer: d,
	}
}

// SendContact mails the message to the bakery inbox with Reply-To set to the visitor.
func (s *EmailSender) SendContact(ctx context.Context, msg entity.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send contact email via SMTP: %w", err)
	}
	return nil
}

func (s *EmailSender) buildMessage(msg entity.ContactMessage) (*gomail.Message, error) {
	data := ContactEmailData{
		MessageID:   msg.ID,
		Name:        msg.Submission.Name,
		Email:       msg.Submission.Email,
		Phone:       msg.Submission.Phone,
		Message:     msg.Submission.Message,
		SubmittedAt: msg.SubmittedAt.Format(time.RFC1123),
	}

	var body bytes.Buffer
	if err := contactTemplate.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("render contact email: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.Inbox)
	m.SetHeader("Reply-To", msg.Submission.Email)
	m.SetHeader("Subject", fmt.Sprintf("Contact form: %s", msg.Submission.Name))
	m.SetBody("text/html", body.String())
	return m, nil
}
