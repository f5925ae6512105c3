// Package mailer sends transactional mail over SMTP. Failures are the
// caller's problem to log; nothing here retries.
package mailer

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailerFromEnv returns nil (not an error) when SMTP is unconfigured so
// callers can treat mail as optional.
func NewMailerFromEnv() (*Mailer, error) {
	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		return nil, nil
	}
	port, err := strconv.Atoi(strings.TrimSpace(os.Getenv("SMTP_PORT")))
	if err != nil || port <= 0 {
		port = 587
	}
	user := os.Getenv("SMTP_USER")
	pass := os.Getenv("SMTP_PASSWORD")
	from := strings.TrimSpace(os.Getenv("SMTP_FROM"))
	if from == "" {
		return nil, errors.New("SMTP_FROM is required when SMTP_HOST is set")
	}

	return &Mailer{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   from,
	}, nil
}

func (m *Mailer) Send(to, subject, htmlBody string) error {
	if m == nil {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}

// SendRegistrationConfirmed mails a confirmed registrant.
func (m *Mailer) SendRegistrationConfirmed(to, name, eventTitle string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your spot for <strong>%s</strong> is confirmed. See you there!</p>",
		name, eventTitle,
	)
	return m.Send(to, "Registration confirmed: "+eventTitle, body)
}

// SendRegistrationWaitlisted mails a waitlisted registrant.
func (m *Mailer) SendRegistrationWaitlisted(to, name, eventTitle string) error {
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p><strong>%s</strong> is currently full, so you are on the waitlist. We will reach out if a spot opens up.</p>",
		name, eventTitle,
	)
	return m.Send(to, "You are on the waitlist: "+eventTitle, body)
}
