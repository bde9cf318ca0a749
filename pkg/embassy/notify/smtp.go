// Package notify delivers editor notifications over SMTP.
package notify

import (
	"context"
	"errors"
	"fmt"
	"net/smtp"
	"strings"
)

// Config options for the SMTP notifier
type Config struct {
	Host     string // SMTP server host
	Port     int    // SMTP server port (default: 587)
	Username string
	Password string
	From     string // Sender address
}

// Mailer implements embassy.Notifier over plain SMTP
type Mailer struct {
	addr string
	auth smtp.Auth
	from string
}

// New creates a new SMTP notifier
func New(config Config) (*Mailer, error) {
	if config.Host == "" {
		return nil, errors.New("smtp host is required")
	}
	if config.From == "" {
		return nil, errors.New("sender address is required")
	}

	if config.Port == 0 {
		config.Port = 587
	}

	var auth smtp.Auth
	if config.Username != "" {
		auth = smtp.PlainAuth("", config.Username, config.Password, config.Host)
	}

	return &Mailer{
		addr: fmt.Sprintf("%s:%d", config.Host, config.Port),
		auth: auth,
		from: config.From,
	}, nil
}

// Notify sends one plain-text message. The context is honored only up
// front; net/smtp does not support cancellation mid-send.
func (m *Mailer) Notify(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}

	return nil
}
