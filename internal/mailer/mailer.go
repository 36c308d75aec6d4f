// Package mailer delivers account lifecycle emails over SMTP and
// provides an asynchronous dispatcher so request handling never blocks
// on mail delivery.
package mailer

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/elisee/account-service/internal/config"
)

// Email is a single outbound message.
type Email struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends a single email synchronously.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// SMTPMailer delivers email through an SMTP relay using go-mail.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer builds an SMTP mailer from the mail configuration.
func NewSMTPMailer(cfg config.Mail) (*SMTPMailer, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTimeout(cfg.SendTimeout),
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("error creating SMTP client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, email Email) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("error setting sender address: %w", err)
	}
	if err := msg.To(email.To); err != nil {
		return fmt.Errorf("error setting recipient address: %w", err)
	}
	msg.Subject(email.Subject)
	msg.SetBodyString(mail.TypeTextHTML, email.HTML)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("error sending email to %s: %w", email.To, err)
	}

	return nil
}
