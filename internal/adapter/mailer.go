package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

// MailMessage is a plain-text email
type MailMessage struct {
	To      string
	Subject string
	Body    string
}

// Mailer defines an interface for sending emails to enable mocking
//
//go:generate mockgen -source=mailer.go -destination=../mocks/mailer.go -package=mocks -mock_names=Mailer=MockMailer
type Mailer interface {
	// Send delivers a single message
	Send(ctx context.Context, msg MailMessage) error
}

// SMTPConfig holds the SMTP relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// SMTPMailer implements Mailer over an SMTP relay using go-mail
type SMTPMailer struct {
	config SMTPConfig
	send   func(ctx context.Context, msg *mail.Msg) error
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(cfg SMTPConfig) Mailer {
	m := &SMTPMailer{config: cfg}
	m.send = m.dialAndSend
	return m
}

// Send delivers msg through the relay
func (m *SMTPMailer) Send(ctx context.Context, msg MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return errors.New("missing recipient")
	}

	built, err := m.buildMessage(msg)
	if err != nil {
		return err
	}

	if err := m.send(ctx, built); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildMessage converts msg into a go-mail message.
// Subjects are built from upstream coin names, so line breaks are folded into spaces before encoding.
func (m *SMTPMailer) buildMessage(msg MailMessage) (*mail.Msg, error) {
	built := mail.NewMsg()
	if err := built.From(m.config.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", m.config.From, err)
	}
	if err := built.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	built.Subject(singleLine(msg.Subject))
	built.SetDate()
	built.SetMessageID()
	built.SetBodyString(mail.TypeTextPlain, msg.Body)
	return built, nil
}

func (m *SMTPMailer) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(m.config.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if m.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.config.Username),
			mail.WithPassword(m.config.Password),
		)
	}

	client, err := mail.NewClient(m.config.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

// singleLine collapses every run of whitespace, line breaks included, into one space
func singleLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
