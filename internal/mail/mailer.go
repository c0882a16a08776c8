// Package mail delivers one-time reset codes to users via an external relay.
package mail

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// Mailer dispatches a reset code to the given address.
type Mailer interface {
	SendOTP(ctx context.Context, to, code string, ttl time.Duration) error
}

// SMTPMailer sends mail through an authenticated SMTP relay.
type SMTPMailer struct {
	client *mail.Client
	from   string
}

// NewSMTPMailer constructs a mailer for the given relay.
func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(username),
		mail.WithPassword(password),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}
	return &SMTPMailer{client: client, from: from}, nil
}

// SendOTP delivers the reset code.
func (m *SMTPMailer) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("to: %w", err)
	}
	msg.Subject("Your OTP for Password Reset")
	msg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf("Your OTP is %s. It is valid for %d seconds.", code, int(ttl.Seconds())))

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// LogMailer writes codes to the log instead of sending mail. Development only.
type LogMailer struct {
	Log *zap.Logger
}

// SendOTP logs the code.
func (m *LogMailer) SendOTP(_ context.Context, to, code string, ttl time.Duration) error {
	m.Log.Info("password reset code issued",
		zap.String("to", to),
		zap.String("code", code),
		zap.Duration("ttl", ttl),
	)
	return nil
}
