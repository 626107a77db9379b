// Copyright 2025 Oliver Andrich
// Licensed under the EUPL-1.2

// Package email is the notification gateway: templated transactional mail
// sent fire-and-forget over SMTP.
package email

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/wneessen/go-mail"

	"github.com/fashionshop/api/internal/config"
)

// Service sends transactional email. Every public method returns immediately
// and delivers in the background; failures are logged and never reported to
// the caller.
type Service struct {
	cfg         *config.SMTPConfig
	frontendURL string

	// send is swapped out in tests.
	send func(to, subject, htmlBody string) error
}

// NewService creates a new email service. frontendURL is the base for links
// embedded in mail (password reset).
func NewService(cfg *config.SMTPConfig, frontendURL string) (*Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}

	s := &Service{
		cfg:         cfg,
		frontendURL: strings.TrimSuffix(frontendURL, "/"),
	}
	s.send = s.sendSMTP
	return s, nil
}

// SendVerificationOTP mails the signup verification code.
func (s *Service) SendVerificationOTP(to, otp string) {
	body := fmt.Sprintf(
		`<h1>Verify your email</h1><p>Enter this code to verify your account:</p><h2>%s</h2>`, otp)
	s.dispatch(to, "Verify your email account", body)
}

// SendPasswordResetLink mails the reset link with the raw token and user id
// embedded in the URL.
func (s *Service) SendPasswordResetLink(to, userID, resetToken string) {
	link := fmt.Sprintf("%s/reset-password?token=%s&id=%s", s.frontendURL, resetToken, userID)
	body := fmt.Sprintf(
		`<h1>Password Reset</h1><p>Click the link below to reset your password:</p><p><a href="%s">%s</a></p>`, link, link)
	s.dispatch(to, "Password Reset", body)
}

// SendPasswordResetConfirmation mails the reset-success notice.
func (s *Service) SendPasswordResetConfirmation(to string) {
	s.dispatch(to, "Password Reset Successfully",
		`<h1>Password Reset Successfully</h1><p>You can now log in with your new password.</p>`)
}

// SendEmailVerifiedConfirmation mails the verification-success notice.
func (s *Service) SendEmailVerifiedConfirmation(to string) {
	s.dispatch(to, "Verify your email account success",
		`<h1>Email verified</h1><p>Thanks for verifying your email. Happy shopping!</p>`)
}

// dispatch delivers in the background. Fire-and-forget: the triggering
// request has already succeeded by the time a failure could surface.
func (s *Service) dispatch(to, subject, body string) {
	go func() {
		if err := s.send(to, subject, body); err != nil {
			slog.Error("email_send_failed", "to", to, "subject", subject, "error", err)
		}
	}()
}

// sendSMTP sends a single message via SMTP using go-mail.
func (s *Service) sendSMTP(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// Use implicit TLS (SSL) for port 465, STARTTLS for others
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}
