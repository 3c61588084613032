package mailer

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog"

	"bookstore/internal/config"
)

// Mailer delivers one-time login codes.
type Mailer interface {
	SendOTP(to, code string) error
}

// New returns an SMTP-backed mailer when credentials are configured and a
// log-only mailer otherwise, so development setups work without a mail
// account.
func New(cfg *config.Config, logger zerolog.Logger) Mailer {
	if cfg.SMTPHost == "" || cfg.SMTPUser == "" {
		logger.Warn().Msg("SMTP not configured, one-time codes will only be logged")
		return &logMailer{logger: logger}
	}
	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.SMTPHost, cfg.SMTPPort),
		auth: smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost),
		from: cfg.MailFrom,
		user: cfg.SMTPUser,
	}
}

type smtpMailer struct {
	addr string
	auth smtp.Auth
	from string
	user string
}

func (m *smtpMailer) SendOTP(to, code string) error {
	msg := []byte("From: " + m.from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Your OTP Code\r\n" +
		"\r\n" +
		"Your OTP code is: " + code + ". It will expire in 10 minutes.\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.user, []string{to}, msg); err != nil {
		return fmt.Errorf("send otp mail: %w", err)
	}
	return nil
}

type logMailer struct {
	logger zerolog.Logger
}

func (m *logMailer) SendOTP(to, code string) error {
	m.logger.Info().Str("to", to).Str("code", code).Msg("simulated OTP email")
	return nil
}
