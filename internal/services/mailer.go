package services

import (
	"crypto/tls"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"

	"github.com/coachdesk/coachdesk-backend/internal/config"
)

// Mailer delivers password-reset mail over SMTPS. With no SMTP configuration
// it logs the link instead, which is the development fallback.
type Mailer struct {
	cfg *config.Config
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{cfg: cfg}
}

// SendReset never fails the caller: reset requests succeed outwardly no
// matter what happens here, so delivery errors only get logged.
func (m *Mailer) SendReset(to, resetURL string) {
	if m.cfg.SMTPHost == "" || m.cfg.SMTPPort == "" || m.cfg.SMTPUser == "" || m.cfg.SMTPPass == "" {
		slog.Info("password reset link (SMTP not configured)", "email", to, "url", resetURL)
		return
	}
	if err := m.send(to, resetURL); err != nil {
		slog.Error("failed to send reset email", "email", to, "error", err)
	}
}

func (m *Mailer) send(to, resetURL string) error {
	from := m.cfg.SMTPFrom
	if from == "" {
		from = m.cfg.SMTPUser
	}

	addr := net.JoinHostPort(m.cfg.SMTPHost, m.cfg.SMTPPort)
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: m.cfg.SMTPHost})
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.SMTPHost)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.cfg.SMTPUser, m.cfg.SMTPPass, m.cfg.SMTPHost)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("smtp auth: %w", err)
	}
	if err := client.Mail(from); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	msg := "From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Password reset\r\n" +
		"\r\n" +
		"Click to reset your password:\r\n\r\n" +
		resetURL + "\r\n\r\n" +
		"This link expires in 30 minutes.\r\n"
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	return w.Close()
}
