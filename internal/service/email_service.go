package service

import (
	"bytes"
	"crypto/tls"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"

	"github.com/zephyra-admin/internal/config"
	"github.com/zephyra-admin/internal/i18n"
)

var (
	ErrEmailNotConfigured     = errors.New("email service not configured")
	ErrEmailRecipientRejected = errors.New("email recipient rejected")
)

// EmailService 邮件发送服务
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService 创建邮件服务
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// PasswordResetEmail 找回密码邮件内容
type PasswordResetEmail struct {
	To       string
	Name     string
	ResetURL string
	Locale   string
}

// SendPasswordReset 发送找回密码邮件
func (s *EmailService) SendPasswordReset(input PasswordResetEmail) error {
	subject, body := buildPasswordResetContent(input)
	return s.sendTextEmail(input.To, subject, body)
}

func buildPasswordResetContent(input PasswordResetEmail) (string, string) {
	locale := i18n.Normalize(input.Locale)
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = input.To
	}
	subject := i18n.T(locale, "email.password_reset.subject")
	body := i18n.Sprintf(locale, "email.password_reset.body", name, input.ResetURL)
	return subject, body
}

func (s *EmailService) sendTextEmail(toEmail, subject, body string) error {
	if s.cfg == nil || !s.cfg.Enabled {
		return ErrEmailDisabled
	}
	if s.cfg.Host == "" || s.cfg.Port == 0 || s.cfg.From == "" {
		return ErrEmailNotConfigured
	}
	if _, err := mail.ParseAddress(toEmail); err != nil {
		return ErrInvalidEmail
	}

	msg := []byte(buildEmailMessage(buildFromAddress(s.cfg.From, s.cfg.FromName), toEmail, subject, body))
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" || s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var client *smtp.Client
	var err error
	switch {
	case s.cfg.UseSSL:
		client, err = dialSMTPOverTLS(addr, s.cfg.Host)
	default:
		client, err = smtp.Dial(addr)
		if err == nil && s.cfg.UseTLS {
			if tlsErr := client.StartTLS(&tls.Config{ServerName: s.cfg.Host}); tlsErr != nil {
				_ = client.Close()
				return tlsErr
			}
		}
	}
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
	}
	return normalizeEmailSendError(sendSMTPData(client, s.cfg.From, []string{toEmail}, msg))
}

func dialSMTPOverTLS(addr, host string) (*smtp.Client, error) {
	conn, err := tls.Dial("tcp", addr, &tls.Config{ServerName: host})
	if err != nil {
		return nil, err
	}
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		_ = conn.Close()
		return nil, err
	}
	return client, nil
}

func buildFromAddress(from, name string) string {
	if strings.TrimSpace(name) == "" {
		return from
	}
	encoded := mime.QEncoding.Encode("UTF-8", name)
	return (&mail.Address{Name: encoded, Address: from}).String()
}

func buildEmailMessage(from, to, subject, body string) string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("UTF-8", subject))
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.String()
}

func sendSMTPData(client *smtp.Client, from string, to []string, msg []byte) error {
	if err := client.Mail(from); err != nil {
		return err
	}
	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}

func normalizeEmailSendError(err error) error {
	if err == nil {
		return nil
	}
	message := strings.ToLower(err.Error())
	for _, keyword := range []string{"no such user", "user unknown", "recipient address rejected", "mailbox unavailable"} {
		if strings.Contains(message, keyword) {
			return fmt.Errorf("%w: %v", ErrEmailRecipientRejected, err)
		}
	}
	return err
}
