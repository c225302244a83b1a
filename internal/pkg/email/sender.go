package email

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp sender is not configured")

// Sender delivers transactional email. The OTP service treats delivery
// failures as retryable by the client, so implementations should return
// errors rather than swallow them.
type Sender interface {
	SendOtpCode(to, code string) error
	Validate() error
}

type Config struct {
	SMTPHost  string
	SMTPPort  int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type GomailSender struct {
	config Config
}

func NewGomailSender(config Config) *GomailSender {
	return &GomailSender{config: config}
}

func (s *GomailSender) Validate() error {
	if s.config.SMTPHost == "" || s.config.SMTPPort == 0 || s.config.FromEmail == "" {
		return ErrNotConfigured
	}
	return nil
}

func (s *GomailSender) SendOtpCode(to, code string) error {
	if err := s.Validate(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromEmail, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Your verification code")
	m.SetBody("text/html", fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>.</p><p>It expires in 10 minutes.</p>",
		code,
	))

	d := gomail.NewDialer(
		s.config.SMTPHost,
		s.config.SMTPPort,
		s.config.Username,
		s.config.Password,
	)

	return d.DialAndSend(m)
}
