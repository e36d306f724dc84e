package email

import (
	"fmt"
	"net/smtp"
)

// Sender delivers plain text email over SMTP. A zero-value Sender (no host
// configured) is disabled and silently drops messages, so reminder email
// stays optional in local setups.
type Sender struct {
	From     string
	Password string
	Host     string
	Port     string
}

func NewSender(from, password, host, port string) *Sender {
	return &Sender{From: from, Password: password, Host: host, Port: port}
}

// Enabled reports whether SMTP delivery is configured.
func (s *Sender) Enabled() bool {
	return s != nil && s.Host != ""
}

// Send sends a plain text email using SMTP.
func (s *Sender) Send(to, subject, body string) error {
	if !s.Enabled() {
		return nil
	}

	auth := smtp.PlainAuth("", s.From, s.Password, s.Host)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	address := s.Host + ":" + s.Port

	if err := smtp.SendMail(address, auth, s.From, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
