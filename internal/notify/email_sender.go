package notify

import (
	"time"

	"github.com/sirupsen/logrus"
	gomail "gopkg.in/mail.v2"
)

// EmailConfig holds SMTP configuration for sending emails.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

// Dialer delivers composed messages. *gomail.Dialer satisfies it.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// EmailSender delivers messages via SMTP.
type EmailSender struct {
	cfg    EmailConfig
	dialer Dialer
	log    logrus.FieldLogger
}

func NewEmailSender(cfg EmailConfig, log logrus.FieldLogger) *EmailSender {
	d := gomail.NewDialer(cfg.SMTPServer, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	d.Timeout = 10 * time.Second
	return newEmailSender(cfg, d, log)
}

func newEmailSender(cfg EmailConfig, d Dialer, log logrus.FieldLogger) *EmailSender {
	return &EmailSender{cfg: cfg, dialer: d, log: log}
}

// Send delivers an email with HTML body and plain text fallback. It is a
// no-op when email is disabled.
func (s *EmailSender) Send(msg *RenderedMessage) error {
	if !s.cfg.Enabled {
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.FromEmail)
	m.SetHeader("To", s.cfg.ToEmail)
	m.SetHeader("Subject", msg.Subject)

	if msg.HTML != "" && msg.Text != "" {
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	} else if msg.HTML != "" {
		m.SetBody("text/html", msg.HTML)
	} else {
		m.SetBody("text/plain", msg.Text)
	}

	log := s.log.WithFields(logrus.Fields{"to": s.cfg.ToEmail, "subject": msg.Subject})
	if err := s.dialer.DialAndSend(m); err != nil {
		log.WithError(err).Error("failed to send email")
		return err
	}

	log.Info("email sent")
	return nil
}
