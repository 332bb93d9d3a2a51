// Package mail delivers outgoing email through SendGrid, or logs it when no
// API key is configured.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

// Message is one outgoing email to a single recipient.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Sender delivers a single message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Config holds sender settings.
type Config struct {
	APIKey    string
	Host      string
	FromName  string
	FromEmail string
}

// SendGrid sends mail through the SendGrid v3 API.
type SendGrid struct {
	log        *slog.Logger
	key        string
	host       string
	from       *sgmail.Email
	subjPrefix string
}

// NewSendGrid creates a SendGrid mailer.
func NewSendGrid(log *slog.Logger, cfg Config) *SendGrid {
	host := strings.TrimRight(strings.TrimSpace(cfg.Host), "/")
	if host == "" {
		host = defaultHost
	}
	return &SendGrid{
		log:        log.With("mailer", "sendgrid"),
		key:        cfg.APIKey,
		host:       host,
		from:       sgmail.NewEmail(cfg.FromName, cfg.FromEmail),
		subjPrefix: "[" + cfg.FromName + "] ",
	}
}

func (s *SendGrid) prepare(msg Message) *sgmail.SGMailV3 {
	p := sgmail.NewPersonalization()
	p.Subject = s.subjPrefix + msg.Subject
	p.AddTos(sgmail.NewEmail("", msg.To))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return m
}

// Send delivers msg. Non-2xx responses are returned as errors.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	req := sendgrid.GetRequest(s.key, endpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(s.prepare(msg))

	res, err := sendgrid.API(req)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: status %d: %s", res.StatusCode, res.Body)
	}

	s.log.InfoContext(ctx, "mail sent",
		slog.String("to", msg.To),
		slog.Int("status", res.StatusCode),
	)
	return nil
}

// Log writes mail to the logger instead of sending it.
type Log struct {
	log *slog.Logger
}

func NewLog(log *slog.Logger) *Log {
	return &Log{log: log.With("mailer", "log")}
}

func (l *Log) Send(ctx context.Context, msg Message) error {
	l.log.InfoContext(ctx, "mail not sent, no provider configured",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)
	return nil
}
