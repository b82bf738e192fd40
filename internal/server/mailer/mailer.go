// Package mailer delivers HTML messages. The SMTP transport is used when a
// host is configured; otherwise messages are only logged.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/waterbill/internal/common"
	"github.com/dmitrijs2005/waterbill/internal/logging"
	"github.com/wneessen/go-mail"
)

// Transport sends one HTML message. Implementations do not retry.
type Transport interface {
	Send(ctx context.Context, to, subject, htmlBody string) error
}

// SMTPConfig holds the SMTP connection settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	TLS      bool
	Timeout  time.Duration
}

// SMTPTransport sends mail through an SMTP relay.
type SMTPTransport struct {
	cfg SMTPConfig
}

func NewSMTPTransport(cfg SMTPConfig) *SMTPTransport {
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &SMTPTransport{cfg: cfg}
}

func (t *SMTPTransport) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(t.cfg.Port),
		mail.WithTimeout(t.cfg.Timeout),
	}
	if t.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}
	if t.cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(t.cfg.Username),
			mail.WithPassword(t.cfg.Password),
		)
	}
	return opts
}

// Send delivers one message. Any failure is wrapped in
// common.ErrTransportFailure.
func (t *SMTPTransport) Send(ctx context.Context, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.FromFormat(t.cfg.FromName, t.cfg.From); err != nil {
		return fmt.Errorf("%w: sender: %v", common.ErrTransportFailure, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("%w: recipient: %v", common.ErrTransportFailure, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(t.cfg.Host, t.clientOptions()...)
	if err != nil {
		return fmt.Errorf("%w: client: %v", common.ErrTransportFailure, err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", common.ErrTransportFailure, err)
	}
	return nil
}

// LogTransport records messages in the log instead of sending them.
type LogTransport struct {
	log logging.Logger
}

func NewLogTransport(log logging.Logger) *LogTransport {
	return &LogTransport{log: log.With("module", "mailer")}
}

func (t *LogTransport) Send(ctx context.Context, to, subject, htmlBody string) error {
	t.log.Info(ctx, "mail not sent, smtp is not configured",
		"to", to, "subject", subject, "bytes", len(htmlBody))
	return nil
}
