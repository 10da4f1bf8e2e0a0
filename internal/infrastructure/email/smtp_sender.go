// Package email delivers verification codes. The SMTP sender speaks to a
// real relay; the log sender is the fallback when no relay is configured.
package email

import (
	"context"
	"html"
	"time"

	"github.com/rs/zerolog"
	"github.com/wneessen/go-mail"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

type SMTPSender struct {
	lg zerolog.Logger

	host     string
	port     int
	user     string
	pass     string
	from     string
	insecure bool

	timeout time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	Timeout  time.Duration
	Insecure bool
}

// Configured reports whether the config names a relay at all.
func (c SMTPConfig) Configured() bool {
	return c.Host != "" && c.From != ""
}

func NewSMTPSender(cfg SMTPConfig, lg zerolog.Logger) *SMTPSender {
	return &SMTPSender{
		lg:       lg.With().Str("component", "smtp_sender").Logger(),
		host:     cfg.Host,
		port:     cfg.Port,
		user:     cfg.Username,
		pass:     cfg.Password,
		from:     cfg.From,
		insecure: cfg.Insecure,
		timeout:  cfg.Timeout,
	}
}

func (s *SMTPSender) Send(ctx context.Context, toEmail, subject, body string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	m := mail.NewMsg()
	if err := m.From(s.from); err != nil {
		return domain.ErrNotifierUnavailable(err)
	}
	if err := m.To(toEmail); err != nil {
		return domain.ErrNotifierUnavailable(err)
	}
	m.Subject(subject)

	// Text fallback + HTML alternative
	m.SetBodyString(mail.TypeTextPlain, body)
	m.AddAlternativeString(mail.TypeTextHTML, renderBasicHTML(subject, body))

	tlsPolicy := mail.TLSMandatory
	if s.insecure {
		tlsPolicy = mail.TLSOpportunistic
	}

	opts := []mail.Option{
		mail.WithPort(s.port),
		mail.WithTLSPolicy(tlsPolicy),
	}
	if s.user != "" {
		opts = append(opts, mail.WithSMTPAuth(mail.SMTPAuthPlain), mail.WithUsername(s.user), mail.WithPassword(s.pass))
	}

	c, err := mail.NewClient(s.host, opts...)
	if err != nil {
		return domain.ErrNotifierUnavailable(err)
	}

	s.lg.Info().Str("host", s.host).Int("port", s.port).Str("to", toEmail).Str("subject", subject).Msg("attempting smtp send")
	if err := c.DialAndSendWithContext(ctx, m); err != nil {
		s.lg.Error().Err(err).Str("to", toEmail).Msg("smtp send failed")
		return domain.ErrNotifierUnavailable(err)
	}

	s.lg.Info().Str("to", toEmail).Msg("smtp send ok")
	return nil
}

func renderBasicHTML(title, body string) string {
	escTitle := html.EscapeString(title)
	escBody := html.EscapeString(body)

	// very simple inline HTML (works in Gmail)
	return `<!doctype html>
<html>
  <body style="font-family:Arial,Helvetica,sans-serif; line-height:1.4;">
    <h2>` + escTitle + `</h2>
    <p style="white-space:pre-line;">` + escBody + `</p>
  </body>
</html>`
}
