package email

import (
	"context"

	"github.com/rs/zerolog"
)

// LogSender writes the message to the log instead of delivering it. It is
// the sender of record when no SMTP relay is configured, so registration
// keeps working in development without a mail account.
type LogSender struct {
	lg zerolog.Logger
}

func NewLogSender(lg zerolog.Logger) *LogSender {
	return &LogSender{
		lg: lg.With().Str("component", "log_sender").Logger(),
	}
}

func (s *LogSender) Send(ctx context.Context, toEmail, subject, body string) error {
	s.lg.Info().
		Str("to", toEmail).
		Str("subject", subject).
		Str("body", body).
		Msg("email delivery skipped, logging instead")
	return nil
}
