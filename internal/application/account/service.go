package account

import (
	"context"
	"fmt"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/logger"
)

const defaultNotifyTimeout = 5 * time.Second

// Service owns the account flows: registration, login, verification and
// deletion. All dependencies are injected so tests can substitute fakes.
type Service struct {
	accounts AccountRepo
	hasher   PasswordHasher
	codes    CodeGenerator
	notifier Notifier

	notifyTimeout time.Duration
	now           func() time.Time
}

type Config struct {
	// NotifyTimeout bounds the best-effort verification email send so it can
	// never block the registration response indefinitely.
	NotifyTimeout time.Duration
}

func NewService(accounts AccountRepo, hasher PasswordHasher, codes CodeGenerator, notifier Notifier, cfg Config) *Service {
	timeout := cfg.NotifyTimeout
	if timeout <= 0 {
		timeout = defaultNotifyTimeout
	}
	return &Service{
		accounts:      accounts,
		hasher:        hasher,
		codes:         codes,
		notifier:      notifier,
		notifyTimeout: timeout,
		now:           time.Now,
	}
}

// WithClock pins the service clock, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// notifyCode delivers the verification code on a detached, bounded context.
// The account row is already committed by the time this runs, so a delivery
// failure is logged as a warning and never rolls back or fails the request;
// the returned code remains the fallback channel.
func (s *Service) notifyCode(ctx context.Context, email, code string) {
	nctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.notifyTimeout)
	defer cancel()

	subject := "Verify your account"
	body := fmt.Sprintf("Your verification code is %s. It expires in 2 hours.", code)
	if err := s.notifier.Send(nctx, email, subject, body); err != nil {
		lg := logger.WithCtx(ctx)
		lg.Warn().Err(err).Str("email", email).Msg("verification email not delivered")
	}
}
