package account

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Tzuyuchae/ansonzaneproject/internal/domain"
)

/*
Fakes for ports
*/

type fakeAccountRepo struct {
	mu sync.Mutex

	byID    map[string]domain.Account
	byEmail map[string]domain.Account

	// injected errors (if set, method returns error)
	createErr  error
	getErr     error
	consumeErr error
	updateErr  error
	deleteErr  error

	deleted []string
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:    map[string]domain.Account{},
		byEmail: map[string]domain.Account{},
	}
}

func (f *fakeAccountRepo) put(a domain.Account) {
	f.byID[a.AccountID] = a
	f.byEmail[strings.ToLower(a.Email)] = a
}

func (f *fakeAccountRepo) Create(ctx context.Context, a domain.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[strings.ToLower(a.Email)]; ok {
		return domain.ErrDuplicateEmail()
	}
	if _, ok := f.byID[a.AccountID]; ok {
		return domain.ErrDuplicateAccountID()
	}
	f.put(a)
	return nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Account{}, f.getErr
	}
	a, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (f *fakeAccountRepo) GetByAccountID(ctx context.Context, accountID string) (domain.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.getErr != nil {
		return domain.Account{}, f.getErr
	}
	a, ok := f.byID[accountID]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound()
	}
	return a, nil
}

func (f *fakeAccountRepo) ConsumeVerification(ctx context.Context, accountID, code string, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.consumeErr != nil {
		return f.consumeErr
	}
	a, ok := f.byID[accountID]
	if !ok {
		return domain.ErrAccountNotFound()
	}
	if a.VerificationCode == nil || a.VerificationExpiry == nil {
		return domain.ErrCodeMismatch()
	}
	if !now.Before(*a.VerificationExpiry) {
		return domain.ErrCodeExpired()
	}
	if *a.VerificationCode != code {
		return domain.ErrCodeMismatch()
	}
	a.IsVerified = true
	a.VerificationCode = nil
	a.VerificationExpiry = nil
	f.put(a)
	return nil
}

func (f *fakeAccountRepo) UpdateVerification(ctx context.Context, accountID, code string, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.updateErr != nil {
		return f.updateErr
	}
	a, ok := f.byID[accountID]
	if !ok {
		return domain.ErrAccountNotFound()
	}
	if a.IsVerified {
		return domain.ErrAlreadyVerified()
	}
	a.VerificationCode = &code
	a.VerificationExpiry = &expiry
	f.put(a)
	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, accountID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.deleteErr != nil {
		return f.deleteErr
	}
	if a, ok := f.byID[accountID]; ok {
		delete(f.byEmail, strings.ToLower(a.Email))
		delete(f.byID, accountID)
	}
	f.deleted = append(f.deleted, accountID)
	return nil
}

type fakeHasher struct {
	hashFn    func(pw string) (string, error)
	compareFn func(hash, pw string) error
}

func (f *fakeHasher) Hash(pw string) (string, error) {
	if f.hashFn != nil {
		return f.hashFn(pw)
	}
	return "hash:" + pw, nil
}

func (f *fakeHasher) Compare(hash, pw string) error {
	if f.compareFn != nil {
		return f.compareFn(hash, pw)
	}
	if hash != "hash:"+pw {
		return errors.New("mismatch")
	}
	return nil
}

type fakeCodes struct {
	mu     sync.Mutex
	code   string
	expiry time.Time
	err    error
	seq    int
}

func (f *fakeCodes) Generate() (string, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.err != nil {
		return "", time.Time{}, f.err
	}
	f.seq++
	return f.code, f.expiry, nil
}

type sentMail struct {
	to, subject, body string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeNotifier) Send(ctx context.Context, to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return f.err
}

/*
Harness
*/

func newSvcForTest(t *testing.T) (*Service, *fakeAccountRepo, *fakeHasher, *fakeCodes, *fakeNotifier) {
	t.Helper()

	repo := newFakeAccountRepo()
	hasher := &fakeHasher{}
	codes := &fakeCodes{code: "042137", expiry: time.Now().Add(2 * time.Hour)}
	notifier := &fakeNotifier{}

	svc := NewService(repo, hasher, codes, notifier, Config{NotifyTimeout: time.Second})
	return svc, repo, hasher, codes, notifier
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected domain error %q, got nil", code)
	}
	var de *domain.Error
	if !errors.As(err, &de) {
		t.Fatalf("expected *domain.Error, got %T: %v", err, err)
	}
	if de.Code != code {
		t.Fatalf("expected code %q, got %q (%v)", code, de.Code, err)
	}
}
