package security

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_RoundTrip(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("Pw1!secret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "Pw1!secret" {
		t.Fatalf("hash must not equal the password")
	}
	if err := h.Compare(hash, "Pw1!secret"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "other"); err == nil {
		t.Fatalf("expected mismatch for wrong password")
	}
}

func TestBcryptHasher_SaltedOutputsDiffer(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	h1, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	h2, err := h.Hash("same-password")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if h1 == h2 {
		t.Fatalf("two hashes of the same password must differ (random salt)")
	}
}

func TestBcryptHasher_MalformedHashFailsClosed(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(bcrypt.MinCost)

	// A stored plaintext value must never compare equal, even to itself.
	if err := h.Compare("plaintext-password", "plaintext-password"); err == nil {
		t.Fatalf("malformed stored hash must fail comparison")
	}
}

func TestBcryptHasher_ZeroCostUsesDefault(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher(0)
	hash, err := h.Hash("pw")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Fatalf("expected default cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}
