package security

import (
	"testing"
	"time"
)

func TestCodeGenerator_FixedWidthNumeric(t *testing.T) {
	t.Parallel()

	g := NewCodeGenerator()
	for i := 0; i < 200; i++ {
		code, _, err := g.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("non-digit in code %q", code)
			}
		}
	}
}

func TestCodeGenerator_ExpiryWindow(t *testing.T) {
	t.Parallel()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	g := NewCodeGeneratorAt(2*time.Hour, func() time.Time { return base })

	_, expiry, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !expiry.Equal(base.Add(2 * time.Hour)) {
		t.Fatalf("expected expiry %v, got %v", base.Add(2*time.Hour), expiry)
	}
}

func TestCodeGenerator_NotConstant(t *testing.T) {
	t.Parallel()

	g := NewCodeGenerator()
	seen := map[string]struct{}{}
	for i := 0; i < 50; i++ {
		code, _, err := g.Generate()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		seen[code] = struct{}{}
	}
	// 50 draws from a million values collide occasionally, but never all.
	if len(seen) < 2 {
		t.Fatalf("generator produced a constant code")
	}
}
