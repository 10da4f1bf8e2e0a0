package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.HTTPAddr)
	}
	if cfg.DBPath != "events.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.CodeTTL != 2*time.Hour {
		t.Fatalf("expected 2h code ttl, got %v", cfg.CodeTTL)
	}
	if cfg.SMTPHost != "" {
		t.Fatalf("smtp must be unset by default, got %q", cfg.SMTPHost)
	}
	if !cfg.RLEnabled || cfg.RLLimit != 100 {
		t.Fatalf("unexpected rate limit defaults: %v %d", cfg.RLEnabled, cfg.RLLimit)
	}
	if cfg.MaxBodyBytes != 1<<20 {
		t.Fatalf("expected 1MB body cap default, got %d", cfg.MaxBodyBytes)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9999")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("CODE_TTL", "30m")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTPAddr != ":9999" || cfg.DBPath != "/tmp/test.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.CodeTTL != 30*time.Minute {
		t.Fatalf("code ttl override not applied: %v", cfg.CodeTTL)
	}
	if cfg.SMTPPort != 2525 {
		t.Fatalf("smtp port override not applied: %d", cfg.SMTPPort)
	}
	if cfg.RLEnabled {
		t.Fatalf("rate limiting should be disabled")
	}
}

func TestLoad_CORSOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://app.example.com ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	want := []string{"http://localhost:3000", "https://app.example.com"}
	if len(cfg.CORSAllowedOrigins) != len(want) {
		t.Fatalf("origins: %v", cfg.CORSAllowedOrigins)
	}
	for i := range want {
		if cfg.CORSAllowedOrigins[i] != want[i] {
			t.Fatalf("origin %d: got %q want %q", i, cfg.CORSAllowedOrigins[i], want[i])
		}
	}
	if !cfg.CORSEnabled {
		t.Fatalf("cors should default to enabled")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("CODE_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed duration")
	}
}
