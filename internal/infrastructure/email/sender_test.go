package email

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRenderBasicHTML(t *testing.T) {
	htmlOutput := renderBasicHTML("Verify & Confirm", "your code is 042137")

	assert.Contains(t, htmlOutput, "Verify &amp; Confirm")
	assert.Contains(t, htmlOutput, "042137")
}

func TestSMTPConfig_Configured(t *testing.T) {
	assert.False(t, SMTPConfig{}.Configured())
	assert.False(t, SMTPConfig{Host: "smtp.gmail.com"}.Configured())
	assert.True(t, SMTPConfig{Host: "smtp.gmail.com", From: "noreply@test.com"}.Configured())
}

func TestSMTPSender_Config(t *testing.T) {
	cfg := SMTPConfig{
		Host:     "smtp.gmail.com",
		Port:     587,
		Username: "user",
		Password: "password",
		From:     "noreply@test.com",
		Timeout:  5 * time.Second,
	}

	sender := NewSMTPSender(cfg, zerolog.Nop())

	assert.Equal(t, "smtp.gmail.com", sender.host)
	assert.Equal(t, 587, sender.port)
	assert.Equal(t, 5*time.Second, sender.timeout)
}

func TestLogSender_NeverFails(t *testing.T) {
	var buf bytes.Buffer
	lg := zerolog.New(&buf)

	s := NewLogSender(lg)
	err := s.Send(context.Background(), "a@x.com", "Verify your account", "your code is 042137")

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "a@x.com")
	assert.Contains(t, buf.String(), "042137")
}
