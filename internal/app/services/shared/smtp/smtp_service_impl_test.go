package smtp

import (
	"clinic-site/internal/app/drivers/mailer"
	"clinic-site/internal/pkg/constvars"
	"clinic-site/internal/pkg/dto/requests"
	"clinic-site/internal/pkg/exceptions"
	"context"
	"crypto/tls"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSendUnreachableHost(t *testing.T) {
	svc := NewSmtpService(&mailer.SMTPClient{
		Host:        "127.0.0.1",
		Port:        1,
		TLSConfig:   &tls.Config{ServerName: "127.0.0.1"},
		DialTimeout: time.Second,
	}, zap.NewNop())

	err := svc.Send(context.Background(), &requests.EmailMessage{
		Subject: "New message from Sara",
		From:    "sara@example.com",
		To:      []string{"clinic@example.com"},
		Body:    "hello",
	})

	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)
	assert.NotEmpty(t, customErr.ClientMessage)
}

func TestSendWithoutRecipient(t *testing.T) {
	svc := NewSmtpService(&mailer.SMTPClient{Host: "127.0.0.1", Port: 1}, zap.NewNop())

	err := svc.Send(context.Background(), &requests.EmailMessage{From: "sara@example.com"})

	assert.Error(t, err)
}

func TestBuildPlainTextMessage(t *testing.T) {
	raw := string(BuildPlainTextMessage(&requests.EmailMessage{
		Subject: "New message from Sara\r\nBcc: victim@example.com",
		From:    "sara@example.com",
		To:      []string{"clinic@example.com"},
		Body:    "line one\nline two",
	}))

	assert.Contains(t, raw, "From: sara@example.com\r\n")
	assert.Contains(t, raw, "To: clinic@example.com\r\n")
	assert.Contains(t, raw, "Reply-To: sara@example.com\r\n")
	assert.Contains(t, raw, "Subject: New message from SaraBcc: victim@example.com\r\n")
	assert.NotContains(t, raw, "\r\nBcc:")
	assert.Contains(t, raw, "line one\r\nline two")
}

func TestBuildPlainTextMessageEncodesNonASCIISubject(t *testing.T) {
	raw := string(BuildPlainTextMessage(&requests.EmailMessage{
		Subject: "New message from سارة",
		From:    "sara@example.com",
		To:      []string{"clinic@example.com"},
		Body:    "مرحبا",
	}))

	assert.Contains(t, raw, "Subject: =?utf-8?q?")
	assert.Contains(t, raw, "مرحبا")
}

func TestEnvelopeSender(t *testing.T) {
	assert.Equal(t, "clinic@example.com", envelopeSender("clinic@example.com", "sara@example.com"))
	assert.Equal(t, "sara@example.com", envelopeSender("", "sara@example.com"))
}
