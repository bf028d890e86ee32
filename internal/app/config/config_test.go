package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfigDefaults(t *testing.T) {
	internalConfig := NewInternalConfig()

	assert.Equal(t, "f46widyg", internalConfig.Sanity.ProjectID)
	assert.Equal(t, "production", internalConfig.Sanity.Dataset)
	assert.Equal(t, "2024-07-05", internalConfig.Sanity.APIVersion)
	assert.False(t, internalConfig.Sanity.UseCDN)
	assert.Equal(t, 60, internalConfig.Content.RevalidateInSeconds)
	assert.Equal(t, "api", internalConfig.App.EndpointPrefix)
	assert.Equal(t, "v1", internalConfig.App.Version)
	assert.Equal(t, "4000", internalConfig.Webhook.Port)
	assert.Equal(t, "queue", internalConfig.Deploy.Mode)
	assert.Equal(t, "cd /var/www/eiat && git pull origin master && pnpm build && pm2 restart eiat-site", internalConfig.Deploy.Command)
}

func TestNewInternalConfigFromEnvironment(t *testing.T) {
	t.Setenv("WEBHOOK_PORT", "4100")
	t.Setenv("SANITY_WEBHOOK_SECRET", "s3cret")
	t.Setenv("EMAIL_USER", "clinic@example.com")
	t.Setenv("DEPLOY_MODE", "coalesce")
	t.Setenv("CONTENT_REVALIDATE_IN_SECONDS", "120")

	internalConfig := NewInternalConfig()

	assert.Equal(t, "4100", internalConfig.Webhook.Port)
	assert.Equal(t, "s3cret", internalConfig.Webhook.Secret)
	assert.Equal(t, "clinic@example.com", internalConfig.Mail.ClinicMailbox)
	assert.Equal(t, "coalesce", internalConfig.Deploy.Mode)
	assert.Equal(t, 120, internalConfig.Content.RevalidateInSeconds)
}

func TestNewDriverConfigFromEnvironment(t *testing.T) {
	t.Setenv("EMAIL_USER", "clinic@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("SMTP_PORT", "2525")
	t.Setenv("RABBITMQ_HOST", "")

	driverConfig := NewDriverConfig()

	assert.Equal(t, "clinic@example.com", driverConfig.SMTP.Username)
	assert.Equal(t, "app-password", driverConfig.SMTP.Password)
	assert.Equal(t, 2525, driverConfig.SMTP.Port)
	assert.True(t, driverConfig.SMTP.InsecureSkipVerify)
	assert.False(t, driverConfig.RabbitMQ.Enabled())
}
