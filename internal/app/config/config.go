package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func init() {
	godotenv.Load()
}

type setting struct {
	key          string
	env          string
	defaultValue interface{}
}

var driverSettings = []setting{
	{"mongodb.host", "MONGODB_HOST", ""},
	{"mongodb.port", "MONGODB_PORT", "27017"},
	{"mongodb.username", "MONGODB_USERNAME", ""},
	{"mongodb.password", "MONGODB_PASSWORD", ""},
	{"redis.host", "REDIS_HOST", "localhost"},
	{"redis.port", "REDIS_PORT", "6379"},
	{"redis.password", "REDIS_PASSWORD", ""},
	{"redis.db", "REDIS_DB", 0},
	{"logger.level", "LOGGER_LEVEL", "info"},
	{"logger.output_filename", "LOGGER_OUTPUT_FILENAME", "logger.log"},
	{"logger.output_error_filename", "LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"},
	{"rabbitmq.host", "RABBITMQ_HOST", ""},
	{"rabbitmq.port", "RABBITMQ_PORT", "5672"},
	{"rabbitmq.username", "RABBITMQ_USERNAME", "guest"},
	{"rabbitmq.password", "RABBITMQ_PASSWORD", "guest"},
	{"minio.host", "MINIO_HOST", ""},
	{"minio.port", "MINIO_PORT", "9000"},
	{"minio.username", "MINIO_USERNAME", ""},
	{"minio.password", "MINIO_PASSWORD", ""},
	{"minio.use_ssl", "MINIO_USE_SSL", false},
	{"smtp.host", "SMTP_HOST", "smtp.gmail.com"},
	{"smtp.port", "SMTP_PORT", 587},
	{"smtp.username", "EMAIL_USER", ""},
	{"smtp.password", "EMAIL_PASS", ""},
	{"smtp.insecure_skip_verify", "SMTP_INSECURE_SKIP_VERIFY", true},
}

var internalSettings = []setting{
	{"app.env", "APP_ENV", "development"},
	{"app.port", "APP_PORT", "3000"},
	{"app.version", "APP_VERSION", "v1"},
	{"app.base_url", "APP_BASE_URL", "http://localhost:3000"},
	{"app.timezone", "APP_TIMEZONE", "Asia/Riyadh"},
	{"app.endpoint_prefix", "APP_ENDPOINT_PREFIX", "api"},
	{"app.allowed_origins", "APP_ALLOWED_ORIGINS", "*"},
	{"app.max_requests", "APP_MAX_REQUESTS", 20},
	{"app.shutdown_timeout_in_seconds", "APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10},
	{"app.request_body_limit_in_megabyte", "APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1},
	{"sanity.project_id", "SANITY_PROJECT_ID", "f46widyg"},
	{"sanity.dataset", "SANITY_DATASET", "production"},
	{"sanity.api_version", "SANITY_API_VERSION", "2024-07-05"},
	{"sanity.token", "SANITY_TOKEN", ""},
	{"sanity.use_cdn", "SANITY_USE_CDN", false},
	{"sanity.http_timeout_in_seconds", "SANITY_HTTP_TIMEOUT_IN_SECONDS", 10},
	{"content.revalidate_in_seconds", "CONTENT_REVALIDATE_IN_SECONDS", 60},
	{"content.poll_interval_in_seconds", "CONTENT_POLL_INTERVAL_IN_SECONDS", 30},
	{"mail.clinic_mailbox", "EMAIL_USER", ""},
	{"mail.relay_url", "MAIL_RELAY_URL", "http://localhost:3000/api/send-email"},
	{"mail.relay_timeout_in_seconds", "MAIL_RELAY_TIMEOUT_IN_SECONDS", 30},
	{"webhook.port", "WEBHOOK_PORT", "4000"},
	{"webhook.secret", "SANITY_WEBHOOK_SECRET", ""},
	{"webhook.max_requests_per_second", "WEBHOOK_MAX_REQUESTS_PER_SECOND", 5},
	{"webhook.burst", "WEBHOOK_BURST", 10},
	{"deploy.command", "DEPLOY_COMMAND", "cd /var/www/eiat && git pull origin master && pnpm build && pm2 restart eiat-site"},
	{"deploy.mode", "DEPLOY_MODE", "queue"},
	{"deploy.timeout_in_minutes", "DEPLOY_TIMEOUT_IN_MINUTES", 15},
	{"deploy.history_limit", "DEPLOY_HISTORY_LIMIT", 20},
	{"mongodb.db_name", "MONGODB_DB_NAME", "clinic_site"},
	{"mongodb.deployments_collection", "MONGODB_DEPLOYMENTS_COLLECTION", "deployments"},
	{"minio.deploy_log_bucket", "MINIO_DEPLOY_LOG_BUCKET", "deploy-logs"},
	{"rabbitmq.content_events_queue", "CONTENT_EVENTS_QUEUE", "content.changed"},
}

func newViper(settings []setting) *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	for _, s := range settings {
		v.SetDefault(s.key, s.defaultValue)
		v.BindEnv(s.key, s.env)
	}
	return v
}

func NewDriverConfig() *DriverConfig {
	driverConfig := new(DriverConfig)
	if err := newViper(driverSettings).Unmarshal(driverConfig); err != nil {
		log.Fatalf("Failed to load driver config: %v", err)
	}
	return driverConfig
}

func NewInternalConfig() *InternalConfig {
	internalConfig := new(InternalConfig)
	if err := newViper(internalSettings).Unmarshal(internalConfig); err != nil {
		log.Fatalf("Failed to load internal config: %v", err)
	}
	return internalConfig
}
