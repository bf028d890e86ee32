package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Sanity   AppSanity   `mapstructure:"sanity"`
	Content  AppContent  `mapstructure:"content"`
	Mail     AppMail     `mapstructure:"mail"`
	Webhook  AppWebhook  `mapstructure:"webhook"`
	Deploy   AppDeploy   `mapstructure:"deploy"`
	MongoDB  AppMongoDB  `mapstructure:"mongodb"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                        string `mapstructure:"env"`
	Port                       string `mapstructure:"port"`
	Version                    string `mapstructure:"version"`
	BaseUrl                    string `mapstructure:"base_url"`
	Timezone                   string `mapstructure:"timezone"`
	EndpointPrefix             string `mapstructure:"endpoint_prefix"`
	AllowedOrigins             string `mapstructure:"allowed_origins"`
	MaxRequests                int    `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds   int    `mapstructure:"shutdown_timeout_in_seconds"`
	RequestBodyLimitInMegabyte int    `mapstructure:"request_body_limit_in_megabyte"`
}

// AppSanity points the content-fetch layer at one project and dataset of the content store.
type AppSanity struct {
	ProjectID            string `mapstructure:"project_id"`
	Dataset              string `mapstructure:"dataset"`
	APIVersion           string `mapstructure:"api_version"`
	Token                string `mapstructure:"token"`
	UseCDN               bool   `mapstructure:"use_cdn"`
	HTTPTimeoutInSeconds int    `mapstructure:"http_timeout_in_seconds"`
}

type AppContent struct {
	// RevalidateInSeconds is how long a fetched query result is served before it is refetched.
	RevalidateInSeconds int `mapstructure:"revalidate_in_seconds"`
	// PollIntervalInSeconds drives the live subscriptions for layout-wide data.
	PollIntervalInSeconds int `mapstructure:"poll_interval_in_seconds"`
}

type AppMail struct {
	// ClinicMailbox receives every booking and contact message.
	ClinicMailbox         string `mapstructure:"clinic_mailbox"`
	RelayURL              string `mapstructure:"relay_url"`
	RelayTimeoutInSeconds int    `mapstructure:"relay_timeout_in_seconds"`
}

type AppWebhook struct {
	Port                 string `mapstructure:"port"`
	Secret               string `mapstructure:"secret"`
	MaxRequestsPerSecond int    `mapstructure:"max_requests_per_second"`
	Burst                int    `mapstructure:"burst"`
}

type AppDeploy struct {
	Command          string `mapstructure:"command"`
	Mode             string `mapstructure:"mode"`
	TimeoutInMinutes int    `mapstructure:"timeout_in_minutes"`
	HistoryLimit     int    `mapstructure:"history_limit"`
}

type AppMongoDB struct {
	DbName                string `mapstructure:"db_name"`
	DeploymentsCollection string `mapstructure:"deployments_collection"`
}

type AppMinio struct {
	DeployLogBucket string `mapstructure:"deploy_log_bucket"`
}

type AppRabbitMQ struct {
	ContentEventsQueue string `mapstructure:"content_events_queue"`
}
