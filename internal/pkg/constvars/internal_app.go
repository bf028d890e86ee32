package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX        = "CLNC_SITE_"
	DEPLOY_REQUEST_ID_PREFIX = "CLNC_DPLY_"
)

const (
	AppEnvDevelopment = "development"
	AppEnvProduction  = "production"
)

const (
	AppPaginationUrlFormat  = "%s?page=%d&page_size=%d"
	AppDefaultPageSize      = 20
	AppMaxPageSize          = 100
	AppShutdownGracePeriod  = 10
	AppMaxRequestBodyInByte = 1 << 20
)

const (
	FormLimiterGroupName     = "SEND-EMAIL"
	FormLimiterWindowSec     = 60
	FormLimiterMaxQuota      = 5
	WebhookLimiterBlockInSec = 60
)

const (
	DeployModeQueue    = "queue"
	DeployModeCoalesce = "coalesce"

	DeployStatusRunning   = "running"
	DeployStatusSucceeded = "succeeded"
	DeployStatusFailed    = "failed"

	DeployLogObjectFormat = "deploy-logs/%s.log"
	WebhookHealthResponse = "ok"
	WebhookOKResponse     = "OK"
)

const (
	ResourceDoctors          = "doctors"
	ResourcePlans            = "plans"
	ResourceOffers           = "offers"
	ResourceDevices          = "devices"
	ResourceTestimonials     = "testimonials"
	ResourceHomepageSections = "homepage-sections"
	ResourceClinicInfo       = "clinic-info"
	ResourceDeployments      = "deployments"
)
