package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientContentUnavailable            = "تعذر تحميل المحتوى"
	ErrClientInvalidWebhookSecret          = "Invalid secret"
	ErrClientDeployCommandFailed           = "Command failed"
	ErrClientTooManyRequests               = "Too many requests"
	ErrClientResourceNotFound              = "resource not found"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotParseForm           = "cannot parse form"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevServerProcess             = "server failed to process request"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevSanityQueryFailed         = "content store query failed for %s"
	ErrDevSanityDecodeResponse      = "failed to decode content store response for %s"
	ErrDevSanityBadConfig           = "content store client misconfigured"
	ErrDevSMTPSendEmail             = "failed to send email via SMTP host %s"
	ErrDevMailRelayFailed           = "mail relay responded with an error"
	ErrDevRedisGetData              = "failed to get data from redis"
	ErrDevRedisGetNoData            = "no data found in redis for key %s"
	ErrDevRedisSetData              = "failed to set data to redis"
	ErrDevRedisDeleteData           = "failed to delete data from redis"
	ErrDevRedisScanKeys             = "failed to scan redis keys with pattern %s"
	ErrDevRabbitMQPublishMessage    = "failed to publish message to queue %s"
	ErrDevRabbitMQConsumeQueue      = "failed to consume queue %s"
	ErrDevMongoDBInsertDocument     = "failed to insert document"
	ErrDevMongoDBUpdateDocument     = "failed to update document"
	ErrDevMongoDBFindDocument       = "failed to find document"
	ErrDevMinioFailedToCreateObject = "failed to create object in bucket %s"
	ErrDevInvalidWebhookSecret      = "webhook secret header mismatch"
	ErrDevDeployCommandFailed       = "deploy command failed"
	ErrDevDeployRunnerStopped       = "deploy runner is stopped"
	ErrDevInvalidFormTransition     = "invalid form state transition from %s to %s"
	ErrDevRateLimited               = "rate limited"
	ErrDevResourceNotFound          = "resource %s not found"
)
