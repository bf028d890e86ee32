package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingQueryStringKey    = "groq"
	LoggingCacheKey          = "cache_key"
	LoggingCacheHitKey       = "cache_hit"
	LoggingResultCountKey    = "result_count"
	LoggingDocumentTypeKey   = "document_type"
	LoggingDocumentIDKey     = "document_id"
	LoggingDocumentUpdateKey = "document_updated_at"
	LoggingDeployIDKey       = "deploy_id"
	LoggingQueueNameKey      = "queue_name"
	LoggingSubscriptionKey   = "subscription"
	LoggingRecipientKey      = "recipient"
	LoggingSMTPHostKey       = "smtp_host"
	LoggingOperationKey      = "operation"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingDeployModeKey     = "deploy_mode"
	LoggingExitCodeKey       = "exit_code"
	LoggingObjectKey         = "object_key"
	LoggingDepartmentKey     = "department"
)
