package constvars

const (
	LoggingRequestIDKey         = "request_id"
	LoggingIsClientRequestIDKey = "is_client_request_id"
	LoggingMethodKey            = "method"
	LoggingEndpointKey          = "endpoint"
	LoggingRemoteAddrKey        = "remote_addr"
	LoggingUserAgentKey         = "user_agent"
	LoggingQueryKey             = "query"
	LoggingStatusCodeKey        = "status_code"
	LoggingDurationKey          = "duration"
	LoggingSuccessKey           = "success"
	LoggingUserIDKey            = "user_id"
	LoggingEmailKey             = "email"
	LoggingRoleKey              = "role"
	LoggingSessionIDKey         = "session_id"
	LoggingRedisKey             = "redis_key"
	LoggingQueueKey             = "queue"
	LoggingEventKey             = "event"
	LoggingLockValueKey         = "lock_value"
)
