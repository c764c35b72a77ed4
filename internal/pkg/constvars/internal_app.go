package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "VTLS_SVC_"
)

const (
	MongoCollectionUsers         = "users"
	MongoCollectionDashboards    = "dashboards"
	MongoCollectionNotifications = "notifications"
)

const (
	RedisLoginLockKeyFormat = "login_lock:%s"
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderXRequestID    = "X-Request-ID"
)

const (
	MIMEApplicationJSON = "application/json"
)

const (
	URLParamRole           = "role"
	URLParamSection        = "section"
	URLParamNotificationID = "notificationID"
)

const (
	AuditQueueLoginEvents = "vitalis.login_events"

	AuditEventLogin    = "login"
	AuditEventRegister = "register"
	AuditEventLogout   = "logout"
)

const (
	AvatarObjectNameFormat = "avatars/%s%s"
)

const (
	WelcomeNotificationTitle = "Welcome to Vitalis"
	WelcomeNotificationBody  = "Your account is ready. Sign up for a subscription to unlock your dashboard."
)
