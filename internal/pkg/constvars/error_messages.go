package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"alphanum": "must contain only alphanumeric characters",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"eqfield":  "must match %s",
	"password": "must be at least 8 characters long, contain at least one special character, and one uppercase letter",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"oneof":    "must be one of [%s]",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"role":     "must be one of the six platform roles",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":     true,
	"max":     true,
	"len":     true,
	"eqfield": true,
	"oneof":   true,
}

// Error messages for clients
const (
	ErrClientInvalidEmailOrPassword        = "invalid email or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientLoginInProgress               = "login already in progress"
	ErrClientNotLoggedIn                   = "you are not logged in"
	ErrClientSubscriptionInactive          = "an active subscription is required to access your dashboard"
	ErrClientRoleMismatch                  = "this dashboard does not belong to your role"
	ErrClientCannotProcessRequest          = "cannot process your request"
	ErrClientSomethingWrongWithApplication = "something is wrong with the application, please contact admin"
	ErrClientServerLongRespond             = "server takes too long to respond"
	ErrClientServiceUnavailable            = "service temporarily unavailable, please try again"
	ErrClientInvalidImageFormat            = "invalid image, make sure the format is correct"
	ErrClientSearchQueryMissing            = "search query cannot be empty"
)

// Error messages for developers
const (
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "failed to parse JSON data"
	ErrDevCannotMarshalJSON       = "failed to marshal data to JSON"
	ErrDevFailedToHashPassword    = "failed to hash the given password"
	ErrDevInvalidCredentials      = "user not found or password mismatch"
	ErrDevEmailAlreadyExists      = "user with the given email already exists"
	ErrDevLoginLockNotAcquired    = "another login for this email is in flight"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevInvalidRoleType         = "given role is not part of the closed role set"
	ErrDevRoleTypeDoesntMatch     = "session role does not match the requested dashboard role"
	ErrDevSubscriptionInactive    = "session subscription flag is false"
	ErrDevUserNotExists           = "user does not exist"
	ErrDevDashboardNotSeeded      = "dashboard document missing for a valid role"
	ErrDevNotificationNotExists   = "notification does not exist or belongs to another user"
	ErrDevSearchQueryEmpty        = "search query parameter is empty"
	ErrDevCannotParseMultipart    = "failed to parse multipart form"
	ErrDevImageValidationFailed   = "failed to validate image"
	ErrDevAuthTokenMissing        = "authorization token is missing"
	ErrDevAuthTokenInvalid        = "authorization token is invalid"
	ErrDevAuthGenerateToken       = "failed to generate JWT token"
	ErrDevAuthSigningMethod       = "unexpected JWT signing method"
	ErrDevAuthSessionNotFound     = "session not found in session store"
	ErrDevAuthSessionMalformed    = "session snapshot present but not parseable, discarded"
	ErrDevRedisSet                = "redis failed to set key"
	ErrDevRedisGet                = "redis failed to get key"
	ErrDevRedisDelete             = "redis failed to delete key"
	ErrDevRedisSetNX              = "redis failed to setnx key"
	ErrDevDBFailedToFindDocument  = "database failed to find document"
	ErrDevDBFailedToInsertDoc     = "database failed to insert document"
	ErrDevDBFailedToUpdateDoc     = "database failed to update document"
	ErrDevDBFailedToDeleteDoc     = "database failed to delete document"
	ErrDevDBFailedToIterateDocs   = "database failed to iterate documents"
	ErrDevDBStringNotObjectID     = "given string cannot be converted to mongo ObjectID"
	ErrDevDBUnreachable           = "database is unreachable"
	ErrDevMinioFailedToPutObject  = "minio failed to store object in bucket %s"
	ErrDevMinioFailedPresignedURL = "minio failed to generate presigned URL"
)
