package config

import (
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func NewInternalConfig() *InternalConfig {
	godotenv.Load()
	return &InternalConfig{
		App: App{
			Env:                            utils.GetEnvString("APP_ENV", "development"),
			Port:                           utils.GetEnvString("APP_PORT", ":8080"),
			Version:                        utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                       utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:                 utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:                    utils.GetEnvInt("APP_MAX_REQUESTS", 100),
			MaxLoginRequestsPerMinute:      utils.GetEnvInt("APP_MAX_LOGIN_REQUESTS_PER_MINUTE", 10),
			ShutdownTimeoutInSeconds:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			LoginSessionExpiredTimeInHours: utils.GetEnvInt("APP_LOGIN_SESSION_EXPIRED_TIME_IN_HOURS", 24),
			LoginLockTimeoutInSeconds:      utils.GetEnvInt("APP_LOGIN_LOCK_TIMEOUT_IN_SECONDS", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "defaultJWTSecret"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 24),
		},
		Minio: AppMinio{
			BucketName:                      utils.GetEnvString("MINIO_BUCKET_NAME", "vitalis-avatars"),
			AvatarMaxUploadSizeInMB:         utils.GetEnvInt("MINIO_AVATAR_MAX_UPLOAD_SIZE_IN_MB", 2),
			PreSignedUrlObjectExpiryInHours: utils.GetEnvInt("MINIO_PRESIGNED_URL_OBJECT_EXPIRY_IN_HOURS", 24),
		},
		RabbitMQ: AppRabbitMQ{
			LoginEventQueue: utils.GetEnvString("RABBITMQ_LOGIN_EVENT_QUEUE", constvars.AuditQueueLoginEvents),
		},
		MongoDB: AppMongoDB{
			DbName: utils.GetEnvString("MONGODB_DB_NAME", "vitalis"),
		},
		Subscription: AppSubscription{
			DefaultPlan: utils.GetEnvString("SUBSCRIPTION_DEFAULT_PLAN", "monthly"),
		},
	}
}
