package config

type (
	InternalConfig struct {
		App          App
		JWT          JWT
		Minio        AppMinio
		RabbitMQ     AppRabbitMQ
		MongoDB      AppMongoDB
		Subscription AppSubscription
	}

	App struct {
		Env                            string
		Port                           string
		Version                        string
		Timezone                       string
		EndpointPrefix                 string
		MaxRequests                    int
		MaxLoginRequestsPerMinute      int
		ShutdownTimeoutInSeconds       int
		LoginSessionExpiredTimeInHours int
		LoginLockTimeoutInSeconds      int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	AppMinio struct {
		BucketName                      string
		AvatarMaxUploadSizeInMB         int
		PreSignedUrlObjectExpiryInHours int
	}

	AppRabbitMQ struct {
		LoginEventQueue string
	}

	AppMongoDB struct {
		DbName string
	}

	AppSubscription struct {
		DefaultPlan string
	}
)

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
