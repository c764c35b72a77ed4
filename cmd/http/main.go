package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/delivery/http/routers"
	"vitalis-service/internal/app/drivers/database"
	"vitalis-service/internal/app/drivers/logger"
	"vitalis-service/internal/app/drivers/messaging"
	"vitalis-service/internal/app/drivers/storage"
	"vitalis-service/internal/app/services/auth"
	"vitalis-service/internal/app/services/dashboards"
	"vitalis-service/internal/app/services/navigation"
	"vitalis-service/internal/app/services/notifications"
	"vitalis-service/internal/app/services/search"
	"vitalis-service/internal/app/services/shared/audit"
	"vitalis-service/internal/app/services/shared/identity"
	"vitalis-service/internal/app/services/shared/locker"
	sharedRedis "vitalis-service/internal/app/services/shared/redis"
	"vitalis-service/internal/app/services/shared/session"
	minioStorage "vitalis-service/internal/app/services/shared/storage"
	"vitalis-service/internal/app/services/subscriptions"
	"vitalis-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	log.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Failed to close connections: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Shared services
	redisRepository := sharedRedis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository, bootstrap.Logger)
	lockerService := locker.NewLockService(redisRepository, bootstrap.Logger)
	identityProvider := identity.NewMockIdentityProvider()
	auditPublisher := audit.NewAuditPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig, bootstrap.Logger)
	storageService := minioStorage.NewMinioStorageService(bootstrap.Minio, bootstrap.InternalConfig)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(sessionService, bootstrap.InternalConfig, bootstrap.Logger)

	// User
	userMongoRepository := users.NewUserMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.DbName,
	)
	presignedTTL := time.Duration(bootstrap.InternalConfig.Minio.PreSignedUrlObjectExpiryInHours) * time.Hour
	userUsecase := users.NewUserUsecase(userMongoRepository, storageService, presignedTTL)
	userController := users.NewUserController(bootstrap.Logger, userUsecase, bootstrap.InternalConfig.Minio.AvatarMaxUploadSizeInMB)

	// Notification
	notificationMongoRepository := notifications.NewNotificationMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.DbName,
	)

	// Auth
	authUsecase := auth.NewAuthUsecase(userMongoRepository, notificationMongoRepository, sessionService, lockerService, identityProvider, auditPublisher, bootstrap.InternalConfig)
	authController := auth.NewAuthController(bootstrap.Logger, authUsecase)

	notificationUsecase := notifications.NewNotificationUsecase(notificationMongoRepository)
	notificationController := notifications.NewNotificationController(bootstrap.Logger, notificationUsecase)

	// Navigation and dashboard
	navigationUsecase := navigation.NewNavigationUsecase(notificationMongoRepository)
	dashboardMongoRepository := dashboards.NewDashboardMongoRepository(
		bootstrap.MongoDB,
		bootstrap.InternalConfig.MongoDB.DbName,
	)
	dashboardUsecase := dashboards.NewDashboardUsecase(dashboardMongoRepository, navigationUsecase)
	dashboardController := dashboards.NewDashboardController(bootstrap.Logger, dashboardUsecase, navigationUsecase)

	// Subscription
	subscriptionUsecase := subscriptions.NewSubscriptionUsecase(userMongoRepository, sessionService, bootstrap.InternalConfig)
	subscriptionController := subscriptions.NewSubscriptionController(bootstrap.Logger, subscriptionUsecase)

	// Search
	searchUsecase := search.NewSearchUsecase(dashboardMongoRepository)
	searchController := search.NewSearchController(bootstrap.Logger, searchUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		authController,
		userController,
		dashboardController,
		subscriptionController,
		notificationController,
		searchController,
	)
}
