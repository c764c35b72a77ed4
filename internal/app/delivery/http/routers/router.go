package routers

import (
	"fmt"
	"time"
	"vitalis-service/internal/app/config"
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/services/auth"
	"vitalis-service/internal/app/services/dashboards"
	"vitalis-service/internal/app/services/notifications"
	"vitalis-service/internal/app/services/search"
	"vitalis-service/internal/app/services/subscriptions"
	"vitalis-service/internal/app/services/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	dashboardController *dashboards.DashboardController,
	subscriptionController *subscriptions.SubscriptionController,
	notificationController *notifications.NotificationController,
	searchController *search.SearchController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/dashboard", func(r chi.Router) {
				attachDashboardRoutes(r, middlewares, dashboardController)
			})

			r.Route("/navigation", func(r chi.Router) {
				attachNavigationRoutes(r, middlewares, dashboardController)
			})

			r.Route("/subscriptions", func(r chi.Router) {
				attachSubscriptionRoutes(r, middlewares, subscriptionController)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, middlewares, notificationController)
			})

			r.Route("/search", func(r chi.Router) {
				attachSearchRoutes(r, middlewares, searchController)
			})
		})
	})
}
