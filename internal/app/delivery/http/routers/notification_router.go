package routers

import (
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/services/notifications"

	"github.com/go-chi/chi/v5"
)

func attachNotificationRoutes(router chi.Router, middlewares *middlewares.Middlewares, notificationController *notifications.NotificationController) {
	router.With(middlewares.Authenticate).Get("/", notificationController.ListNotifications)
	router.With(middlewares.Authenticate).Post("/{notificationID}/read", notificationController.MarkNotificationRead)
}
