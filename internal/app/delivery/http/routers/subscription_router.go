package routers

import (
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/services/subscriptions"

	"github.com/go-chi/chi/v5"
)

// Subscription routes are never gated; a caller with an inactive
// subscription must be able to reach the payment endpoint.
func attachSubscriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, subscriptionController *subscriptions.SubscriptionController) {
	router.With(middlewares.Authenticate).Get("/status", subscriptionController.GetStatus)
	router.With(middlewares.Authenticate).Post("/pay", subscriptionController.Activate)
}
