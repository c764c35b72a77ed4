package routers

import (
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/services/dashboards"

	"github.com/go-chi/chi/v5"
)

// Dashboard content sits behind both the session guard and the
// subscription gate. Navigation only needs a session; the sidebar must
// stay renderable while the gate is up.
func attachDashboardRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboards.DashboardController) {
	router.With(middlewares.Authenticate, middlewares.SubscriptionRequired).Get("/{role}", dashboardController.GetDashboard)
	router.With(middlewares.Authenticate, middlewares.SubscriptionRequired).Get("/{role}/{section}", dashboardController.GetSection)
}

func attachNavigationRoutes(router chi.Router, middlewares *middlewares.Middlewares, dashboardController *dashboards.DashboardController) {
	router.With(middlewares.Authenticate).Get("/", dashboardController.GetNavigation)
}
