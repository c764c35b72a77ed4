package routers

import (
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	credentialLimiter := middlewares.CredentialRateLimiter()

	router.With(credentialLimiter.Limit).Post("/register", authController.Register)
	router.With(credentialLimiter.Limit).Post("/login", authController.Login)
	router.With(middlewares.Authenticate).Post("/logout", authController.Logout)
}
