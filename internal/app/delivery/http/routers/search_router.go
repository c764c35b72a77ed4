package routers

import (
	"vitalis-service/internal/app/delivery/http/middlewares"
	"vitalis-service/internal/app/services/search"

	"github.com/go-chi/chi/v5"
)

func attachSearchRoutes(router chi.Router, middlewares *middlewares.Middlewares, searchController *search.SearchController) {
	router.With(middlewares.Authenticate).Get("/", searchController.Search)
}
