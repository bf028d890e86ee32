package routers

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"
	"clinic-site/internal/pkg/constvars"
	"fmt"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// SetupRoutes mounts the public site: rendered pages, form posts and the JSON content API.
func SetupRoutes(
	router *chi.Mux,
	logger *zap.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	pageController *controllers.PageController,
	contentController *controllers.ContentController,
	mailerController *controllers.MailerController,
) {
	router.Use(middlewares.RequestID(constvars.REQUEST_ID_PREFIX))
	router.Use(middlewares.Logging(logger))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.BodyLimit)

	attachPageRoutes(router, middlewares, pageController)

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Use(cors.Handler(corsOptions))

		attachMailerRoutes(r, middlewares, mailerController)

		r.Route(versionPrefix, func(r chi.Router) {
			attachContentRoutes(r, middlewares, contentController)
		})
	})
}

func allowedOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
