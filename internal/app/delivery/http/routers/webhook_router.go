package routers

import (
	"clinic-site/internal/app/config"
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"
	"clinic-site/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// SetupWebhookRoutes mounts the deploy webhook server. Only the health probe is open;
// every other route needs the shared secret.
func SetupWebhookRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	accessLog *logrus.Logger,
	webhookController *controllers.WebhookController,
) {
	router.Use(middlewares.RequestID(constvars.DEPLOY_REQUEST_ID_PREFIX))
	router.Use(middlewares.RequestLogger(internalConfig.App, accessLog))
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.WebhookRateLimit())

	router.Route("/webhook", func(r chi.Router) {
		attachWebhookRoutes(r, middlewares, webhookController)
	})
}

func attachWebhookRoutes(router chi.Router, middlewares *middlewares.Middlewares, webhookController *controllers.WebhookController) {
	router.Get("/health", webhookController.Health)
	router.With(middlewares.RequireWebhookSecret).Post("/sanity-content", webhookController.SanityContent)
	router.With(middlewares.RequireWebhookSecret).Get("/deployments", webhookController.Deployments)
}
