package routers

import (
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The site's own form handlers call /send-email, so every relayed submission
// arrives from the server address. Per-client form quotas apply on /booking and
// /contact instead.
func attachMailerRoutes(router chi.Router, middlewares *middlewares.Middlewares, mailerController *controllers.MailerController) {
	// POST /api/send-email
	router.Post("/send-email", mailerController.SendEmail)
}
