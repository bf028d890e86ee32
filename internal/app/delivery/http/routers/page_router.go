package routers

import (
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, pageController *controllers.PageController) {
	router.Get("/", pageController.Home)
	router.Get("/doctors", pageController.Doctors)
	router.Get("/services", pageController.Services)
	router.Get("/offers", pageController.Offers)
	router.Get("/devices", pageController.Devices)
	router.Get("/patients", pageController.Patients)
	router.Get("/contact", pageController.Contact)

	router.With(middlewares.FormSubmissionLimit).Post("/booking", pageController.SubmitBooking)
	router.With(middlewares.FormSubmissionLimit).Post("/contact", pageController.SubmitContact)
}
