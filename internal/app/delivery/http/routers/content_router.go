package routers

import (
	"clinic-site/internal/app/delivery/http/controllers"
	"clinic-site/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachContentRoutes(router chi.Router, middlewares *middlewares.Middlewares, contentController *controllers.ContentController) {
	router.Get("/doctors", contentController.FindDoctors)
	router.Get("/plans", contentController.FindPlans)
	router.Get("/offers", contentController.FindOffers)
	router.Get("/devices", contentController.FindDevices)
	router.Get("/testimonials", contentController.FindTestimonials)
	router.Get("/homepage-sections", contentController.FindHomepageSections)
	router.Get("/clinic-info", contentController.FindClinicInfo)
}
