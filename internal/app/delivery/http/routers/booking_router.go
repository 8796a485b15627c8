package routers

import (
	"medibook-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachBookingRoutes(router chi.Router, bookingController *controllers.BookingController) {
	router.Get("/", bookingController.Get)
	router.Post("/open", bookingController.Open)
	router.Put("/selection", bookingController.Select)
	router.Post("/submit", bookingController.Submit)
}
