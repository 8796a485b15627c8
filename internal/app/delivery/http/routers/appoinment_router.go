package routers

import (
	"fmt"
	"medibook-client/internal/app/delivery/http/controllers"
	"medibook-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Get("/", appointmentController.FindAll)
	router.Post(fmt.Sprintf("/{%s}/cancel", constvars.URLParamAppointmentID), appointmentController.Cancel)
	router.Post(fmt.Sprintf("/{%s}/pay", constvars.URLParamAppointmentID), appointmentController.Pay)
}
