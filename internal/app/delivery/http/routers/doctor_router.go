package routers

import (
	"fmt"
	"medibook-client/internal/app/delivery/http/controllers"
	"medibook-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, doctorController *controllers.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Post("/refresh", doctorController.Refresh)
	router.Get(fmt.Sprintf("/{%s}/slots", constvars.URLParamDoctorID), doctorController.FindSlots)
}
