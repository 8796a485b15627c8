package routers

import (
	"medibook-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Get("/", profileController.GetProfile)
	router.Post("/", profileController.UpdateProfile)
}
