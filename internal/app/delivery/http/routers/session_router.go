package routers

import (
	"medibook-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *controllers.SessionController) {
	router.Get("/", sessionController.GetSession)
	router.Post("/login", sessionController.Login)
	router.Post("/register", sessionController.Register)
	router.Post("/logout", sessionController.Logout)
	router.Put("/token", sessionController.SetToken)
}
