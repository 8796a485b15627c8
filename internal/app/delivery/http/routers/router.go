package routers

import (
	"fmt"
	"medibook-client/internal/app/config"
	"medibook-client/internal/app/delivery/http/controllers"
	"medibook-client/internal/app/delivery/http/middlewares"
	"medibook-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

type Controllers struct {
	Session      *controllers.SessionController
	Doctor       *controllers.DoctorController
	Booking      *controllers.BookingController
	Appointment  *controllers.AppointmentController
	Profile      *controllers.ProfileController
	Notification *controllers.NotificationController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	ctrls Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   internalConfig.CORS.Origins(),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(middlewares.RateLimit())
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/session", func(r chi.Router) {
				attachSessionRoutes(r, ctrls.Session)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, ctrls.Doctor)
			})

			r.Route("/booking", func(r chi.Router) {
				attachBookingRoutes(r, ctrls.Booking)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, ctrls.Appointment)
			})

			r.Route("/profile", func(r chi.Router) {
				attachProfileRoutes(r, ctrls.Profile)
			})

			r.Route("/notifications", func(r chi.Router) {
				attachNotificationRoutes(r, ctrls.Notification)
			})
		})
	})
}
