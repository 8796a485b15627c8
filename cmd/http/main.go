package main

import (
	"context"
	"log"
	"medibook-client/internal/app/agent"
	"medibook-client/internal/app/config"
	"medibook-client/internal/app/delivery/http/controllers"
	"medibook-client/internal/app/delivery/http/middlewares"
	"medibook-client/internal/app/delivery/http/routers"
	"medibook-client/internal/app/drivers/logger"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig, err := config.NewInternalConfig()
	if err != nil {
		log.Fatalf("Error loading internal config: %v", err)
	}

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	err = config.ApplyTimezone(internalConfig)
	if err != nil {
		zapLogger.Fatal("Error loading location", zap.Error(err))
	}

	chiRouter := chi.NewRouter()
	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bootstrapingTheApp(ctx, bootstrap)
	if err != nil {
		zapLogger.Fatal("Error bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		zapLogger.Info("Server listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), internalConfig.App.ShutdownTimeoutDuration())
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error releasing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(ctx context.Context, bootstrap *config.Bootstrap) error {
	// Booking core
	a, err := agent.New(ctx, bootstrap)
	if err != nil {
		return err
	}
	a.RosterWorker.Start(ctx)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, routers.Controllers{
		Session:      controllers.NewSessionController(bootstrap.Logger, a.Auth, a.Store),
		Doctor:       controllers.NewDoctorController(bootstrap.Logger, a.Store, a.Generator),
		Booking:      controllers.NewBookingController(bootstrap.Logger, a.Workflow),
		Appointment:  controllers.NewAppointmentController(bootstrap.Logger, a.Appointments),
		Profile:      controllers.NewProfileController(bootstrap.Logger, a.Profile),
		Notification: controllers.NewNotificationController(bootstrap.Logger, a.Feed, bootstrap.InternalConfig.App.NotificationFetchLimit),
	})
	return nil
}
