package contracts

import (
	"context"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"time"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) error
	Register(ctx context.Context, request *requests.Register) error
	Logout(ctx context.Context)
}

type ProfileUsecase interface {
	GetProfile(ctx context.Context) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, request *requests.UpdateProfile) error
}

type BookingWorkflow interface {
	Open(ctx context.Context, doctorID string, now time.Time) (models.BookingView, error)
	SelectDay(ctx context.Context, slotIndex int) (models.BookingView, error)
	SelectTime(ctx context.Context, slotTime string) (models.BookingView, error)
	View() models.BookingView
	RebuildIfStale(ctx context.Context) bool
	Submit(ctx context.Context) models.BookingOutcome
}

type AppointmentView interface {
	Load(ctx context.Context) ([]models.Appointment, error)
	Appointments() []models.Appointment
	Cancel(ctx context.Context, appointmentID string) error
	PayOnline(ctx context.Context, appointmentID string) error
}
