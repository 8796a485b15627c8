package contracts

import (
	"context"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/dto/requests"
)

// BookingServiceClient talks to the remote system of record for doctors,
// users and appointments. Every method returns a *exceptions.CustomError
// whose Kind tells transport, auth and domain failures apart.
type BookingServiceClient interface {
	ListDoctors(ctx context.Context) ([]models.Doctor, error)
	GetProfile(ctx context.Context, token string) (*models.Profile, error)
	Register(ctx context.Context, request *requests.Register) (string, error)
	Login(ctx context.Context, request *requests.Login) (string, error)
	BookAppointment(ctx context.Context, token string, request *requests.BookAppointment) (string, error)
	CancelAppointment(ctx context.Context, token string, request *requests.CancelAppointment) (string, error)
	ListAppointments(ctx context.Context, token string) ([]models.Appointment, error)
	UpdateProfile(ctx context.Context, token string, request *requests.UpdateProfile) (string, *models.Profile, error)
}
