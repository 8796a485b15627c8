package appointments

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

const notificationSource = "appointments"

// View lists the user's appointments, newest first, and cancels them. It
// follows the session token: a new token reloads the list, logging out
// empties it.
type View struct {
	store    contracts.SessionStore
	client   contracts.BookingServiceClient
	notifier contracts.Notifier
	log      *zap.Logger

	mu           sync.RWMutex
	appointments []models.Appointment
}

func NewView(
	store contracts.SessionStore,
	client contracts.BookingServiceClient,
	notifier contracts.Notifier,
	logger *zap.Logger,
) *View {
	view := &View{
		store:    store,
		client:   client,
		notifier: notifier,
		log:      logger,
	}
	store.Subscribe(view.onTokenChange)
	return view
}

func (v *View) onTokenChange(ctx context.Context, token string) {
	if token == "" {
		v.mu.Lock()
		v.appointments = nil
		v.mu.Unlock()
		return
	}
	_, _ = v.Load(ctx)
}

// Load fetches the appointment list. It needs a token and sends nothing
// without one.
func (v *View) Load(ctx context.Context) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	token := v.store.Token()
	if token == "" {
		return nil, exceptions.ErrTokenMissing(constvars.ErrClientLoginRequired)
	}

	v.log.Info("View.Load called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	fetched, err := v.client.ListAppointments(ctx, token)
	if err != nil {
		v.log.Error("View.Load error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.FailureMessage(ctx, v.notifier, notificationSource, err, loadFailureMessage(err))
		return nil, err
	}

	newestFirst := make([]models.Appointment, len(fetched))
	for i, appointment := range fetched {
		newestFirst[len(fetched)-1-i] = appointment
	}

	if v.store.Token() != token {
		v.log.Info("View.Load dropped result for a previous session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return v.Appointments(), nil
	}

	v.mu.Lock()
	v.appointments = newestFirst
	v.mu.Unlock()

	v.log.Info("View.Load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("appointment_count", len(newestFirst)),
	)
	return copyAppointments(newestFirst), nil
}

func loadFailureMessage(err error) string {
	switch exceptions.KindOf(err) {
	case exceptions.KindAuth:
		return constvars.ErrClientUnauthorized
	case exceptions.KindDomain:
		return constvars.ErrClientLoadAppointmentsFailed
	default:
		return constvars.ErrClientFetchAppointmentsFailed
	}
}

func (v *View) Appointments() []models.Appointment {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return copyAppointments(v.appointments)
}

// Cancel asks the booking service to cancel appointmentID. The only local
// check is that the list does not already show it as cancelled; everything
// else is left to the server. A successful cancel reloads the list and the
// roster so the freed slot is offered again.
func (v *View) Cancel(ctx context.Context, appointmentID string) error {
	requestID := utils.GetRequestID(ctx)
	v.log.Info("View.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	token := v.store.Token()
	if token == "" {
		err := exceptions.ErrTokenMissing(constvars.ErrClientLoginRequired)
		notifier.Warn(ctx, v.notifier, notificationSource, err.ClientMessage)
		return err
	}

	if v.isCancelled(appointmentID) {
		err := exceptions.ErrAppointmentAlreadyCancelled(appointmentID)
		notifier.Failure(ctx, v.notifier, notificationSource, err, err.ClientMessage)
		return err
	}

	message, err := v.client.CancelAppointment(ctx, token, &requests.CancelAppointment{AppointmentID: appointmentID})
	if err != nil {
		v.log.Error("View.Cancel error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		notifier.Failure(ctx, v.notifier, notificationSource, err, constvars.ErrClientCancelFailed)
		return err
	}
	if message == "" {
		message = constvars.CancelSuccessFallbackMessage
	}
	notifier.Success(ctx, v.notifier, notificationSource, message)

	_, _ = v.Load(ctx)
	_ = v.store.RefreshDoctors(ctx)

	v.log.Info("View.Cancel succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)
	return nil
}

// PayOnline stands in for online payment. It only tells the user.
func (v *View) PayOnline(ctx context.Context, appointmentID string) error {
	if v.isCancelled(appointmentID) {
		err := exceptions.ErrAppointmentAlreadyCancelled(appointmentID)
		notifier.Failure(ctx, v.notifier, notificationSource, err, err.ClientMessage)
		return err
	}
	notifier.Info(ctx, v.notifier, notificationSource, constvars.PayOnlineStubMessage)
	return nil
}

func (v *View) isCancelled(appointmentID string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, appointment := range v.appointments {
		if appointment.ID == appointmentID {
			return appointment.Cancelled
		}
	}
	return false
}

func copyAppointments(appointments []models.Appointment) []models.Appointment {
	if appointments == nil {
		return []models.Appointment{}
	}
	return append([]models.Appointment{}, appointments...)
}
