package remote

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type bookingServiceClient struct {
	BaseUrl string
	Client  *http.Client
	Log     *zap.Logger
}

func NewBookingServiceClient(baseUrl string, timeout time.Duration, logger *zap.Logger) contracts.BookingServiceClient {
	return &bookingServiceClient{
		BaseUrl: strings.TrimRight(baseUrl, "/"),
		Client:  &http.Client{Timeout: timeout},
		Log:     logger,
	}
}

func (c *bookingServiceClient) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.ListDoctors called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.RemoteDoctorList
	err := c.send(ctx, call{
		name:     "ListDoctors",
		method:   constvars.MethodGet,
		path:     constvars.RemotePathDoctorList,
		resource: constvars.RemoteResourceDoctors,
		fallback: constvars.ErrClientFetchDoctorsFailed,
	}, &result)
	if err != nil {
		return nil, err
	}

	c.Log.Info("bookingServiceClient.ListDoctors succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRosterSizeKey, len(result.Doctors)),
	)
	return result.Doctors, nil
}

func (c *bookingServiceClient) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.RemoteProfile
	err := c.send(ctx, call{
		name:     "GetProfile",
		method:   constvars.MethodGet,
		path:     constvars.RemotePathUserProfile,
		resource: constvars.RemoteResourceProfile,
		token:    token,
		fallback: constvars.ErrClientFetchProfileFailed,
	}, &result)
	if err != nil {
		return nil, err
	}

	c.Log.Info("bookingServiceClient.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result.Profile(), nil
}

func (c *bookingServiceClient) Register(ctx context.Context, request *requests.Register) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.RemoteToken
	err := c.send(ctx, call{
		name:     "Register",
		method:   constvars.MethodPost,
		path:     constvars.RemotePathUserRegister,
		resource: constvars.RemoteResourceAuth,
		body:     request,
		fallback: constvars.ErrClientCreateAccountFailed,
	}, &result)
	if err != nil {
		return "", err
	}

	c.Log.Info("bookingServiceClient.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, utils.TokenSubject(result.Token)),
	)
	return result.Token, nil
}

func (c *bookingServiceClient) Login(ctx context.Context, request *requests.Login) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.RemoteToken
	err := c.send(ctx, call{
		name:     "Login",
		method:   constvars.MethodPost,
		path:     constvars.RemotePathUserLogin,
		resource: constvars.RemoteResourceAuth,
		body:     request,
		fallback: constvars.ErrClientLoginFailed,
	}, &result)
	if err != nil {
		return "", err
	}

	c.Log.Info("bookingServiceClient.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, utils.TokenSubject(result.Token)),
	)
	return result.Token, nil
}

func (c *bookingServiceClient) BookAppointment(ctx context.Context, token string, request *requests.BookAppointment) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DocID),
		zap.String(constvars.LoggingSlotDateKey, request.SlotDate),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)

	var result responses.RemoteEnvelope
	err := c.send(ctx, call{
		name:     "BookAppointment",
		method:   constvars.MethodPost,
		path:     constvars.RemotePathBookAppointment,
		resource: constvars.RemoteResourceAppointments,
		token:    token,
		body:     request,
		fallback: constvars.ErrClientBookingFailed,
	}, &result)
	if err != nil {
		return "", err
	}

	c.Log.Info("bookingServiceClient.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DocID),
	)
	return result.Message, nil
}

func (c *bookingServiceClient) CancelAppointment(ctx context.Context, token string, request *requests.CancelAppointment) (string, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.CancelAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)

	var result responses.RemoteEnvelope
	err := c.send(ctx, call{
		name:     "CancelAppointment",
		method:   constvars.MethodPost,
		path:     constvars.RemotePathCancelAppointment,
		resource: constvars.RemoteResourceAppointments,
		token:    token,
		body:     request,
		fallback: constvars.ErrClientCancelFailed,
	}, &result)
	if err != nil {
		return "", err
	}

	c.Log.Info("bookingServiceClient.CancelAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, request.AppointmentID),
	)
	return result.Message, nil
}

// ListAppointments uses POST with an empty body, which is what the booking
// service serves the list on.
func (c *bookingServiceClient) ListAppointments(ctx context.Context, token string) ([]models.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.ListAppointments called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.RemoteAppointmentList
	err := c.send(ctx, call{
		name:     "ListAppointments",
		method:   constvars.MethodPost,
		path:     constvars.RemotePathUserAppointments,
		resource: constvars.RemoteResourceAppointments,
		token:    token,
		body:     struct{}{},
		fallback: constvars.ErrClientLoadAppointmentsFailed,
	}, &result)
	if err != nil {
		return nil, err
	}

	c.Log.Info("bookingServiceClient.ListAppointments succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("appointment_count", len(result.Appointments)),
	)
	return result.Appointments, nil
}

func (c *bookingServiceClient) UpdateProfile(ctx context.Context, token string, request *requests.UpdateProfile) (string, *models.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("bookingServiceClient.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("has_image", request.Image != nil),
	)

	form, err := buildProfileForm(request)
	if err != nil {
		c.Log.Error("bookingServiceClient.UpdateProfile error building multipart form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return "", nil, err
	}

	var result responses.RemoteUpdateProfile
	err = c.send(ctx, call{
		name:     "UpdateProfile",
		method:   constvars.MethodPost,
		path:     constvars.RemotePathUpdateProfile,
		resource: constvars.RemoteResourceProfile,
		token:    token,
		form:     form,
		fallback: constvars.ErrClientUpdateProfileFailed,
	}, &result)
	if err != nil {
		return "", nil, err
	}

	c.Log.Info("bookingServiceClient.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return result.Message, result.User, nil
}
