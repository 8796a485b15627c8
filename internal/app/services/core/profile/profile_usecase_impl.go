package profile

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"

	"go.uber.org/zap"
)

const notificationSource = "profile"

type profileUsecase struct {
	SessionStore         contracts.SessionStore
	BookingServiceClient contracts.BookingServiceClient
	Notifier             contracts.Notifier
	ImageBaseURL         string
	Log                  *zap.Logger
}

// NewProfileUsecase serves the signed in user's profile. Relative image
// paths returned by the booking service are resolved against imageBaseURL.
func NewProfileUsecase(
	sessionStore contracts.SessionStore,
	bookingServiceClient contracts.BookingServiceClient,
	notifier contracts.Notifier,
	imageBaseURL string,
	logger *zap.Logger,
) contracts.ProfileUsecase {
	return &profileUsecase{
		SessionStore:         sessionStore,
		BookingServiceClient: bookingServiceClient,
		Notifier:             notifier,
		ImageBaseURL:         imageBaseURL,
		Log:                  logger,
	}
}

func (uc *profileUsecase) GetProfile(ctx context.Context) (*responses.Profile, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("profileUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if uc.SessionStore.Token() == "" {
		return nil, exceptions.ErrTokenMissing(constvars.ErrClientLoginRequired)
	}

	user := uc.SessionStore.User()
	if user == nil {
		if err := uc.SessionStore.RefreshProfile(ctx); err != nil {
			uc.Log.Error("profileUsecase.GetProfile error refreshing profile",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		user = uc.SessionStore.User()
	}
	if user == nil {
		return nil, exceptions.ErrTokenMissing(constvars.ErrClientLoginRequired)
	}

	uc.Log.Info("profileUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return &responses.Profile{
		Profile:  *user,
		ImageURL: utils.ResolveProfileImageURL(uc.ImageBaseURL, user.Image),
	}, nil
}

func (uc *profileUsecase) UpdateProfile(ctx context.Context, request *requests.UpdateProfile) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("profileUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool("has_image", request.Image != nil),
	)

	token := uc.SessionStore.Token()
	if token == "" {
		err := exceptions.ErrTokenMissing(constvars.ErrClientLoginRequired)
		notifier.Warn(ctx, uc.Notifier, notificationSource, err.ClientMessage)
		return err
	}

	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		uc.Log.Error("profileUsecase.UpdateProfile invalid input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.Failure(ctx, uc.Notifier, notificationSource, customErr, customErr.ClientMessage)
		return customErr
	}

	message, _, err := uc.BookingServiceClient.UpdateProfile(ctx, token, request)
	if err != nil {
		uc.Log.Error("profileUsecase.UpdateProfile error from booking service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.Failure(ctx, uc.Notifier, notificationSource, err, constvars.ErrClientUpdateProfileFailed)
		return err
	}
	if message == "" {
		message = constvars.ProfileUpdatedFallbackMessage
	}
	notifier.Success(ctx, uc.Notifier, notificationSource, message)

	// The stored user comes from a fresh fetch, never the response body.
	_ = uc.SessionStore.RefreshProfile(ctx)

	uc.Log.Info("profileUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return nil
}
