package auth

import (
	"context"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/services/shared/notifier"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"strings"

	"go.uber.org/zap"
)

const notificationSource = "auth"

type authUsecase struct {
	SessionStore         contracts.SessionStore
	BookingServiceClient contracts.BookingServiceClient
	Notifier             contracts.Notifier
	Log                  *zap.Logger
}

func NewAuthUsecase(
	sessionStore contracts.SessionStore,
	bookingServiceClient contracts.BookingServiceClient,
	notifier contracts.Notifier,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		SessionStore:         sessionStore,
		BookingServiceClient: bookingServiceClient,
		Notifier:             notifier,
		Log:                  logger,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.validate(ctx, request); err != nil {
		uc.Log.Error("authUsecase.Login invalid input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	token, err := uc.BookingServiceClient.Login(ctx, &requests.Login{
		Email:    strings.TrimSpace(request.Email),
		Password: request.Password,
	})
	if err == nil && token == "" {
		err = exceptions.ErrRemoteDomain(constvars.ErrClientLoginFailed, constvars.RemoteResourceAuth)
	}
	if err != nil {
		uc.Log.Error("authUsecase.Login error from booking service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.Failure(ctx, uc.Notifier, notificationSource, err, constvars.ErrClientLoginFailed)
		return err
	}

	uc.SessionStore.SetToken(ctx, token)
	notifier.Success(ctx, uc.Notifier, notificationSource, constvars.LoginSuccessMessage)

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, utils.TokenSubject(token)),
	)
	return nil
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := uc.validate(ctx, request); err != nil {
		uc.Log.Error("authUsecase.Register invalid input",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}

	// Surrounding whitespace is dropped from name and email, never from the password.
	token, err := uc.BookingServiceClient.Register(ctx, &requests.Register{
		Email:    strings.TrimSpace(request.Email),
		Password: request.Password,
		Name:     strings.TrimSpace(request.Name),
	})
	if err == nil && token == "" {
		err = exceptions.ErrRemoteDomain(constvars.ErrClientCreateAccountFailed, constvars.RemoteResourceAuth)
	}
	if err != nil {
		uc.Log.Error("authUsecase.Register error from booking service",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		notifier.Failure(ctx, uc.Notifier, notificationSource, err, constvars.ErrClientCreateAccountFailed)
		return err
	}

	uc.SessionStore.SetToken(ctx, token)
	notifier.Success(ctx, uc.Notifier, notificationSource, constvars.RegisterSuccessMessage)

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingTokenSubjectKey, utils.TokenSubject(token)),
	)
	return nil
}

func (uc *authUsecase) Logout(ctx context.Context) {
	requestID := utils.GetRequestID(ctx)
	uc.SessionStore.SetToken(ctx, "")
	uc.Log.Info("authUsecase.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
}

// validate runs the form checks that must pass before anything is sent.
func (uc *authUsecase) validate(ctx context.Context, request interface{}) error {
	if err := utils.ValidateStruct(request); err != nil {
		customErr := exceptions.ErrInputValidation(err)
		notifier.Failure(ctx, uc.Notifier, notificationSource, customErr, customErr.ClientMessage)
		return customErr
	}
	return nil
}
