package exceptions

import (
	"fmt"
	"medibook-client/internal/pkg/constvars"
)

var (
	ErrInputValidation = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseMultipartForm = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseMultipartForm)
	}
	ErrInvalidNowParam = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientInvalidNowParam, constvars.ErrDevInvalidInput)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerUnreachable, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrTooManyRequests = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusTooManyRequests, constvars.ErrClientTooManyRequests, constvars.ErrDevTooManyRequests)
	}
	ErrServerProcess = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevServerProcess)
	}

	// Validation failures raised by the booking and appointment flows.
	ErrSlotNotSelected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSelectValidSlot, constvars.ErrDevSlotNotInGrid)
	}
	ErrSlotIndexOutOfRange = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientSelectValidDay, constvars.ErrDevSlotIndexOutOfRange)
	}
	ErrDoctorNotFound = func(doctorID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusNotFound, constvars.ErrClientDoctorNotFound, fmt.Sprintf("%s: %s", constvars.ErrDevDoctorNotInRoster, doctorID))
	}
	ErrNoDoctorSelected = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientNoDoctorSelected, constvars.ErrDevNoDoctorSelected)
	}
	ErrSubmissionInProgress = func() *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, constvars.ErrClientBookingInProgress, constvars.ErrDevSubmissionInProgress).WithKind(KindValidation)
	}
	ErrAppointmentAlreadyCancelled = func(appointmentID string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadRequest, constvars.ErrClientAppointmentAlreadyCancelled, fmt.Sprintf("%s: %s", constvars.ErrDevAppointmentCancelled, appointmentID))
	}
	ErrTokenMissing = func(clientMessage string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, clientMessage, constvars.ErrDevAuthTokenMissing).WithKind(KindValidation)
	}

	// Failures reported by the remote booking service.
	ErrCreateHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCreateHTTPRequest)
	}
	ErrSendHTTPRequest = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientServerUnreachable, constvars.ErrDevSendHTTPRequest)
	}
	ErrRemoteDecodeResponse = func(err error, resource string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientServerUnreachable, fmt.Sprintf(constvars.ErrDevRemoteDecodeResponse, resource))
	}
	ErrRemoteUnauthorized = func(clientMessage, resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusUnauthorized, clientMessage, fmt.Sprintf(constvars.ErrDevRemoteUnauthorized, resource))
	}
	ErrRemoteDomain = func(clientMessage, resource string) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusConflict, clientMessage, fmt.Sprintf(constvars.ErrDevRemoteDomainFailure, resource))
	}
	ErrRemoteUnexpectedStatus = func(clientMessage, resource string, statusCode int) *CustomError {
		return BuildNewCustomError(nil, constvars.StatusBadGateway, clientMessage, fmt.Sprintf(constvars.ErrDevRemoteUnexpectedStatus, resource, statusCode))
	}

	// Infrastructure failures.
	ErrRedisGet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisGetData)
	}
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisSetData)
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisDeleteData)
	}
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBUpsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpsertDocument)
	}
	ErrMongoDBDeleteDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToDeleteDocument)
	}
	ErrRabbitMQPublishMessage = func(err error, queue string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQPublishMessage, queue))
	}
)
