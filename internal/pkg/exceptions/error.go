package exceptions

import (
	"errors"
	"fmt"
	"medibook-client/internal/pkg/constvars"
	"runtime"
)

// Kind classifies a failure so callers can pick the right notification.
type Kind string

const (
	KindValidation Kind = "validation"
	KindDomain     Kind = "domain"
	KindTransport  Kind = "transport"
	KindAuth       Kind = "auth"
	KindInternal   Kind = "internal"
)

type CustomError struct {
	StatusCode    int      `json:"status_code"`
	Success       bool     `json:"success"`
	ClientMessage string   `json:"message"`
	DevMessage    string   `json:"-"`
	Kind          Kind     `json:"kind"`
	Location      Location `json:"-"`
	cause         error
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, e.Location.File, e.Location.Line, e.Location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.cause
}

// BuildNewCustomError wraps err with a status code, a message safe to show
// to the user and a message meant for logs. err may be nil.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	devMsg := devMessage
	if err != nil {
		devMsg = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMsg,
		Kind:          kindFromStatus(statusCode),
		Location:      getLocation(3),
		cause:         err,
	}
}

// WithKind overrides the kind derived from the status code.
func (e *CustomError) WithKind(kind Kind) *CustomError {
	e.Kind = kind
	return e
}

// KindOf reports the kind of the first CustomError in err's chain.
// Errors that are not CustomError are treated as internal.
func KindOf(err error) Kind {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Kind
	}
	return KindInternal
}

// ClientMessageOf returns the user facing message carried by err, or
// fallback when err does not carry one.
func ClientMessageOf(err error, fallback string) string {
	var customErr *CustomError
	if errors.As(err, &customErr) && customErr.ClientMessage != "" {
		return customErr.ClientMessage
	}
	return fallback
}

func kindFromStatus(statusCode int) Kind {
	switch {
	case statusCode == constvars.StatusUnauthorized:
		return KindAuth
	case statusCode == constvars.StatusBadGateway,
		statusCode == constvars.StatusServiceUnavailable,
		statusCode == constvars.StatusGatewayTimeout:
		return KindTransport
	case statusCode == constvars.StatusConflict:
		return KindDomain
	case statusCode >= 400 && statusCode < 500:
		return KindValidation
	default:
		return KindInternal
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ErrFileLocationUnknown,
			Line:         0,
			FunctionName: constvars.ErrFunctionNameUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}
