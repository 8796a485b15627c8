package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required":      "is required",
	"min":           "must be at least %s characters long",
	"max":           "maximum at %s characters long",
	"oneof":         "must be one of %s",
	"gte":           "must be greater than or equal to %s",
	"booking_email": "must be a valid email",
	"trimmed_min":   "must be at least %s characters long",
}

var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,

	"trimmed_min": true,
}

// Field specific messages shown to the user, keyed by "<Field>.<tag>".
var FieldValidationErrorMessages = map[string]string{
	"Email.required":      ErrClientInvalidEmail,
	"Email.booking_email": ErrClientInvalidEmail,
	"Password.required":   ErrClientPasswordTooShort,
	"Password.min":        ErrClientPasswordTooShort,
	"Name.required":       ErrClientNameTooShort,
	"Name.min":            ErrClientNameTooShort,
	"Name.trimmed_min":    ErrClientNameTooShort,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "Something went wrong"
	ErrClientServerUnreachable             = "No response from server. Please check your connection or try again later."
	ErrClientUnauthorized                  = "Unauthorized access. Please log in again."
	ErrClientLoginToBook                   = "Login to book appointment"
	ErrClientLoginRequired                 = "Please log in to continue"
	ErrClientSelectValidSlot               = "Please select a valid slot"
	ErrClientSelectValidDay                = "Please select a valid day"
	ErrClientDoctorNotFound                = "Doctor not found"
	ErrClientNoDoctorSelected              = "Please choose a doctor first"
	ErrClientBookingInProgress             = "Your booking is already being submitted"
	ErrClientAppointmentAlreadyCancelled   = "Appointment already cancelled"
	ErrClientInvalidEmail                  = "Please enter a valid email address."
	ErrClientPasswordTooShort              = "Password must be at least 6 characters."
	ErrClientNameTooShort                  = "Name must be at least 2 characters."
	ErrClientFetchDoctorsFailed            = "Failed to fetch doctors"
	ErrClientFetchProfileFailed            = "Failed to fetch profile"
	ErrClientLoadAppointmentsFailed        = "Failed to load appointments"
	ErrClientFetchAppointmentsFailed       = "Error fetching appointments"
	ErrClientCreateAccountFailed           = "Failed to create account"
	ErrClientLoginFailed                   = "Login failed"
	ErrClientBookingFailed                 = "Failed to book appointment"
	ErrClientCancelFailed                  = "Failed to cancel appointment"
	ErrClientUpdateProfileFailed           = "Failed to update profile"
	ErrClientInvalidNowParam               = "now must be an RFC3339 timestamp"
	ErrClientTooManyRequests               = "Too many requests, please slow down"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON"
	ErrDevCannotMarshalJSON        = "cannot marshal JSON"
	ErrDevCannotParseMultipartForm = "cannot parse multipart form"
	ErrDevCreateHTTPRequest        = "failed to create HTTP request"
	ErrDevSendHTTPRequest          = "failed to send HTTP request"
	ErrDevRemoteDecodeResponse     = "failed to decode %s response from booking service"
	ErrDevRemoteDomainFailure      = "booking service rejected %s request"
	ErrDevRemoteUnexpectedStatus   = "booking service answered %s request with status %d"
	ErrDevRemoteUnauthorized       = "booking service refused the %s request token"
	ErrDevAuthTokenMissing         = "token missing"
	ErrDevSlotNotInGrid            = "slot time not found in the selected day"
	ErrDevSlotIndexOutOfRange      = "slot index out of range"
	ErrDevDoctorNotInRoster        = "doctor not present in roster"
	ErrDevNoDoctorSelected         = "no doctor selected"
	ErrDevSubmissionInProgress     = "booking submission already in progress"
	ErrDevAppointmentCancelled     = "appointment rendered as cancelled"
	ErrDevServerDeadlineExceeded   = "deadline exceeded"
	ErrDevServerProcess            = "failed to process request"
	ErrDevTooManyRequests          = "rate limit exceeded"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisGetNoData  = "failed to get data from redis with key %s"
	ErrDevRedisSetData    = "failed to set data into redis"
	ErrDevRedisDeleteData = "failed to delete data from redis"

	ErrDevDBFailedToFindDocument   = "failed when do find document on database"
	ErrDevDBFailedToUpsertDocument = "failed to upsert document into database"
	ErrDevDBFailedToDeleteDocument = "failed to delete document from database"

	ErrDevRabbitMQPublishMessage = "failed to publish message to queue %s"
)

const (
	ErrFileLocationUnknown = "file location unknown"
	ErrFunctionNameUnknown = "function name unknown"
)
