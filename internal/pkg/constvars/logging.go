package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingOperationKey      = "operation"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingErrorKindKey      = "error_kind"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingResponseLengthKey = "response_length"
	LoggingRequestKey        = "request"
	LoggingURLKey            = "url"
	LoggingRedisKey          = "redis_key"
	LoggingDoctorIDKey       = "doctor_id"
	LoggingAppointmentIDKey  = "appointment_id"
	LoggingSlotDateKey       = "slot_date"
	LoggingSlotTimeKey       = "slot_time"
	LoggingSlotIndexKey      = "slot_index"
	LoggingBookingStateKey   = "booking_state"
	LoggingRosterSizeKey     = "roster_size"
	LoggingRosterVersionKey  = "roster_version"
	LoggingHasTokenKey       = "has_token"
	LoggingTokenSubjectKey   = "token_subject"
	LoggingNotificationKey   = "notification"
	LoggingQueueNameKey      = "queue_name"
	LoggingNamespaceKey      = "namespace"
	LoggingCronSpecKey       = "cron_spec"
)
