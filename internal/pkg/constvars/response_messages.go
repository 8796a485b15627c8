package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	LoginSuccessMessage           = "Logged in successfully!"
	RegisterSuccessMessage        = "Account created successfully!"
	LogoutSuccessMessage          = "successfully logout"
	SetTokenSuccessMessage        = "session token updated"
	GetSessionSuccessMessage      = "get session successfully"
	GetDoctorsSuccessMessage      = "get doctors successfully"
	RefreshDoctorsSuccessMessage  = "doctors refreshed successfully"
	GetSlotsSuccessMessage        = "get slots successfully"
	GetBookingSuccessMessage      = "get booking successfully"
	OpenBookingSuccessMessage     = "booking opened successfully"
	SelectSlotSuccessMessage      = "slot selected successfully"
	GetAppointmentsSuccessMessage = "get appointments successfully"
	GetProfileSuccessMessage      = "get profile successfully"
	GetNotificationsMessage       = "get notifications successfully"

	BookingSuccessFallbackMessage = "Appointment booked"
	CancelSuccessFallbackMessage  = "Appointment cancelled"
	ProfileUpdatedFallbackMessage = "Profile updated"
	PayOnlineStubMessage          = "Online payment is not available yet"
)
