package constvars

const (
	URLParamDoctorID      = "doctorID"
	URLParamAppointmentID = "appointmentID"
)

const (
	URLQueryParamNow   = "now"
	URLQueryParamLimit = "limit"
)

const (
	FormFieldImage           = "image"
	FormMaxMemoryInMegabytes = 8
)
