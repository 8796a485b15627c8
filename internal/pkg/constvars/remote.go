package constvars

// Paths of the remote booking service, relative to REMOTE_BASE_URL.
const (
	RemotePathDoctorList        = "/api/doctor/list"
	RemotePathUserProfile       = "/api/user/get-profile"
	RemotePathUserRegister      = "/api/user/register"
	RemotePathUserLogin         = "/api/user/login"
	RemotePathBookAppointment   = "/api/user/book-appointment"
	RemotePathCancelAppointment = "/api/user/cancel-appointment"
	RemotePathUserAppointments  = "/api/user/appointments"
	RemotePathUpdateProfile     = "/api/user/update-profile"
)

const (
	RemoteResourceDoctors      = "doctors"
	RemoteResourceProfile      = "profile"
	RemoteResourceAuth         = "auth"
	RemoteResourceAppointments = "appointments"
)

const (
	MultipartFieldName    = "name"
	MultipartFieldPhone   = "phone"
	MultipartFieldAddress = "address"
	MultipartFieldDob     = "dob"
	MultipartFieldGender  = "gender"
	MultipartFieldImage   = "image"
)
