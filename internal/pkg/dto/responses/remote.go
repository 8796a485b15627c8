package responses

import "medibook-client/internal/app/models"

// RemoteEnvelope is the part every booking service response shares.
type RemoteEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

func (e RemoteEnvelope) Envelope() RemoteEnvelope {
	return e
}

type RemoteDoctorList struct {
	RemoteEnvelope
	Doctors []models.Doctor `json:"doctors"`
}

// RemoteProfile accepts the profile under either "user" or "userData".
type RemoteProfile struct {
	RemoteEnvelope
	User     *models.Profile `json:"user,omitempty"`
	UserData *models.Profile `json:"userData,omitempty"`
}

func (r RemoteProfile) Profile() *models.Profile {
	if r.User != nil {
		return r.User
	}
	return r.UserData
}

type RemoteToken struct {
	RemoteEnvelope
	Token string `json:"token"`
}

type RemoteAppointmentList struct {
	RemoteEnvelope
	Appointments []models.Appointment `json:"appointments"`
}

type RemoteUpdateProfile struct {
	RemoteEnvelope
	User *models.Profile `json:"user,omitempty"`
}
