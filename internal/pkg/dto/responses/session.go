package responses

import (
	"medibook-client/internal/app/models"
	"time"
)

type Session struct {
	HasToken       bool            `json:"has_token"`
	Subject        string          `json:"subject,omitempty"`
	TokenExpiresAt *time.Time      `json:"token_expires_at,omitempty"`
	User           *models.Profile `json:"user,omitempty"`
	DoctorCount    int             `json:"doctor_count"`
	RosterVersion  uint64          `json:"roster_version"`
}

type Token struct {
	Token string `json:"token"`
}

type Appointment struct {
	models.Appointment
	FormattedSlotDate string `json:"formatted_slot_date"`
}

type Profile struct {
	models.Profile
	ImageURL string `json:"image_url,omitempty"`
}

type BookingOutcome struct {
	models.BookingOutcome
	View models.BookingView `json:"view"`
}

type Slots struct {
	DoctorID      string          `json:"doctor_id"`
	Grid          models.SlotGrid `json:"grid"`
	RosterVersion uint64          `json:"roster_version"`
}
