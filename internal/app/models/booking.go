package models

type BookingState string

const (
	BookingStateIdle          BookingState = "idle"
	BookingStateValidating    BookingState = "validating"
	BookingStateSubmitting    BookingState = "submitting"
	BookingStateConfirmed     BookingState = "confirmed"
	BookingStateRejected      BookingState = "rejected"
	BookingStateRedirectLogin BookingState = "redirect_login"
)

// BookingView is a read only snapshot of an ongoing booking attempt.
type BookingView struct {
	DoctorID      string       `json:"doctor_id"`
	Doctor        *Doctor      `json:"doctor,omitempty"`
	State         BookingState `json:"state"`
	SlotIndex     int          `json:"slot_index"`
	SlotTime      string       `json:"slot_time"`
	Selection     string       `json:"selection,omitempty"`
	Grid          SlotGrid     `json:"grid"`
	RosterVersion uint64       `json:"roster_version"`
	LastMessage   string       `json:"last_message,omitempty"`
}

// BookingOutcome is the result of one submit action.
type BookingOutcome struct {
	State    BookingState `json:"state"`
	Message  string       `json:"message,omitempty"`
	Navigate string       `json:"navigate,omitempty"`
	Err      error        `json:"-"`
}
