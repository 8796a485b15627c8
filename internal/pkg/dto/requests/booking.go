package requests

type OpenBooking struct {
	DoctorID string `json:"doctor_id" validate:"required"`
	// Now overrides the reference instant of the grid, RFC3339.
	Now string `json:"now,omitempty"`
}

type SelectSlot struct {
	SlotIndex *int   `json:"slot_index" validate:"required,gte=0"`
	SlotTime  string `json:"slot_time"`
}

// BookAppointment is the booking service payload.
type BookAppointment struct {
	DocID    string `json:"docId"`
	SlotDate string `json:"slotDate"`
	SlotTime string `json:"slotTime"`
}

type CancelAppointment struct {
	AppointmentID string `json:"appointmentId"`
}
