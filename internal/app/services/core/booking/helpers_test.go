package booking

import "medibook-client/internal/pkg/dto/requests"

func bookRequest(doctorID, slotDate, slotTime string) *requests.BookAppointment {
	return &requests.BookAppointment{DocID: doctorID, SlotDate: slotDate, SlotTime: slotTime}
}
