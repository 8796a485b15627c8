package models

type Appointment struct {
	ID          string  `json:"_id"`
	UserID      string  `json:"userId,omitempty"`
	DocID       string  `json:"docId,omitempty"`
	SlotDate    string  `json:"slotDate"`
	SlotTime    string  `json:"slotTime"`
	DocData     *Doctor `json:"docData,omitempty"`
	Amount      float64 `json:"amount,omitempty"`
	Date        int64   `json:"date,omitempty"`
	Cancelled   bool    `json:"cancelled"`
	Payment     bool    `json:"payment"`
	IsCompleted bool    `json:"isCompleted"`
}
