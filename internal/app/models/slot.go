package models

import "time"

type TimeSlot struct {
	Instant time.Time `json:"instant"`
	Label   string    `json:"label"`
}

// DaySlots holds the offerable slots of one calendar day, in order.
// Slots may be empty.
type DaySlots struct {
	Date         time.Time  `json:"date"`
	DateKey      string     `json:"date_key"`
	WeekdayLabel string     `json:"weekday"`
	DayOfMonth   int        `json:"day_of_month"`
	Slots        []TimeSlot `json:"slots"`
}

// Find returns the index of the slot labelled label, or -1.
func (d DaySlots) Find(label string) int {
	for i, slot := range d.Slots {
		if slot.Label == label {
			return i
		}
	}
	return -1
}

// SlotGrid is always seven days long; index 0 is the reference day.
type SlotGrid []DaySlots

func (g SlotGrid) Clone() SlotGrid {
	if g == nil {
		return nil
	}
	clone := make(SlotGrid, len(g))
	for i, day := range g {
		clone[i] = day
		clone[i].Slots = append([]TimeSlot{}, day.Slots...)
	}
	return clone
}
