package slot

import (
	"medibook-client/internal/pkg/constvars"
	"time"
)

// clock holds a local wall time (hour and minute).
type clock struct {
	H int
	M int
}

// on places c on the calendar day of day, in day's location. Hours past 23
// roll over to the following day.
func (c clock) on(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.H, c.M, 0, 0, day.Location())
}

// dayWindow defines an inclusive start and exclusive end wall-clock window for a single day.
type dayWindow struct {
	Start clock
	End   clock
}

var bookingHours = dayWindow{
	Start: clock{H: constvars.SlotDayOpeningHour},
	End:   clock{H: constvars.SlotDayClosingHour},
}

// Clock supplies the reference instant of a grid.
type Clock func() time.Time
