package constvars

import "time"

const (
	SlotGridDays       = 7
	SlotDayOpeningHour = 10
	SlotDayClosingHour = 21
	SlotSnapMinute     = 30
	SlotStep           = 30 * time.Minute
)

const (
	// SlotDateKeyLayout renders DD_MM_YYYY, the key of a doctor's booked slot map.
	SlotDateKeyLayout = "02_01_2006"
	// SlotTimeLabelLayout renders "hh:mm AM/PM".
	SlotTimeLabelLayout = "03:04 PM"
)

var SlotWeekdayLabels = [7]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

var SlotMonthLabels = [12]string{
	"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
	"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
}
