package slot

import (
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/utils"
	"time"
)

type Generator struct {
	now Clock
}

func NewGenerator(now Clock) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{now: now}
}

func (g *Generator) Now() time.Time {
	return g.now()
}

// Generate builds the grid of doctor as of the generator's clock.
func (g *Generator) Generate(doctor models.Doctor) models.SlotGrid {
	return Generate(doctor, g.now())
}

// Generate returns the seven day grid of slots offerable for doctor as of
// now. Day 0 is the calendar day of now in now's location. A day whose
// window is already closed yields an empty DaySlots.
func Generate(doctor models.Doctor, now time.Time) models.SlotGrid {
	grid := make(models.SlotGrid, 0, constvars.SlotGridDays)
	today := startOfDay(now)

	for i := 0; i < constvars.SlotGridDays; i++ {
		day := today.AddDate(0, 0, i)

		start := bookingHours.Start.on(day)
		if i == 0 {
			start = firstSlotOfToday(now).on(day)
		}
		end := bookingHours.End.on(day)

		grid = append(grid, buildDay(doctor, day, start, end))
	}
	return grid
}

// firstSlotOfToday leaves at least the rest of the current hour before the
// first offer and snaps the minute to the half hour grid.
func firstSlotOfToday(now time.Time) clock {
	start := clock{H: bookingHours.Start.H}
	if now.Hour() >= bookingHours.Start.H {
		start.H = now.Hour() + 1
	}
	if now.Minute() > constvars.SlotSnapMinute {
		start.M = constvars.SlotSnapMinute
	}
	return start
}

func buildDay(doctor models.Doctor, day, start, end time.Time) models.DaySlots {
	daySlots := models.DaySlots{
		Date:         day,
		DateKey:      utils.SlotDateKey(day),
		WeekdayLabel: constvars.SlotWeekdayLabels[day.Weekday()],
		DayOfMonth:   day.Day(),
		Slots:        []models.TimeSlot{},
	}

	for current := start; current.Before(end); current = current.Add(constvars.SlotStep) {
		label := utils.SlotTimeLabel(current)
		if doctor.IsBooked(utils.SlotDateKey(current), label) {
			continue
		}
		daySlots.Slots = append(daySlots.Slots, models.TimeSlot{Instant: current, Label: label})
	}
	return daySlots
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
