package utils

import (
	"fmt"
	"medibook-client/internal/pkg/constvars"
	"strconv"
	"strings"
	"time"
)

// FormatSlotDate renders a "DD_MM_YYYY" slot date as "DD MON YYYY".
// Input that does not have three numeric parts is returned unchanged.
func FormatSlotDate(slotDate string) string {
	parts := strings.Split(slotDate, "_")
	if len(parts) != 3 {
		return slotDate
	}
	if _, err := strconv.Atoi(parts[0]); err != nil {
		return slotDate
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil || month < 1 || month > 12 {
		return slotDate
	}
	if _, err := strconv.Atoi(parts[2]); err != nil {
		return slotDate
	}
	return fmt.Sprintf("%s %s %s", parts[0], constvars.SlotMonthLabels[month-1], parts[2])
}

// SlotDateKey renders t as the key of a doctor's slots_booked map.
func SlotDateKey(t time.Time) string {
	return t.Format(constvars.SlotDateKeyLayout)
}

func SlotTimeLabel(t time.Time) string {
	return t.Format(constvars.SlotTimeLabelLayout)
}

// ParseNowParam parses an optional RFC3339 override of the current time.
func ParseNowParam(value string) (time.Time, bool, error) {
	if value == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t, true, nil
}
