package event

import (
	"strconv"
	"strings"
	"time"
)

// ResolveDateTime parses an Austrian-format date ("18.01.2026") and a
// 24-hour time ("19:00") into a wall-clock instant in loc. The timezone's
// DST rule for the given date applies automatically, so the same wall-clock
// time maps to different UTC offsets across the year.
//
// Returns (zero, false) on any malformed input: wrong separator count,
// non-numeric fields, out-of-range time fields, or an impossible calendar
// date such as 31.02.2026.
func ResolveDateTime(dateText, timeText string, loc *time.Location) (time.Time, bool) {
	day, month, year, ok := splitDate(dateText)
	if !ok {
		return time.Time{}, false
	}

	hour, minute, ok := splitTime(timeText)
	if !ok {
		return time.Time{}, false
	}

	t := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)

	// time.Date normalizes overflowing fields (31.02 becomes 02.03 or 03.03),
	// so an impossible calendar date is detected by round-tripping.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}

	return t, true
}

// splitDate splits "dd.mm.yyyy" into its numeric fields.
func splitDate(s string) (day, month, year int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}

	day, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, false
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, false
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, false
	}

	if day < 1 || month < 1 || month > 12 || year < 1 {
		return 0, 0, 0, false
	}

	return day, month, year, true
}

// splitTime splits "hh:mm" into hour and minute.
func splitTime(s string) (hour, minute int, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, 0, false
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, false
	}

	return hour, minute, true
}
