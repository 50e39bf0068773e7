package helper

import (
	"errors"
	"regexp"
	"strconv"
	"time"
)

var ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")

var dateOnlyRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)

// StartOfDayUTC truncates t to UTC midnight.
func StartOfDayUTC(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDateOnlyUTC accepts a YYYY-MM-DD literal and returns UTC midnight of
// that day. An empty value means today. Anything else is rejected so that all
// lookups share the same day key.
func ParseDateOnlyUTC(value string) (time.Time, error) {
	if value == "" {
		return StartOfDayUTC(time.Now()), nil
	}

	m := dateOnlyRe.FindStringSubmatch(value)
	if m == nil {
		return time.Time{}, ErrInvalidDateFormat
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (e.g. 2024-13-40); reject
	// inputs that do not round-trip.
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, ErrInvalidDateFormat
	}
	return d, nil
}
