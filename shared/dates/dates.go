// Package dates works on calendar dates, never instants. Stay windows carry no
// meaningful time component, so every helper here is a pure string or day-count
// transform with no timezone conversion.
package dates

import (
	"fmt"
	"math"
	"time"

	"sunstone/shared/constant"
	"sunstone/shared/failure"
)

const dayMillis = 24 * 60 * 60 * 1000

// ParseISO parses a YYYY-MM-DD calendar date.
func ParseISO(value string) (time.Time, error) {
	t, err := time.Parse(constant.DateFormatISO, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)) //nolint:wrapcheck
	}

	return t, nil
}

// ToRemote converts YYYY-MM-DD to the DD-MM-YYYY form the remote API expects
// on booking creation. Pure string transform.
func ToRemote(iso string) (string, error) {
	t, err := ParseISO(iso)
	if err != nil {
		return "", err
	}

	return t.Format(constant.DateFormatRemote), nil
}

// Nights returns ceil((checkOut-checkIn)/1 day). Calendar dates make this an
// exact whole number, but the ceil guards inputs that carry a stray time part.
func Nights(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn).Milliseconds()
	if diff <= 0 {
		return 0
	}

	return int(math.Ceil(float64(diff) / float64(dayMillis)))
}

// NextDay returns the calendar day after the given date.
func NextDay(t time.Time) time.Time {
	return t.AddDate(0, 0, 1)
}

// Today returns the current calendar date, truncated to midnight UTC.
func Today() time.Time {
	now := time.Now().UTC()

	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatISO renders a calendar date as YYYY-MM-DD.
func FormatISO(t time.Time) string {
	return t.Format(constant.DateFormatISO)
}
