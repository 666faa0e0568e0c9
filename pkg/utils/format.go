package utils

import (
	"fmt"
	"strings"
	"time"
)

// ClockLayout is the wall-clock display format for journey times.
const ClockLayout = "03:04 PM"

// FormatClock renders t in its own zone for display.
func FormatClock(t time.Time) string {
	return t.Format(ClockLayout)
}

// FormatDuration renders d the way the traffic API writes its text field,
// e.g. "1 hour 5 mins".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Round(time.Minute) / time.Minute)
	hours := total / 60
	mins := total % 60
	switch {
	case hours == 0:
		return pluralize(mins, "min")
	case mins == 0:
		return pluralize(hours, "hour")
	}
	return pluralize(hours, "hour") + " " + pluralize(mins, "min")
}

func pluralize(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// NormalizeIATA uppercases and trims an airline, airport or flight code.
func NormalizeIATA(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
