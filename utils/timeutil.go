package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var timePattern = regexp.MustCompile(`\d{1,2}:\d{2}(?::\d{2})?`)

// ParseHourMinute extracts the hour and minute from a clock string. It accepts
// plain "HH:MM" values as well as full datetime strings, since events edited by
// hand may carry either shape.
func ParseHourMinute(value string) (int, int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, 0, fmt.Errorf("time value cannot be empty")
	}

	layout := "15:04"
	if colonCount := strings.Count(value, ":"); colonCount >= 2 {
		layout = "15:04:05"
	}

	if t, err := time.Parse(layout, value); err == nil {
		return t.Hour(), t.Minute(), nil
	} else {
		fallbackLayouts := []string{
			time.RFC3339Nano,
			time.RFC3339,
			"2006-01-02 15:04:05",
			"2006-01-02T15:04:05",
			"2006-01-02 15:04",
			"2006-01-02T15:04",
		}

		for _, layout := range fallbackLayouts {
			if parsed, altErr := time.Parse(layout, value); altErr == nil {
				return parsed.Hour(), parsed.Minute(), nil
			}
		}

		if match := timePattern.FindString(value); match != "" && match != value {
			return ParseHourMinute(match)
		}

		return 0, 0, fmt.Errorf("invalid time format %q: %w", value, err)
	}
}

// NormalizeDate converts a stored date value into a time.Time. Events keep
// their date as an ISO timestamp, but bare dates and space-separated datetimes
// are accepted too. An error means the event should be excluded from filtering,
// never surfaced.
func NormalizeDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("date value cannot be empty")
	}

	layouts := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("invalid date format %q", value)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Day() == b.Day() && a.Month() == b.Month() && a.Year() == b.Year()
}

// WeekBounds returns the inclusive week range around ref: the Sunday on or
// before ref at midnight through the following Saturday at 23:59:59.999.
func WeekBounds(ref time.Time) (time.Time, time.Time) {
	start := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))
	end := start.AddDate(0, 0, 6).Add(24*time.Hour - time.Millisecond)
	return start, end
}

// To12Hour converts a "HH:MM" clock string to "h:MM AM/PM". Values already in
// 12-hour form pass through unchanged, as do values that fail to parse.
func To12Hour(value string) string {
	if strings.Contains(value, "AM") || strings.Contains(value, "PM") {
		return value
	}

	hour, minute, err := ParseHourMinute(value)
	if err != nil {
		return value
	}

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, minute, period)
}

// FormatClock renders a timestamp as "h:MM AM/PM", the shape used for
// attendance arrival and departure stamps.
func FormatClock(t time.Time) string {
	period := "AM"
	hour := t.Hour()
	if hour >= 12 {
		period = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour12, t.Minute(), period)
}

// AddMinutes derives an end time by adding a duration to a "HH:MM" start time.
// The result wraps past midnight rather than erroring.
func AddMinutes(startTime string, minutes int) (string, error) {
	hour, minute, err := ParseHourMinute(startTime)
	if err != nil {
		return "", err
	}

	total := (hour*60 + minute + minutes) % (24 * 60)
	if total < 0 {
		total += 24 * 60
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60), nil
}

// HourLabel renders a grid row label for hour 0-23 ("12 AM", "1 AM" ... "11 PM").
func HourLabel(hour int) string {
	switch {
	case hour == 0:
		return "12 AM"
	case hour < 12:
		return fmt.Sprintf("%d AM", hour)
	case hour == 12:
		return "12 PM"
	default:
		return fmt.Sprintf("%d PM", hour-12)
	}
}

// Initials builds an avatar monogram from a display name ("Nirga Naik" -> "NN").
func Initials(name string) string {
	var b strings.Builder
	for _, part := range strings.Fields(name) {
		r := []rune(part)
		if len(r) > 0 {
			b.WriteRune(r[0])
		}
	}
	return b.String()
}
