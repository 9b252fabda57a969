package services

import (
	"strings"
	"time"

	"tutorcal_go/models"
	"tutorcal_go/utils"
)

// View filters are pure: they never mutate the event list, and any event
// whose date fails to normalize is silently excluded rather than erroring.

// MonthEvents returns the events sharing month and year with ref.
func MonthEvents(events []models.Event, ref time.Time) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range events {
		d, err := utils.NormalizeDate(e.Date)
		if err != nil {
			continue
		}
		if d.Month() == ref.Month() && d.Year() == ref.Year() {
			out = append(out, e)
		}
	}
	return out
}

// WeekEvents returns the events inside the Sunday..Saturday week around ref.
func WeekEvents(events []models.Event, ref time.Time) []models.Event {
	weekStart, weekEnd := utils.WeekBounds(ref)
	out := make([]models.Event, 0)
	for _, e := range events {
		d, err := utils.NormalizeDate(e.Date)
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && !d.After(weekEnd) {
			out = append(out, e)
		}
	}
	return out
}

// DayEvents returns the events on the same calendar day as ref, ignoring
// time of day.
func DayEvents(events []models.Event, ref time.Time) []models.Event {
	out := make([]models.Event, 0)
	for _, e := range events {
		d, err := utils.NormalizeDate(e.Date)
		if err != nil {
			continue
		}
		if utils.SameDay(d, ref) {
			out = append(out, e)
		}
	}
	return out
}

// AgendaEvents filters by a case-insensitive search over title and
// description. An empty term matches everything.
func AgendaEvents(events []models.Event, term string) []models.Event {
	term = strings.ToLower(term)
	out := make([]models.Event, 0)
	for _, e := range events {
		if term == "" ||
			strings.Contains(strings.ToLower(e.Title), term) ||
			strings.Contains(strings.ToLower(e.Description), term) {
			out = append(out, e)
		}
	}
	return out
}

// EventEnded reports whether the event's end timestamp, built from its date
// and end time, is already in the past. Unparseable dates or times count as
// not ended; this drives a display state only.
func EventEnded(e models.Event, now time.Time) bool {
	d, err := utils.NormalizeDate(e.Date)
	if err != nil {
		return false
	}
	hour, minute, err := utils.ParseHourMinute(e.EndTime)
	if err != nil {
		return false
	}
	end := time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	return now.After(end)
}

// EffectiveColor resolves an event block's color: explicit event color, else
// the assigned teacher's color, else the default blue.
func EffectiveColor(e models.Event, teacherColor string) string {
	if e.Color != "" {
		return e.Color
	}
	if teacherColor != "" {
		return teacherColor
	}
	return models.DefaultEventColor
}
